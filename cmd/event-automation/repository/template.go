package repository

import (
	"context"
	"promo-tracking-backend/cmd/event-automation/model"

	"gorm.io/gorm"
)

type TemplateRepo struct {
	db *gorm.DB
}

func NewTemplateRepo(db *gorm.DB) *TemplateRepo {
	return &TemplateRepo{
		db: db,
	}
}

func (r *TemplateRepo) ListTemplates(ctx context.Context) ([]model.EventTemplate, error) {

	var templates []model.EventTemplate

	result := r.db.
		WithContext(ctx).
		Model(&model.EventTemplate{}).
		Find(&templates)

	if result.Error != nil {
		return nil, result.Error
	}

	return templates, nil
}

func (r *TemplateRepo) GetTemplate(ctx context.Context, id string) (model.EventTemplate, error) {

	var template model.EventTemplate

	result := r.db.
		WithContext(ctx).
		Where("id = ?", id).
		First(&template)

	if result.Error != nil {
		return model.EventTemplate{}, result.Error
	}

	return template, nil
}

func (r *TemplateRepo) CreateTemplate(ctx context.Context, template model.EventTemplate) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&template).Error
	})
}

func (r *TemplateRepo) UpdateTemplate(ctx context.Context, template model.EventTemplate) (model.EventTemplate, error) {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Save(&template).Error
	})

	if err != nil {
		return model.EventTemplate{}, err
	}

	return template, nil
}

func (r *TemplateRepo) DeleteTemplate(ctx context.Context, id string) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ?", id).Delete(&model.EventTemplate{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
