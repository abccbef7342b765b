package repository

import (
	"context"
	"promo-tracking-backend/cmd/qr-tracking/model"

	"gorm.io/gorm"
)

type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{
		db: db,
	}
}

func (r *UserRepo) ListUsers(ctx context.Context) ([]model.User, error) {

	var users []model.User

	result := r.db.
		WithContext(ctx).
		Model(&model.User{}).
		Find(&users)

	if result.Error != nil {
		return nil, result.Error
	}

	return users, nil
}

func (r *UserRepo) GetUser(ctx context.Context, id string) (model.User, error) {

	var user model.User

	result := r.db.
		WithContext(ctx).
		Where("id = ?", id).
		First(&user)

	if result.Error != nil {
		return model.User{}, result.Error
	}

	return user, nil
}

func (r *UserRepo) CreateUser(ctx context.Context, user model.User) (model.User, error) {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&user).Error
	})

	if err != nil {
		return model.User{}, err
	}

	return user, nil
}

func (r *UserRepo) UpdateUser(ctx context.Context, user model.User) (model.User, error) {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Save(&user).Error
	})

	if err != nil {
		return model.User{}, err
	}

	return user, nil
}

func (r *UserRepo) DeleteUser(ctx context.Context, id string) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ?", id).Delete(&model.User{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
