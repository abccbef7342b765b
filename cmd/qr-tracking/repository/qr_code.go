package repository

import (
	"context"
	"promo-tracking-backend/cmd/qr-tracking/model"
	"time"

	"gorm.io/gorm"
)

type QRCodeRepo struct {
	db *gorm.DB
}

func NewQRCodeRepo(db *gorm.DB) *QRCodeRepo {
	return &QRCodeRepo{
		db: db,
	}
}

func (r *QRCodeRepo) ListQRCodes(ctx context.Context, userID int) ([]model.QRCode, error) {

	var codes []model.QRCode

	query := r.db.
		WithContext(ctx).
		Model(&model.QRCode{})

	if userID != 0 {
		query = query.Where("user_id = ?", userID)
	}

	result := query.Find(&codes)
	if result.Error != nil {
		return nil, result.Error
	}

	return codes, nil
}

func (r *QRCodeRepo) GetQRCode(ctx context.Context, id string) (model.QRCode, error) {

	var code model.QRCode

	result := r.db.
		WithContext(ctx).
		Where("id = ?", id).
		First(&code)

	if result.Error != nil {
		return model.QRCode{}, result.Error
	}

	return code, nil
}

func (r *QRCodeRepo) CreateQRCode(ctx context.Context, code model.QRCode) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&code).Error
	})
}

func (r *QRCodeRepo) UpdateQRCode(ctx context.Context, code model.QRCode) (model.QRCode, error) {

	code.UpdatedAt = time.Now().UTC()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Save(&code).Error
	})

	if err != nil {
		return model.QRCode{}, err
	}

	return code, nil
}

func (r *QRCodeRepo) DeleteQRCode(ctx context.Context, id string) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ?", id).Delete(&model.QRCode{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *QRCodeRepo) ListScans(ctx context.Context, qrCodeID string) ([]model.QRScan, error) {

	var scans []model.QRScan

	result := r.db.
		WithContext(ctx).
		Where("qr_code_id = ?", qrCodeID).
		Find(&scans)

	if result.Error != nil {
		return nil, result.Error
	}

	return scans, nil
}

// RecordScan appends a scan row and bumps the owning code's scan_count in
// one transaction. The counter update is a single
// "scan_count = scan_count + 1" statement, so concurrent scans of the same
// code never lose increments.
func (r *QRCodeRepo) RecordScan(ctx context.Context, trackingID string, scan model.QRScan) (model.QRScan, error) {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var code model.QRCode
		if err := tx.Where("tracking_id = ? AND is_active = ?", trackingID, true).First(&code).Error; err != nil {
			return err
		}

		scan.QRCodeID = code.ID
		if err := tx.Create(&scan).Error; err != nil {
			return err
		}

		return tx.Model(&model.QRCode{}).
			Where("id = ?", code.ID).
			UpdateColumn("scan_count", gorm.Expr("scan_count + ?", 1)).
			Error
	})

	if err != nil {
		return model.QRScan{}, err
	}

	return scan, nil
}
