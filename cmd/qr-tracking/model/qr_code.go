package model

import "time"

// QRCode carries two identifiers: the primary key and a public tracking id
// that appears inside the printed code.
type QRCode struct {
	ID            string    `gorm:"column:id;primaryKey" json:"id"`
	TrackingID    string    `gorm:"column:tracking_id;size:36;uniqueIndex;not null" json:"tracking_id"`
	UserID        int       `gorm:"column:user_id;not null;index" json:"user_id"`
	TargetContent string    `gorm:"column:target_content;size:2048;not null" json:"target_content"`
	Title         string    `gorm:"column:title;size:100" json:"title"`
	Description   string    `gorm:"column:description;size:255" json:"description"`
	CreatedAt     time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at" json:"updated_at"`
	IsActive      bool      `gorm:"column:is_active" json:"is_active"`
	ScanCount     int       `gorm:"column:scan_count" json:"scan_count"`
}

func (m *QRCode) TableName() string {
	return "qr_codes"
}

type QRScan struct {
	ID        int       `gorm:"column:id;primaryKey;autoIncrement" json:"id" csv:"id"`
	QRCodeID  string    `gorm:"column:qr_code_id;size:36;not null;index" json:"qr_code_id" csv:"qr_code_id"`
	ScannedAt time.Time `gorm:"column:scanned_at" json:"scanned_at" csv:"scanned_at"`
	IPAddress string    `gorm:"column:ip_address;size:45" json:"ip_address" csv:"ip_address"`
	UserAgent string    `gorm:"column:user_agent;size:255" json:"user_agent" csv:"user_agent"`
	Location  string    `gorm:"column:location;size:100" json:"location" csv:"location"`
}

func (m *QRScan) TableName() string {
	return "qr_scans"
}
