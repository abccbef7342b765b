package model

type BaseResponse struct {
	Data    any    `json:"data,omitempty"`
	Message string `json:"message"`
}

type UserCreateRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
}

type UserUpdateRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
}

type QRCodeCreateRequest struct {
	TargetContent string `json:"target_content" validate:"required,max=2048"`
	Title         string `json:"title" validate:"max=100"`
	Description   string `json:"description" validate:"max=255"`
	UserID        int    `json:"user_id"`
}

type QRCodeUpdateRequest struct {
	TargetContent *string `json:"target_content" validate:"omitempty,max=2048"`
	Title         *string `json:"title"`
	Description   *string `json:"description"`
	IsActive      *bool   `json:"is_active"`
}

type ScanCreateRequest struct {
	Location string `json:"location"`
}

type SubscriptionCreateRequest struct {
	UserID           int    `json:"user_id" validate:"required"`
	PlanName         string `json:"plan_name" validate:"required"`
	MaxQRCodes       int    `json:"max_qr_codes"`
	MaxScansPerMonth int    `json:"max_scans_per_month"`
	EndDate          string `json:"end_date"`
}

type SubscriptionUpdateRequest struct {
	PlanName         *string `json:"plan_name"`
	Status           *string `json:"status"`
	EndDate          *string `json:"end_date"`
	IsActive         *bool   `json:"is_active"`
	MaxQRCodes       *int    `json:"max_qr_codes"`
	MaxScansPerMonth *int    `json:"max_scans_per_month"`
}
