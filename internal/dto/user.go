package dto

import (
	md "github.com/JMURv/zedasignal/internal/models"
	"github.com/google/uuid"
)

type RegisterRequest struct {
	Email       string `json:"email"        validate:"required,email"`
	Password    string `json:"password"     validate:"required,min=8"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,max=20"`
	FullName    string `json:"full_name"    validate:"omitempty,max=300"`
}

type RegisterResponse struct {
	UUID uuid.UUID `json:"uuid"`
}

type UpdateUserRequest struct {
	FirstName   string `json:"first_name"   validate:"omitempty,max=150"`
	LastName    string `json:"last_name"    validate:"omitempty,max=150"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,max=20"`
}

type UpdateProfileRequest struct {
	HasTradingExperience   bool   `json:"has_trading_experience"`
	RefID                  string `json:"ref_id"                     validate:"omitempty,max=255"`
	AmountRangeToTradeWith string `json:"amount_range_to_trade_with" validate:"omitempty,max=255"`
}

type UserWithPlan struct {
	User             *md.User             `json:"user"`
	SubscriptionPlan *md.SubscriptionPlan `json:"subscription_plan"`
}
