package models

import (
	"time"

	"github.com/google/uuid"
)

type AccountScreeningRequest struct {
	ID                        int64     `db:"id"                           json:"-"`
	UUID                      uuid.UUID `db:"uuid"                         json:"uuid"`
	UserID                    int64     `db:"user_id"                      json:"-"`
	Name                      string    `db:"name"                         json:"name"`
	Email                     string    `db:"email"                        json:"email"`
	PhoneNumber               string    `db:"phone_number"                 json:"phone_number"`
	ScheduleDate              string    `db:"schedule_date"                json:"schedule_date"`
	ScheduleTime              string    `db:"schedule_time"                json:"schedule_time"`
	Country                   string    `db:"country"                      json:"country"`
	TradingCapitalAmount      string    `db:"trading_capital_amount"       json:"trading_capital_amount"`
	HasTradingExperience      bool      `db:"has_trading_experience"       json:"has_trading_experience"`
	PreviouslyUsedForexBroker string    `db:"previously_used_forex_broker" json:"previously_used_forex_broker"`
	IsApproved                bool      `db:"is_approved"                  json:"is_approved"`
	CreatedAt                 time.Time `db:"created_at"                   json:"created_at"`
	UpdatedAt                 time.Time `db:"updated_at"                   json:"updated_at"`
}

type AccountUpgradePaymentRequest struct {
	ID        int64     `db:"id"         json:"-"`
	UUID      uuid.UUID `db:"uuid"       json:"uuid"`
	UserID    int64     `db:"user_id"    json:"-"`
	PlanID    int64     `db:"plan_id"    json:"-"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
