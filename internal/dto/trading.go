package dto

import (
	"time"

	md "github.com/JMURv/zedasignal/internal/models"
	"github.com/google/uuid"
)

type CreateSignalRequest struct {
	Entry       float64         `json:"entry"       validate:"required"`
	TakeProfit  float64         `json:"take_profit" validate:"required"`
	StopLoss    float64         `json:"stop_loss"   validate:"required"`
	Term        md.SignalTerm   `json:"term"        validate:"omitempty,oneof=long short"`
	Action      md.SignalAction `json:"action"      validate:"omitempty,oneof=buy sell"`
	PairBase    string          `json:"pair_base"   validate:"required,max=10"`
	PairQuote   string          `json:"pair_quote"  validate:"required,max=10"`
	Description string          `json:"description"`
	Targets     []float64       `json:"targets"`
}

type CreatePlanRequest struct {
	Name                 string   `json:"name"                  validate:"required,max=255"`
	Description          string   `json:"description"`
	MonthlyPrice         string   `json:"monthly_price"         validate:"omitempty,max=255"`
	YearlyPrice          string   `json:"yearly_price"          validate:"omitempty,max=255"`
	Currency             string   `json:"currency"              validate:"omitempty,len=3"`
	NotificationChannels []string `json:"notification_channels" validate:"dive,oneof=email sms whatsapp telegram"`
	IsActive             *bool    `json:"is_active"`
	ComingSoon           bool     `json:"coming_soon"`
	IsSpecial            bool     `json:"is_special"`
	ButtonCTA            string   `json:"button_cta"            validate:"omitempty,max=255"`
	Ordering             int      `json:"ordering"`
}

type PlanWithStatus struct {
	*md.SubscriptionPlan
	Active bool `json:"active"`
}

type ActivateSubscriptionRequest struct {
	User             uuid.UUID `json:"user"              validate:"required"`
	SubscriptionPlan uuid.UUID `json:"subscription_plan" validate:"required"`
	StartTimestamp   time.Time `json:"start_timestamp"   validate:"required"`
	EndTimestamp     time.Time `json:"end_timestamp"     validate:"required,gtfield=StartTimestamp"`
}

type CreateBotRequest struct {
	Name                string `json:"name"                  validate:"required,max=255"`
	MinInvestmentAmount string `json:"min_investment_amount" validate:"omitempty,max=255"`
	MaxInvestmentAmount string `json:"max_investment_amount" validate:"omitempty,max=255"`
	PerformanceFee      string `json:"performance_fee"       validate:"omitempty,max=255"`
	Overall             string `json:"overall"               validate:"omitempty,max=255"`
	IsActive            *bool  `json:"is_active"`
	IsTopPerforming     bool   `json:"is_top_performing"`
}

type CreateBotlabBotRequest struct {
	Name                 string `json:"name"                   validate:"required,max=255"`
	NameOfBroker         string `json:"name_of_broker"         validate:"omitempty,max=255"`
	ServerName           string `json:"server_name"            validate:"omitempty,max=255"`
	InvestorLogin        string `json:"investor_login"         validate:"omitempty,max=255"`
	InvestorPassword     string `json:"investor_password"      validate:"omitempty,max=255"`
	Terminal             string `json:"terminal"               validate:"omitempty,max=255"`
	TestCommencementDate string `json:"test_commencement_date" validate:"omitempty,datetime=2006-01-02"`
}

type CreateGuideRequest struct {
	Bot         uuid.UUID `json:"bot"         validate:"required"`
	Description string    `json:"description" validate:"required"`
}

type ScreeningRequest struct {
	Name                      string `json:"name"                         validate:"required,max=255"`
	Email                     string `json:"email"                        validate:"required,email"`
	PhoneNumber               string `json:"phone_number"                 validate:"required,max=255"`
	ScheduleDate              string `json:"schedule_date"                validate:"required,datetime=2006-01-02"`
	ScheduleTime              string `json:"schedule_time"                validate:"required,datetime=15:04"`
	Country                   string `json:"country"                      validate:"required,max=255"`
	TradingCapitalAmount      string `json:"trading_capital_amount"       validate:"required,max=255"`
	HasTradingExperience      bool   `json:"has_trading_experience"`
	PreviouslyUsedForexBroker string `json:"previously_used_forex_broker" validate:"omitempty,max=255"`
}

type HelpSupportRequest struct {
	Name    string `json:"name"    validate:"required,max=255"`
	Email   string `json:"email"   validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

type UpgradePaymentRequest struct {
	SubscriptionPlan uuid.UUID `json:"subscription_plan" validate:"required"`
}
