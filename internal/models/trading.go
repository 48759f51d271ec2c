package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type SignalTerm string

const (
	TermLong  SignalTerm = "long"
	TermShort SignalTerm = "short"
)

type SignalAction string

const (
	ActionBuy  SignalAction = "buy"
	ActionSell SignalAction = "sell"
)

type Signal struct {
	ID          int64           `db:"id"          json:"-"`
	UUID        uuid.UUID       `db:"uuid"        json:"uuid"`
	Entry       float64         `db:"entry"       json:"entry"`
	TakeProfit  float64         `db:"take_profit" json:"take_profit"`
	StopLoss    float64         `db:"stop_loss"   json:"stop_loss"`
	Term        SignalTerm      `db:"term"        json:"term"`
	Action      SignalAction    `db:"action"      json:"action"`
	PairBase    string          `db:"pair_base"   json:"pair_base"`
	PairQuote   string          `db:"pair_quote"  json:"pair_quote"`
	Description string          `db:"description" json:"description"`
	Targets     pq.Float64Array `db:"targets"     json:"targets"`
	IsActive    bool            `db:"is_active"   json:"is_active"`
	AuthorID    int64           `db:"author_id"   json:"-"`
	Author      SignalAuthor    `db:"author"      json:"author"`
	CreatedAt   time.Time       `db:"created_at"  json:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"  json:"updated_at"`
}

type SignalAuthor struct {
	UUID      uuid.UUID `db:"uuid"       json:"uuid"`
	Username  string    `db:"username"   json:"username"`
	FirstName string    `db:"first_name" json:"first_name"`
	LastName  string    `db:"last_name"  json:"last_name"`
}

type NotificationChannel string

const (
	ChannelEmail    NotificationChannel = "email"
	ChannelSMS      NotificationChannel = "sms"
	ChannelWhatsApp NotificationChannel = "whatsapp"
	ChannelTelegram NotificationChannel = "telegram"
)

type SubscriptionPlan struct {
	ID                   int64          `db:"id"                    json:"-"`
	UUID                 uuid.UUID      `db:"uuid"                  json:"uuid"`
	Name                 string         `db:"name"                  json:"name"`
	Description          string         `db:"description"           json:"description"`
	MonthlyPrice         string         `db:"monthly_price"         json:"monthly_price"`
	YearlyPrice          string         `db:"yearly_price"          json:"yearly_price"`
	Currency             string         `db:"currency"              json:"currency"`
	NotificationChannels pq.StringArray `db:"notification_channels" json:"notification_channels"`
	IsActive             bool           `db:"is_active"             json:"is_active"`
	ComingSoon           bool           `db:"coming_soon"           json:"coming_soon"`
	IsSpecial            bool           `db:"is_special"            json:"is_special"`
	ButtonCTA            string         `db:"button_cta"            json:"button_cta"`
	Ordering             int            `db:"ordering"              json:"ordering"`
	CreatedByID          *int64         `db:"created_by_id"         json:"-"`
	CreatedAt            time.Time      `db:"created_at"            json:"created_at"`
	UpdatedAt            time.Time      `db:"updated_at"            json:"updated_at"`
}

type Subscription struct {
	ID             int64     `db:"id"              json:"-"`
	UUID           uuid.UUID `db:"uuid"            json:"uuid"`
	UserID         int64     `db:"user_id"         json:"-"`
	PlanID         int64     `db:"plan_id"         json:"-"`
	StartTimestamp time.Time `db:"start_timestamp" json:"start_timestamp"`
	EndTimestamp   time.Time `db:"end_timestamp"   json:"end_timestamp"`
	IsActive       bool      `db:"is_active"       json:"is_active"`
	CreatedAt      time.Time `db:"created_at"      json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"      json:"updated_at"`
}

// Subscriber is an active user paired with the channels of one of their active plans.
type Subscriber struct {
	User
	Channels pq.StringArray `db:"notification_channels" json:"notification_channels"`
}

type DashboardStats struct {
	TotalUsers          int64 `db:"total_users"          json:"total_users"`
	ActiveSubscriptions int64 `db:"active_subscriptions" json:"active_subscriptions"`
	TotalSignals        int64 `db:"total_signals"        json:"total_signals"`
	ActiveSignals       int64 `db:"active_signals"       json:"active_signals"`
}
