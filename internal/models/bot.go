package models

import (
	"time"

	"github.com/google/uuid"
)

type Bot struct {
	ID                  int64     `db:"id"                    json:"-"`
	UUID                uuid.UUID `db:"uuid"                  json:"uuid"`
	Name                string    `db:"name"                  json:"name"`
	MinInvestmentAmount string    `db:"min_investment_amount" json:"min_investment_amount"`
	MaxInvestmentAmount string    `db:"max_investment_amount" json:"max_investment_amount"`
	PerformanceFee      string    `db:"performance_fee"       json:"performance_fee"`
	Overall             string    `db:"overall"               json:"overall"`
	IsActive            bool      `db:"is_active"             json:"is_active"`
	IsTopPerforming     bool      `db:"is_top_performing"     json:"is_top_performing"`
	CreatedAt           time.Time `db:"created_at"            json:"created_at"`
	UpdatedAt           time.Time `db:"updated_at"            json:"updated_at"`
}

type BotlabBot struct {
	ID                   int64     `db:"id"                     json:"-"`
	UUID                 uuid.UUID `db:"uuid"                   json:"uuid"`
	Name                 string    `db:"name"                   json:"name"`
	NameOfBroker         string    `db:"name_of_broker"         json:"name_of_broker"`
	ServerName           string    `db:"server_name"            json:"server_name"`
	InvestorLogin        string    `db:"investor_login"         json:"investor_login"`
	InvestorPassword     string    `db:"investor_password"      json:"investor_password"`
	Terminal             string    `db:"terminal"               json:"terminal"`
	TestCommencementDate string    `db:"test_commencement_date" json:"test_commencement_date"`
	IsDelisted           bool      `db:"is_delisted"            json:"is_delisted"`
	CreatedAt            time.Time `db:"created_at"             json:"created_at"`
	UpdatedAt            time.Time `db:"updated_at"             json:"updated_at"`
}

type CopyTradingGuide struct {
	ID          int64     `db:"id"          json:"-"`
	UUID        uuid.UUID `db:"uuid"        json:"uuid"`
	BotID       int64     `db:"bot_id"      json:"-"`
	BotUUID     uuid.UUID `db:"bot_uuid"    json:"bot"`
	Description string    `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at"  json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"  json:"updated_at"`
}
