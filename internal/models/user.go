package models

import (
	"time"

	"github.com/google/uuid"
)

type UserType string

const (
	AdminUser   UserType = "admin"
	RegularUser UserType = "user"
)

type User struct {
	ID          int64     `db:"id"           json:"-"`
	UUID        uuid.UUID `db:"uuid"         json:"uuid"`
	Username    string    `db:"username"     json:"username"`
	Email       string    `db:"email"        json:"email"`
	PhoneNumber string    `db:"phone_number" json:"phone_number"`
	FirstName   string    `db:"first_name"   json:"first_name"`
	LastName    string    `db:"last_name"    json:"last_name"`
	Password    string    `db:"password"     json:"-"`
	Type        UserType  `db:"type"         json:"type"`
	IsActive    bool      `db:"is_active"    json:"is_active"`
	IsVerified  bool      `db:"is_verified"  json:"is_verified"`
	IsStaff     bool      `db:"is_staff"     json:"is_staff"`
	CreatedAt   time.Time `db:"created_at"   json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"   json:"updated_at"`
}

func (u *User) EmailAddress() string {
	return u.Email
}

func (u *User) Phone() string {
	return u.PhoneNumber
}

func (u *User) FullName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	default:
		return u.Username
	}
}

type Profile struct {
	ID                     int64     `db:"id"                         json:"-"`
	UUID                   uuid.UUID `db:"uuid"                       json:"uuid"`
	UserID                 int64     `db:"user_id"                    json:"-"`
	HasTradingExperience   bool      `db:"has_trading_experience"     json:"has_trading_experience"`
	RefID                  string    `db:"ref_id"                     json:"ref_id"`
	AmountRangeToTradeWith string    `db:"amount_range_to_trade_with" json:"amount_range_to_trade_with"`
	CreatedAt              time.Time `db:"created_at"                 json:"created_at"`
	UpdatedAt              time.Time `db:"updated_at"                 json:"updated_at"`
}

type VerificationCode struct {
	ID        int64     `db:"id"         json:"-"`
	Code      string    `db:"code"       json:"code"`
	Email     string    `db:"email"      json:"email"`
	Used      bool      `db:"used"       json:"used"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type PasswordResetToken struct {
	ID        int64     `db:"id"         json:"-"`
	UserID    int64     `db:"user_id"    json:"-"`
	Key       string    `db:"key"        json:"-"`
	IPAddress string    `db:"ip_address" json:"ip_address"`
	UserAgent string    `db:"user_agent" json:"user_agent"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Contact is a bare recipient for addresses that are not backed by a user row.
type Contact struct {
	Email       string
	PhoneNumber string
}

func (c Contact) EmailAddress() string {
	return c.Email
}

func (c Contact) Phone() string {
	return c.PhoneNumber
}
