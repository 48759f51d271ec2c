package models

import (
	"time"

	"github.com/google/uuid"
)

type AcademyVideo struct {
	ID          int64     `db:"id"          json:"-"`
	UUID        uuid.UUID `db:"uuid"        json:"uuid"`
	Title       string    `db:"title"       json:"title"`
	Description string    `db:"description" json:"description"`
	VideoLink   string    `db:"video_link"  json:"video_link"`
	Thumbnail   string    `db:"thumbnail"   json:"thumbnail"`
	CreatedAt   time.Time `db:"created_at"  json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"  json:"updated_at"`
}

type Webinar struct {
	ID          int64     `db:"id"          json:"-"`
	UUID        uuid.UUID `db:"uuid"        json:"uuid"`
	Name        string    `db:"name"        json:"name"`
	Description string    `db:"description" json:"description"`
	Image       string    `db:"image"       json:"image"`
	Date        string    `db:"date"        json:"date"`
	Time        string    `db:"time"        json:"time"`
	Location    string    `db:"location"    json:"location"`
	CreatedAt   time.Time `db:"created_at"  json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"  json:"updated_at"`
}
