package entity

import (
	"database/sql"
	"time"
)

const (
	AuthProviderLocal  = "local"
	AuthProviderGoogle = "google"
)

type User struct {
	ID              string         `db:"id"`
	Email           string         `db:"email"`
	Name            string         `db:"name"`
	Password        sql.NullString `db:"password"`
	PhoneNumber     sql.NullString `db:"phone_number"`
	ProfilePhotoURL sql.NullString `db:"profile_photo_url"`
	AuthProvider    string         `db:"auth_provider"`
	IsVerified      bool           `db:"is_verified"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
}

type UserLoginData struct {
	ID    string
	Name  string
	Email string
}
