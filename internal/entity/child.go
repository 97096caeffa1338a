package entity

import (
	"database/sql"
	"time"

	childDomain "LittleSteps/internal/api/child"
)

type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// Screening games target toddlers; outside this window the behavioural
// thresholds are not calibrated.
const (
	ScreeningAgeMinMonths = 12
	ScreeningAgeMaxMonths = 72
)

type Child struct {
	ID               string         `db:"id"`
	ParentID         string         `db:"parent_id"`
	Name             string         `db:"name"`
	BirthDate        time.Time      `db:"birth_date"`
	Sex              Sex            `db:"sex"`
	JaundiceAtBirth  bool           `db:"jaundice_at_birth"`
	FamilyASDHistory bool           `db:"family_asd_history"`
	PhotoURL         sql.NullString `db:"photo_url"`
	CreatedAt        time.Time      `db:"created_at"`
	UpdatedAt        time.Time      `db:"updated_at"`
}

func IsValidSex(s string) bool {
	return s == string(SexMale) || s == string(SexFemale)
}

func (c *Child) AgeInMonths(now time.Time) int {
	months := (now.Year()-c.BirthDate.Year())*12 + int(now.Month()) - int(c.BirthDate.Month())
	if now.Day() < c.BirthDate.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}

func (c *Child) InScreeningRange(now time.Time) bool {
	age := c.AgeInMonths(now)
	return age >= ScreeningAgeMinMonths && age <= ScreeningAgeMaxMonths
}

func (c *Child) Validate(now time.Time) error {
	if !IsValidSex(string(c.Sex)) {
		return childDomain.ErrInvalidSex
	}
	if c.BirthDate.After(now) {
		return childDomain.ErrBirthDateInFuture
	}
	return nil
}
