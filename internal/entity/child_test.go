package entity

import (
	"testing"
	"time"

	childDomain "LittleSteps/internal/api/child"
	"errors"
)

func TestChildAgeInMonths(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		birth time.Time
		want  int
	}{
		{"exactly two years", time.Date(2024, 8, 25, 0, 0, 0, 0, time.UTC), 24},
		{"day before birthday month rolls back", time.Date(2024, 8, 26, 0, 0, 0, 0, time.UTC), 23},
		{"eighteen months", time.Date(2025, 2, 25, 0, 0, 0, 0, time.UTC), 18},
		{"born today", now, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := Child{BirthDate: tt.birth}
			if got := c.AgeInMonths(now); got != tt.want {
				t.Fatalf("AgeInMonths() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestChildInScreeningRange(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

	tooYoung := Child{BirthDate: now.AddDate(0, -11, 0)}
	if tooYoung.InScreeningRange(now) {
		t.Fatal("11 months should be below the screening range")
	}

	inRange := Child{BirthDate: now.AddDate(-2, 0, 0)}
	if !inRange.InScreeningRange(now) {
		t.Fatal("24 months should be in the screening range")
	}

	tooOld := Child{BirthDate: now.AddDate(-7, 0, 0)}
	if tooOld.InScreeningRange(now) {
		t.Fatal("84 months should be above the screening range")
	}
}

func TestChildValidate(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

	c := Child{Sex: "other", BirthDate: now.AddDate(-2, 0, 0)}
	if err := c.Validate(now); !errors.Is(err, childDomain.ErrInvalidSex) {
		t.Fatalf("error = %v, want ErrInvalidSex", err)
	}

	c = Child{Sex: SexFemale, BirthDate: now.AddDate(0, 0, 1)}
	if err := c.Validate(now); !errors.Is(err, childDomain.ErrBirthDateInFuture) {
		t.Fatalf("error = %v, want ErrBirthDateInFuture", err)
	}

	c = Child{Sex: SexMale, BirthDate: now.AddDate(-2, 0, 0)}
	if err := c.Validate(now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
