package models

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"time"
)

type PackagingStatus string

const (
	PackagingStatusPending   PackagingStatus = "pending"
	PackagingStatusCompleted PackagingStatus = "completed"
)

type SaleStatus string

const (
	SaleStatusPending   SaleStatus = "pending"
	SaleStatusCompleted SaleStatus = "completed"
	SaleStatusCancelled SaleStatus = "cancelled"
)

type AlertStatus string

const (
	AlertStatusActive       AlertStatus = "active"
	AlertStatusResolved     AlertStatus = "resolved"
	AlertStatusAcknowledged AlertStatus = "acknowledged"
)

const dateOnlyLayout = "2006-01-02"

// DateOnly is a calendar date column ("2006-01-02" over JSON and in the
// store). Records carry dates without time-of-day, and sales summaries group
// by this value.
type DateOnly time.Time

func NewDateOnly(year int, month time.Month, day int) DateOnly {
	return DateOnly(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

func (d DateOnly) Time() time.Time {
	return time.Time(d)
}

func (d DateOnly) String() string {
	return time.Time(d).Format(dateOnlyLayout)
}

func (d DateOnly) IsZero() bool {
	return time.Time(d).IsZero()
}

func (d DateOnly) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *DateOnly) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*d = DateOnly{}
		return nil
	}
	t, err := time.Parse(dateOnlyLayout, s)
	if err != nil {
		return errors.New("date must be in YYYY-MM-DD format")
	}
	*d = DateOnly(t)
	return nil
}

func (d DateOnly) Value() (driver.Value, error) {
	return d.String(), nil
}

func (d *DateOnly) Scan(value interface{}) error {
	switch v := value.(type) {
	case time.Time:
		*d = DateOnly(v)
		return nil
	case []byte:
		return d.scanString(string(v))
	case string:
		return d.scanString(v)
	case nil:
		*d = DateOnly{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into DateOnly", value)
	}
}

func (d *DateOnly) scanString(s string) error {
	if len(s) > len(dateOnlyLayout) {
		s = s[:len(dateOnlyLayout)]
	}
	t, err := time.Parse(dateOnlyLayout, s)
	if err != nil {
		return err
	}
	*d = DateOnly(t)
	return nil
}
