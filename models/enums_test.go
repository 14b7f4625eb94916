package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateOnlyJSON(t *testing.T) {
	d := NewDateOnly(2024, time.March, 5)

	b, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `"2024-03-05"` {
		t.Errorf("marshal = %s, want \"2024-03-05\"", b)
	}

	var parsed DateOnly
	if err := json.Unmarshal([]byte(`"2024-12-31"`), &parsed); err != nil {
		t.Fatal(err)
	}
	if parsed.String() != "2024-12-31" {
		t.Errorf("unmarshal = %s, want 2024-12-31", parsed)
	}

	if err := json.Unmarshal([]byte(`"31/12/2024"`), &parsed); err == nil {
		t.Error("unmarshal accepted a non-ISO date")
	}
	if err := json.Unmarshal([]byte(`"2024-13-40"`), &parsed); err == nil {
		t.Error("unmarshal accepted an impossible date")
	}
}

func TestDateOnlyScan(t *testing.T) {
	var d DateOnly

	if err := d.Scan("2024-03-05"); err != nil {
		t.Fatal(err)
	}
	if d.String() != "2024-03-05" {
		t.Errorf("scan string = %s", d)
	}

	// Datetime columns come back with a time component; keep the date part.
	if err := d.Scan("2024-03-05 00:00:00+00:00"); err != nil {
		t.Fatal(err)
	}
	if d.String() != "2024-03-05" {
		t.Errorf("scan datetime = %s", d)
	}

	if err := d.Scan(time.Date(2023, time.July, 1, 15, 4, 5, 0, time.UTC)); err != nil {
		t.Fatal(err)
	}
	if d.String() != "2023-07-01" {
		t.Errorf("scan time.Time = %s", d)
	}

	if err := d.Scan(nil); err != nil {
		t.Fatal(err)
	}
	if !d.IsZero() {
		t.Error("scan nil should yield the zero date")
	}

	if err := d.Scan(42); err == nil {
		t.Error("scan accepted an int")
	}
}

func TestDateOnlyValue(t *testing.T) {
	d := NewDateOnly(2024, time.January, 9)
	v, err := d.Value()
	if err != nil {
		t.Fatal(err)
	}
	if v != "2024-01-09" {
		t.Errorf("value = %v, want 2024-01-09", v)
	}
}
