package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-02-15")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if d.String() != "2026-02-15" {
		t.Errorf("String() = %q, want 2026-02-15", d.String())
	}
}

func TestParseDate_RFC3339Fallback(t *testing.T) {
	d, err := ParseDate("2026-02-15T10:30:00Z")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if d.String() != "2026-02-15" {
		t.Errorf("String() = %q, want 2026-02-15", d.String())
	}
}

func TestParseDate_Invalid(t *testing.T) {
	for _, s := range []string{"", "15/02/2026", "yesterday", "2026-13-40"} {
		if _, err := ParseDate(s); err == nil {
			t.Errorf("ParseDate(%q): expected error, got nil", s)
		}
	}
}

func TestDate_JSONRoundTrip(t *testing.T) {
	d := NewDate(2026, time.February, 15)
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"2026-02-15"` {
		t.Errorf("marshal = %s, want \"2026-02-15\"", data)
	}

	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Equal(d.Time) {
		t.Errorf("round trip = %v, want %v", back, d)
	}
}

func TestDate_UnmarshalNullPointer(t *testing.T) {
	var holder struct {
		PlanDate *Date `json:"plan_date"`
	}
	if err := json.Unmarshal([]byte(`{"plan_date": null}`), &holder); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if holder.PlanDate != nil {
		t.Errorf("PlanDate = %v, want nil", holder.PlanDate)
	}
}

func TestDate_Scan(t *testing.T) {
	tests := []struct {
		name string
		src  interface{}
		want string
	}{
		{"time.Time", time.Date(2026, 2, 15, 9, 30, 0, 0, time.UTC), "2026-02-15"},
		{"date string", "2026-02-15", "2026-02-15"},
		{"datetime string", "2026-02-15 00:00:00", "2026-02-15"},
		{"bytes", []byte("2026-02-15"), "2026-02-15"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			if err := d.Scan(tt.src); err != nil {
				t.Fatalf("Scan(%v): %v", tt.src, err)
			}
			if d.String() != tt.want {
				t.Errorf("Scan(%v) = %s, want %s", tt.src, d, tt.want)
			}
		})
	}
}

func TestDate_ScanNil(t *testing.T) {
	d := NewDate(2026, time.February, 15)
	if err := d.Scan(nil); err != nil {
		t.Fatalf("Scan(nil): %v", err)
	}
	if !d.IsZero() {
		t.Errorf("Scan(nil) left %v, want zero", d)
	}
}

func TestDate_ScanUnsupported(t *testing.T) {
	var d Date
	if err := d.Scan(42); err == nil {
		t.Error("Scan(42): expected error, got nil")
	}
}
