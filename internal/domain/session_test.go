package domain

import (
	"testing"
	"time"
)

func TestSessionValidAt(t *testing.T) {
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	s := Session{CreatedAt: created, ExpiresAt: created.Add(DefaultSessionTTL)}

	if !s.ValidAt(created) {
		t.Error("session should be valid at creation")
	}
	if !s.ValidAt(s.ExpiresAt.Add(-time.Nanosecond)) {
		t.Error("session should be valid just before expiry")
	}
	if s.ValidAt(s.ExpiresAt) {
		t.Error("session should be rejected at expiry")
	}
	if s.ValidAt(s.ExpiresAt.Add(time.Second)) {
		t.Error("session should be rejected after expiry")
	}
}

func TestTimeLogTotalHours(t *testing.T) {
	start := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	tl := TimeLog{StartTime: start, EndTime: start.Add(90*time.Minute + 20*time.Second)}
	if got := tl.TotalHours(); got != 1.51 {
		t.Errorf("TotalHours() = %v, want 1.51", got)
	}
}

func TestProjectValidate(t *testing.T) {
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	early := start.AddDate(0, 0, -1)

	if err := (Project{Name: "Apollo"}).Validate(); err != nil {
		t.Errorf("minimal project: %v", err)
	}
	if err := (Project{}).Validate(); err == nil {
		t.Error("empty name should fail")
	}
	if err := (Project{Name: "Apollo", StartDate: &start, Deadline: &early}).Validate(); err == nil {
		t.Error("deadline before start should fail")
	}
	if err := (Project{Name: "Apollo", StartDate: &start, Deadline: &start}).Validate(); err != nil {
		t.Errorf("same-day deadline: %v", err)
	}
}

func TestTimeLogValidate(t *testing.T) {
	start := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	ok := TimeLog{TaskID: "t", UserID: "u", StartTime: start, EndTime: start.Add(time.Hour)}
	if err := ok.Validate(); err != nil {
		t.Errorf("valid log: %v", err)
	}
	bad := ok
	bad.EndTime = start.Add(-time.Minute)
	if err := bad.Validate(); err == nil {
		t.Error("end before start should fail")
	}
	bad = ok
	bad.UserID = ""
	if err := bad.Validate(); err == nil {
		t.Error("missing user should fail")
	}
}
