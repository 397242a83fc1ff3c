package service

import (
	"strings"
	"testing"
	"time"

	"github.com/alictclasses/alict-backend/internal/model"
)

func TestExportCSV(t *testing.T) {
	svc := NewRegistrationService(nil)

	regs := []model.StudentRegistration{
		{
			Name:        "Kasun Perera",
			Class:       "2026 A/L",
			StudentID:   "AL2026-001",
			PhoneNumber: "+94771234567",
			School:      "Royal College, Colombo",
			CreatedAt:   time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC),
		},
		{
			Name:        "Nimali Silva",
			Class:       "Lesson Packs",
			StudentID:   "LP-042",
			PhoneNumber: "0712345678",
			School:      "Visakha Vidyalaya",
			CreatedAt:   time.Date(2025, 3, 15, 18, 5, 0, 0, time.UTC),
		},
	}

	got := svc.ExportCSV(regs)

	want := strings.Join([]string{
		"Name,Class,Student ID,Phone,School,Registration Date",
		`"Kasun Perera","2026 A/L","AL2026-001","+94771234567","Royal College, Colombo","2025-03-14"`,
		`"Nimali Silva","Lesson Packs","LP-042","0712345678","Visakha Vidyalaya","2025-03-15"`,
	}, "\n")

	if got != want {
		t.Errorf("ExportCSV mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestExportCSVEmpty(t *testing.T) {
	svc := NewRegistrationService(nil)

	got := svc.ExportCSV(nil)
	if got != "Name,Class,Student ID,Phone,School,Registration Date" {
		t.Errorf("empty export should be header only, got %q", got)
	}
}

func TestExportFilename(t *testing.T) {
	svc := NewRegistrationService(nil)

	now := time.Date(2025, 3, 14, 23, 59, 0, 0, time.UTC)
	if got := svc.ExportFilename(now); got != "student_registrations_2025-03-14.csv" {
		t.Errorf("ExportFilename = %q", got)
	}
}
