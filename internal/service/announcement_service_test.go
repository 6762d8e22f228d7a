package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"rtrw-admin-svc/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.NewLogger("error", "text")
}

// validation happens before any store access, so a service with no
// backing collection is enough to exercise the rejection paths
func newValidationOnlyAnnouncementService() AnnouncementService {
	return NewAnnouncementService(nil)
}

func TestAnnouncementCreateValidation(t *testing.T) {
	svc := newValidationOnlyAnnouncementService()
	ctx := context.Background()

	tests := []struct {
		name    string
		input   AnnouncementInput
		message string
	}{
		{
			"missing fields",
			AnnouncementInput{Title: "Kerja Bakti"},
			"Missing required fields: title, descriptions, priority, status",
		},
		{
			"bad priority",
			AnnouncementInput{Title: "a", Descriptions: "b", Priority: "urgent", Status: "draft"},
			"Invalid priority. Must be 'rendah', 'sedang', or 'tinggi'",
		},
		{
			"bad status",
			AnnouncementInput{Title: "a", Descriptions: "b", Priority: "tinggi", Status: "archived"},
			"Invalid status. Must be 'draft' or 'published'",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, &tt.input)
			assert.True(t, IsValidation(err))
			assert.EqualError(t, err, tt.message)
		})
	}
}

func TestAnnouncementUpdateValidation(t *testing.T) {
	svc := newValidationOnlyAnnouncementService()
	ctx := context.Background()

	empty := ""
	bad := "urgent"

	t.Run("empty title rejected", func(t *testing.T) {
		_, err := svc.Update(ctx, 1, &AnnouncementUpdateInput{Title: &empty})
		assert.True(t, IsValidation(err))
	})

	t.Run("bad priority rejected", func(t *testing.T) {
		_, err := svc.Update(ctx, 1, &AnnouncementUpdateInput{Priority: &bad})
		assert.True(t, IsValidation(err))
	})

	t.Run("no fields rejected", func(t *testing.T) {
		_, err := svc.Update(ctx, 1, &AnnouncementUpdateInput{})
		assert.True(t, IsValidation(err))
		assert.EqualError(t, err, "no fields to update")
	})
}

func TestFinanceExportOptionValidation(t *testing.T) {
	svc := NewFinanceService(nil)
	ctx := context.Background()

	t.Run("bad start date", func(t *testing.T) {
		_, _, err := svc.Export(ctx, ExportOptions{StartDate: "01-05-2024"})
		assert.True(t, IsValidation(err))
	})

	t.Run("bad end date", func(t *testing.T) {
		_, _, err := svc.Export(ctx, ExportOptions{EndDate: "next week"})
		assert.True(t, IsValidation(err))
	})

	t.Run("bad category", func(t *testing.T) {
		_, _, err := svc.Export(ctx, ExportOptions{Category: "hutang"})
		assert.True(t, IsValidation(err))
	})
}

func TestUserCreateValidation(t *testing.T) {
	// no logger access happens before validation fails
	svc := NewUserService(nil, testLogger())
	ctx := context.Background()

	tests := []struct {
		name  string
		input UserInput
	}{
		{"missing fields", UserInput{Name: "Budi"}},
		{"bad email", UserInput{Name: "Budi", Email: "not-an-email", Password: "rahasia1", Role: "admin"}},
		{"short password", UserInput{Name: "Budi", Email: "budi@warga.id", Password: "abc", Role: "admin"}},
		{"bad role", UserInput{Name: "Budi", Email: "budi@warga.id", Password: "rahasia1", Role: "ketua"}},
		{"bad status", UserInput{Name: "Budi", Email: "budi@warga.id", Password: "rahasia1", Role: "admin", Status: "cuti"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, &tt.input)
			assert.True(t, IsValidation(err))
		})
	}
}
