package project

import (
	"strings"
	"testing"
	"time"

	"github.com/erp/erp-system/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProject(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	before := start.AddDate(0, 0, -1)

	t.Run("defaults to planning", func(t *testing.T) {
		p, err := NewProject(Details{Name: "  厂房改造  "})

		require.NoError(t, err)
		assert.Equal(t, "厂房改造", p.Name)
		assert.Equal(t, StatusPlanning, p.Status)
	})

	tests := []struct {
		name    string
		details Details
		code    string
	}{
		{"empty name", Details{Name: " "}, "INVALID_PROJECT_NAME"},
		{"name too long", Details{Name: strings.Repeat("项", 201)}, "INVALID_PROJECT_NAME"},
		{"unknown status", Details{Name: "厂房改造", Status: "ARCHIVED"}, "INVALID_PROJECT_STATUS"},
		{"end before start", Details{Name: "厂房改造", StartDate: &start, EndDate: &before}, "INVALID_DATE_RANGE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewProject(tt.details)
			assert.Equal(t, tt.code, shared.CodeOf(err))
		})
	}

	t.Run("open-ended dates are allowed", func(t *testing.T) {
		_, err := NewProject(Details{Name: "厂房改造", EndDate: &before})
		assert.NoError(t, err)
	})
}

func TestProject_Update(t *testing.T) {
	p, err := NewProject(Details{Name: "厂房改造", Status: StatusInProgress})
	require.NoError(t, err)

	require.NoError(t, p.Update(Details{Name: "厂房改造二期"}))
	assert.Equal(t, StatusInProgress, p.Status, "empty status keeps the current one")
	assert.Equal(t, "厂房改造二期", p.Name)

	require.NoError(t, p.Update(Details{Name: "厂房改造二期", Status: StatusCompleted}))
	assert.Equal(t, StatusCompleted, p.Status)
}

func TestStatus_IsValid(t *testing.T) {
	for _, s := range []Status{StatusPlanning, StatusInProgress, StatusPaused, StatusCompleted, StatusCancelled} {
		assert.True(t, s.IsValid(), s)
	}
	assert.False(t, Status("").IsValid())
	assert.False(t, Status("planning").IsValid())
}
