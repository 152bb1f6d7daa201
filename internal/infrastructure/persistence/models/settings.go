package models

import (
	"time"

	"github.com/erp/erp-system/internal/domain/settings"
)

// SystemSettingsID is the primary key of the only settings row
const SystemSettingsID uint = 1

// SystemSettingsModel is the persistence model for the settings singleton.
// InitializedAt is the first-run marker: it is set once, together with the
// initial administrator, and never cleared.
type SystemSettingsModel struct {
	ID            uint   `gorm:"primaryKey;autoIncrement:false"`
	CompanyName   string `gorm:"type:varchar(200);not null"`
	LogoURL       string `gorm:"type:varchar(500)"`
	InitializedAt *time.Time
	UpdatedAt     time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (SystemSettingsModel) TableName() string {
	return "system_settings"
}

// ToDomain converts the persistence model to the domain settings.
func (m *SystemSettingsModel) ToDomain() *settings.SystemSettings {
	return &settings.SystemSettings{
		ID:          m.ID,
		CompanyName: m.CompanyName,
		LogoURL:     m.LogoURL,
		UpdatedAt:   m.UpdatedAt,
	}
}

// DefaultSystemSettingsModel is the row inserted on first access
func DefaultSystemSettingsModel() *SystemSettingsModel {
	d := settings.NewDefault()
	return &SystemSettingsModel{
		ID:          SystemSettingsID,
		CompanyName: d.CompanyName,
		UpdatedAt:   d.UpdatedAt,
	}
}
