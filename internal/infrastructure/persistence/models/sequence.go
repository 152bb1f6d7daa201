package models

import "time"

// DocumentSequenceModel holds the last number handed out in one
// (space, period) sequence.
type DocumentSequenceModel struct {
	Space     string    `gorm:"type:varchar(20);primaryKey"`
	Period    string    `gorm:"type:varchar(6);primaryKey"`
	LastValue int       `gorm:"type:bigint;not null;default:0"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (DocumentSequenceModel) TableName() string {
	return "document_sequences"
}
