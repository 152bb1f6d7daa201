// Package models contains GORM-specific persistence models that map to database tables.
// These models are separate from domain entities to keep the domain layer pure and free
// from ORM concerns.
//
// Structure:
// - base.go: BaseModel shared by every entity table
// - identity.go: users
// - partner.go: clients
// - project.go: projects
// - contract.go: contracts
// - finance.go: invoices and payments
// - settings.go: the system_settings singleton
// - sequence.go: document number counters
package models
