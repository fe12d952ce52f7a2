package models

import "time"

// AuditFields are the audit columns shared by every record table.
type AuditFields struct {
	CreatedAt     time.Time `db:"created_at"`
	CreatedBy     string    `db:"created_by"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
	LastUpdatedBy string    `db:"last_updated_by"`
}

// SoftDelete are the soft-delete columns of sales, purchases and expenses.
type SoftDelete struct {
	IsDeleted  bool       `db:"is_deleted"`
	DeletedAt  *time.Time `db:"deleted_at"`  // Nullable
	RestoredAt *time.Time `db:"restored_at"` // Nullable
}
