package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID Reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID Reference
}

// SoftDelete carries the soft-delete flag and its timestamps.
// Records with IsDeleted set only show up in the deleted listings.
type SoftDelete struct {
	IsDeleted  bool       `json:"isDeleted"`
	DeletedAt  *time.Time `json:"deletedAt,omitempty"`
	RestoredAt *time.Time `json:"restoredAt,omitempty"`
}

// Deleted reports whether the record is soft-deleted.
func (s SoftDelete) Deleted() bool { return s.IsDeleted }
