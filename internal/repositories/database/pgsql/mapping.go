package pgsql

import (
	"github.com/SscSPs/shop_bookkeeping/internal/core/domain"
	"github.com/SscSPs/shop_bookkeeping/internal/models"
)

func toModelAudit(a domain.AuditFields) models.AuditFields {
	return models.AuditFields{
		CreatedAt:     a.CreatedAt,
		CreatedBy:     a.CreatedBy,
		LastUpdatedAt: a.LastUpdatedAt,
		LastUpdatedBy: a.LastUpdatedBy,
	}
}

func toDomainAudit(a models.AuditFields) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt:     a.CreatedAt.UTC(),
		CreatedBy:     a.CreatedBy,
		LastUpdatedAt: a.LastUpdatedAt.UTC(),
		LastUpdatedBy: a.LastUpdatedBy,
	}
}

func toDomainSoftDelete(s models.SoftDelete) domain.SoftDelete {
	return domain.SoftDelete{
		IsDeleted:  s.IsDeleted,
		DeletedAt:  timePtrUTC(s.DeletedAt),
		RestoredAt: timePtrUTC(s.RestoredAt),
	}
}
