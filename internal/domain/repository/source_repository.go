package repository

import (
	"context"

	"github.com/diillson/apba-dashboard-go/internal/domain/entity"
)

// SourceRepository reads the raw appendix tables. A source is a local
// .csv/.xlsx path or an s3://bucket/key URI. Row-level anomalies become
// null fields; only unreadable tables or missing columns return an error.
type SourceRepository interface {
	LoadLedger(ctx context.Context, source string) ([]entity.BudgetLineItem, error)
	LoadGrants(ctx context.Context, source string) ([]entity.GrantRecord, error)
	LoadAid(ctx context.Context, source string) ([]entity.AidRecord, error)
	LoadSpecialAllocation(ctx context.Context, source string) ([]entity.SpecialAllocationRecord, error)
}
