package contract

import (
	"context"

	"focuscam-be/internal/entity"
	"focuscam-be/internal/repository/specification"
)

type ReportRepository interface {
	// Upsert writes the report keyed by its session id, replacing any
	// previous build for the same session.
	Upsert(ctx context.Context, report *entity.Report) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Report, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Report, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
