package contract

import (
	"context"

	"focuscam-be/internal/entity"

	"github.com/google/uuid"
)

type FocusSampleRepository interface {
	CreateBatch(ctx context.Context, samples []*entity.FocusSample) error
	// FindBySession returns samples ordered by timestamp ascending.
	FindBySession(ctx context.Context, sessionId uuid.UUID) ([]*entity.FocusSample, error)
}
