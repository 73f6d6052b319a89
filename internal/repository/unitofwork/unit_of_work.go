package unitofwork

import (
	"context"

	"focuscam-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	SessionRepository() contract.SessionRepository
	ReportRepository() contract.ReportRepository
	FocusSampleRepository() contract.FocusSampleRepository
}
