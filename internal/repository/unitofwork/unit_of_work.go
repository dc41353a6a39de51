package unitofwork

import (
	"context"

	"badger-buds-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	CatRepository() contract.CatRepository
	AdoptionRecordRepository() contract.AdoptionRecordRepository
}
