package unitofwork

import (
	"context"

	"gorm.io/gorm"
)

type RepositoryFactoryImpl struct {
	db *gorm.DB
}

func NewRepositoryFactory(db *gorm.DB) RepositoryFactory {
	return &RepositoryFactoryImpl{
		db: db,
	}
}

func (f *RepositoryFactoryImpl) NewUnitOfWork(_ context.Context) UnitOfWork {
	// A UoW is short lived, one per request. The context is applied at
	// Begin() or passed to the repositories directly.
	return NewUnitOfWork(f.db)
}
