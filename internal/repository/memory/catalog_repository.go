package memory

import (
	"context"
	"sync"

	"badger-buds-be/internal/entity"
	"badger-buds-be/internal/repository/contract"
	"badger-buds-be/internal/repository/specification"
	"badger-buds-be/internal/repository/unitofwork"
)

// Catalog is an in-process stand-in for the Postgres catalog, loaded from a
// catalog file. Only ByID and ByIDs specifications filter; ordering and
// pagination are ignored and file order is kept.
type Catalog struct {
	mu      sync.RWMutex
	cats    []*entity.Cat
	records []*entity.AdoptionRecord
}

func NewCatalog(cats []*entity.Cat) *Catalog {
	c := &Catalog{}
	for _, cat := range cats {
		cp := *cat
		c.cats = append(c.cats, &cp)
	}
	return c
}

// NewUnitOfWork makes Catalog a unitofwork.RepositoryFactory.
func (c *Catalog) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &catalogUnitOfWork{catalog: c}
}

type catalogUnitOfWork struct {
	catalog *Catalog
}

// Transactions are no-ops: every write is applied immediately.
func (u *catalogUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *catalogUnitOfWork) Commit() error                   { return nil }
func (u *catalogUnitOfWork) Rollback() error                 { return nil }

func (u *catalogUnitOfWork) CatRepository() contract.CatRepository {
	return &catRepository{catalog: u.catalog}
}

func (u *catalogUnitOfWork) AdoptionRecordRepository() contract.AdoptionRecordRepository {
	return &adoptionRecordRepository{catalog: u.catalog}
}

func matches(cat *entity.Cat, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if cat.Id != s.ID {
				return false
			}
		case specification.ByIDs:
			found := false
			for _, id := range s.IDs {
				if cat.Id == id {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
	}
	return true
}

type catRepository struct {
	catalog *Catalog
}

func (r *catRepository) Upsert(ctx context.Context, cat *entity.Cat) error {
	r.catalog.mu.Lock()
	defer r.catalog.mu.Unlock()

	cp := *cat
	for i, existing := range r.catalog.cats {
		if existing.Id == cat.Id {
			r.catalog.cats[i] = &cp
			return nil
		}
	}
	r.catalog.cats = append(r.catalog.cats, &cp)
	return nil
}

func (r *catRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Cat, error) {
	r.catalog.mu.RLock()
	defer r.catalog.mu.RUnlock()

	for _, cat := range r.catalog.cats {
		if matches(cat, specs) {
			cp := *cat
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *catRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Cat, error) {
	r.catalog.mu.RLock()
	defer r.catalog.mu.RUnlock()

	result := make([]*entity.Cat, 0, len(r.catalog.cats))
	for _, cat := range r.catalog.cats {
		if matches(cat, specs) {
			cp := *cat
			result = append(result, &cp)
		}
	}
	return result, nil
}

func (r *catRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	cats, _ := r.FindAll(ctx, specs...)
	return int64(len(cats)), nil
}

type adoptionRecordRepository struct {
	catalog *Catalog
}

func (r *adoptionRecordRepository) Create(ctx context.Context, record *entity.AdoptionRecord) error {
	r.catalog.mu.Lock()
	defer r.catalog.mu.Unlock()

	cp := *record
	r.catalog.records = append(r.catalog.records, &cp)
	return nil
}

func (r *adoptionRecordRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.catalog.mu.RLock()
	defer r.catalog.mu.RUnlock()

	var count int64
	for _, rec := range r.catalog.records {
		ok := true
		for _, spec := range specs {
			switch s := spec.(type) {
			case specification.BySessionID:
				ok = ok && rec.SessionId == s.SessionID
			case specification.ByCatID:
				ok = ok && rec.CatId == s.CatID
			}
		}
		if ok {
			count++
		}
	}
	return count, nil
}
