package service

import (
	"context"
	"sync"

	"badger-buds-be/internal/dto"
	"badger-buds-be/internal/entity"
	"badger-buds-be/internal/repository/contract"
	"badger-buds-be/internal/repository/specification"
	"badger-buds-be/internal/repository/unitofwork"
)

// fakeStore backs the fake unit of work. Specifications are not interpreted;
// FindOne looks for a ByID spec, which is all the services use.
type fakeStore struct {
	mu      sync.Mutex
	cats    []*entity.Cat
	records []*entity.AdoptionRecord
	failOn  error
}

func (s *fakeStore) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUow{store: s}
}

func (s *fakeStore) recordCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

type fakeUow struct {
	store *fakeStore
}

func (u *fakeUow) Begin(ctx context.Context) error { return nil }
func (u *fakeUow) Commit() error                   { return nil }
func (u *fakeUow) Rollback() error                 { return nil }

func (u *fakeUow) CatRepository() contract.CatRepository {
	return &fakeCatRepository{store: u.store}
}

func (u *fakeUow) AdoptionRecordRepository() contract.AdoptionRecordRepository {
	return &fakeAdoptionRecordRepository{store: u.store}
}

type fakeCatRepository struct {
	store *fakeStore
}

func (r *fakeCatRepository) Upsert(ctx context.Context, cat *entity.Cat) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i, c := range r.store.cats {
		if c.Id == cat.Id {
			r.store.cats[i] = cat
			return nil
		}
	}
	r.store.cats = append(r.store.cats, cat)
	return nil
}

func (r *fakeCatRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Cat, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.failOn != nil {
		return nil, r.store.failOn
	}
	for _, spec := range specs {
		if byId, ok := spec.(specification.ByID); ok {
			for _, c := range r.store.cats {
				if c.Id == byId.ID {
					cp := *c
					return &cp, nil
				}
			}
		}
	}
	return nil, nil
}

func (r *fakeCatRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Cat, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.failOn != nil {
		return nil, r.store.failOn
	}
	out := make([]*entity.Cat, 0, len(r.store.cats))
	for _, c := range r.store.cats {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeCatRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return int64(len(r.store.cats)), nil
}

type fakeAdoptionRecordRepository struct {
	store *fakeStore
}

func (r *fakeAdoptionRecordRepository) Create(ctx context.Context, record *entity.AdoptionRecord) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.failOn != nil {
		return r.store.failOn
	}
	r.store.records = append(r.store.records, record)
	return nil
}

func (r *fakeAdoptionRecordRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(r.store.recordCount()), nil
}

type recordingEvents struct {
	mu      sync.Mutex
	saved   []string
	removed []string
	adopted []string
}

func (e *recordingEvents) PublishCatSaved(ctx context.Context, sessionId string, cat *entity.Cat) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.saved = append(e.saved, cat.Id)
}

func (e *recordingEvents) PublishCatUnselected(ctx context.Context, sessionId, catId string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.removed = append(e.removed, catId)
}

func (e *recordingEvents) PublishCatAdopted(ctx context.Context, sessionId string, cat *entity.Cat) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.adopted = append(e.adopted, cat.Id)
}

type recordingPublisher struct {
	mu       sync.Mutex
	messages []dto.PublishAdoptionMessage
}

func (p *recordingPublisher) PublishAdoption(ctx context.Context, msg dto.PublishAdoptionMessage) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages = append(p.messages, msg)
	return nil
}
