package adoption

import (
	"context"

	"badger-buds-be/internal/entity"
	"badger-buds-be/pkg/store"
)

// Status is where a cat stands for one session. It is derived from list
// membership on every read and never stored.
type Status string

const (
	StatusAvailable Status = "available"
	StatusSaved     Status = "saved"
	StatusAdopted   Status = "adopted"
)

// Selector applies save, unselect and adopt to a session's lists.
//
// Adopting does not remove the id from the saved list; every read filters
// adopted ids out of both the available list and the basket instead.
type Selector struct {
	state store.ListStore
}

func NewSelector(state store.ListStore) *Selector {
	return &Selector{state: state}
}

func (s *Selector) SavedIds(ctx context.Context) []string {
	return s.state.ReadList(ctx, store.SavedCatIdsKey)
}

func (s *Selector) AdoptedIds(ctx context.Context) []string {
	return s.state.ReadList(ctx, store.AdoptedCatIdsKey)
}

// Save puts id in the basket. Saving twice keeps a single entry.
func (s *Selector) Save(ctx context.Context, id string) error {
	return s.appendUnique(ctx, store.SavedCatIdsKey, id)
}

// Unselect drops every occurrence of id from the basket. Adoptions are untouched.
func (s *Selector) Unselect(ctx context.Context, id string) error {
	saved := s.SavedIds(ctx)
	kept := make([]string, 0, len(saved))
	for _, savedId := range saved {
		if savedId != id {
			kept = append(kept, savedId)
		}
	}
	return s.state.WriteList(ctx, store.SavedCatIdsKey, kept)
}

// Adopt marks id as adopted. Adopting twice keeps a single entry.
func (s *Selector) Adopt(ctx context.Context, id string) error {
	return s.appendUnique(ctx, store.AdoptedCatIdsKey, id)
}

func (s *Selector) appendUnique(ctx context.Context, key, id string) error {
	ids := s.state.ReadList(ctx, key)
	for _, existing := range ids {
		if existing == id {
			return nil
		}
	}
	return s.state.WriteList(ctx, key, append(ids, id))
}

// ListAvailable keeps the catalog entries that are neither saved nor adopted.
func (s *Selector) ListAvailable(ctx context.Context, catalog []entity.Cat) []entity.Cat {
	saved := newIdSet(s.SavedIds(ctx))
	adopted := newIdSet(s.AdoptedIds(ctx))
	return filter(catalog, func(c entity.Cat) bool {
		return !saved.has(c.Id) && !adopted.has(c.Id)
	})
}

// ListBasket keeps the catalog entries that are saved and not adopted.
func (s *Selector) ListBasket(ctx context.Context, catalog []entity.Cat) []entity.Cat {
	saved := newIdSet(s.SavedIds(ctx))
	adopted := newIdSet(s.AdoptedIds(ctx))
	return filter(catalog, func(c entity.Cat) bool {
		return saved.has(c.Id) && !adopted.has(c.Id)
	})
}

// ListAdopted keeps the catalog entries adopted in this session.
func (s *Selector) ListAdopted(ctx context.Context, catalog []entity.Cat) []entity.Cat {
	adopted := newIdSet(s.AdoptedIds(ctx))
	return filter(catalog, func(c entity.Cat) bool {
		return adopted.has(c.Id)
	})
}

// Classify reports the status of one id. Adopted wins over saved.
func (s *Selector) Classify(ctx context.Context, id string) Status {
	if newIdSet(s.AdoptedIds(ctx)).has(id) {
		return StatusAdopted
	}
	if newIdSet(s.SavedIds(ctx)).has(id) {
		return StatusSaved
	}
	return StatusAvailable
}

type idSet map[string]struct{}

func newIdSet(ids []string) idSet {
	set := make(idSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func (s idSet) has(id string) bool {
	_, ok := s[id]
	return ok
}

func filter(catalog []entity.Cat, keep func(entity.Cat) bool) []entity.Cat {
	result := make([]entity.Cat, 0, len(catalog))
	for _, c := range catalog {
		if keep(c) {
			result = append(result, c)
		}
	}
	return result
}
