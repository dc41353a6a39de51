package adoption

import (
	"context"
	"testing"
	"time"

	"badger-buds-be/internal/entity"
	"badger-buds-be/internal/pkg/logger"
	"badger-buds-be/internal/repository/memory"
	"badger-buds-be/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSelector(t *testing.T) (*Selector, *store.SessionState) {
	t.Helper()
	backend := memory.NewSessionRepository(time.Hour)
	state := store.NewSessionState(backend, "session-1", logger.NewNopLogger())
	return NewSelector(state), state
}

func catalogOf(ids ...string) []entity.Cat {
	cats := make([]entity.Cat, 0, len(ids))
	for _, id := range ids {
		cats = append(cats, entity.Cat{Id: id, Name: "Cat " + id})
	}
	return cats
}

func idsOf(cats []entity.Cat) []string {
	ids := make([]string, 0, len(cats))
	for _, c := range cats {
		ids = append(ids, c.Id)
	}
	return ids
}

func TestEmptySessionHasNoSelections(t *testing.T) {
	sel, _ := newTestSelector(t)
	ctx := context.Background()

	assert.Empty(t, sel.SavedIds(ctx))
	assert.Empty(t, sel.AdoptedIds(ctx))
}

func TestSaveAddsMembership(t *testing.T) {
	sel, _ := newTestSelector(t)
	ctx := context.Background()

	require.NoError(t, sel.Save(ctx, "7"))
	assert.Contains(t, sel.SavedIds(ctx), "7")
}

func TestSaveDeduplicates(t *testing.T) {
	sel, _ := newTestSelector(t)
	ctx := context.Background()

	require.NoError(t, sel.Save(ctx, "7"))
	require.NoError(t, sel.Save(ctx, "7"))
	assert.Equal(t, []string{"7"}, sel.SavedIds(ctx))

	require.NoError(t, sel.Adopt(ctx, "7"))
	require.NoError(t, sel.Adopt(ctx, "7"))
	assert.Equal(t, []string{"7"}, sel.AdoptedIds(ctx))
}

func TestUnselectRemovesAllOccurrences(t *testing.T) {
	sel, _ := newTestSelector(t)
	ctx := context.Background()

	require.NoError(t, sel.Save(ctx, "7"))
	require.NoError(t, sel.Save(ctx, "7"))
	require.NoError(t, sel.Unselect(ctx, "7"))

	assert.NotContains(t, sel.SavedIds(ctx), "7")
}

func TestUnselectClearsStoredDuplicates(t *testing.T) {
	sel, state := newTestSelector(t)
	ctx := context.Background()
	require.NoError(t, state.WriteList(ctx, store.SavedCatIdsKey, []string{"7", "8", "7"}))

	require.NoError(t, sel.Unselect(ctx, "7"))
	assert.Equal(t, []string{"8"}, sel.SavedIds(ctx))
}

func TestUnselectAbsentIdIsNoop(t *testing.T) {
	sel, _ := newTestSelector(t)
	ctx := context.Background()
	require.NoError(t, sel.Save(ctx, "1"))

	assert.NoError(t, sel.Unselect(ctx, "99"))
	assert.Equal(t, []string{"1"}, sel.SavedIds(ctx))
}

func TestUnselectLeavesAdoptions(t *testing.T) {
	sel, _ := newTestSelector(t)
	ctx := context.Background()
	require.NoError(t, sel.Save(ctx, "3"))
	require.NoError(t, sel.Adopt(ctx, "3"))

	require.NoError(t, sel.Unselect(ctx, "3"))
	assert.Contains(t, sel.AdoptedIds(ctx), "3")
}

func TestAdoptKeepsSavedEntry(t *testing.T) {
	sel, _ := newTestSelector(t)
	ctx := context.Background()

	require.NoError(t, sel.Save(ctx, "3"))
	require.NoError(t, sel.Adopt(ctx, "3"))

	assert.Contains(t, sel.SavedIds(ctx), "3")
	assert.Contains(t, sel.AdoptedIds(ctx), "3")
}

func TestBasketExcludesAdopted(t *testing.T) {
	sel, _ := newTestSelector(t)
	ctx := context.Background()
	catalog := catalogOf("1", "2")

	require.NoError(t, sel.Save(ctx, "1"))
	require.NoError(t, sel.Save(ctx, "2"))
	require.NoError(t, sel.Adopt(ctx, "2"))

	assert.Equal(t, []string{"1"}, idsOf(sel.ListBasket(ctx, catalog)))
}

func TestAvailableExcludesSavedAndAdopted(t *testing.T) {
	sel, _ := newTestSelector(t)
	ctx := context.Background()
	catalog := catalogOf("1", "2", "3")

	require.NoError(t, sel.Save(ctx, "1"))
	require.NoError(t, sel.Adopt(ctx, "2"))

	assert.Equal(t, []string{"3"}, idsOf(sel.ListAvailable(ctx, catalog)))
	assert.Equal(t, []string{"2"}, idsOf(sel.ListAdopted(ctx, catalog)))
}

func TestListsIgnoreIdsOutsideCatalog(t *testing.T) {
	sel, _ := newTestSelector(t)
	ctx := context.Background()
	require.NoError(t, sel.Save(ctx, "gone"))

	assert.Empty(t, sel.ListBasket(ctx, catalogOf("1")))
	assert.Equal(t, []string{"1"}, idsOf(sel.ListAvailable(ctx, catalogOf("1"))))
}

func TestClassify(t *testing.T) {
	sel, _ := newTestSelector(t)
	ctx := context.Background()
	require.NoError(t, sel.Save(ctx, "1"))
	require.NoError(t, sel.Save(ctx, "2"))
	require.NoError(t, sel.Adopt(ctx, "2"))

	assert.Equal(t, StatusSaved, sel.Classify(ctx, "1"))
	assert.Equal(t, StatusAdopted, sel.Classify(ctx, "2"))
	assert.Equal(t, StatusAvailable, sel.Classify(ctx, "3"))
}

func TestSelectionScenario(t *testing.T) {
	sel, _ := newTestSelector(t)
	ctx := context.Background()
	catalog := catalogOf("10", "20", "30")

	steps := []struct {
		name          string
		action        func() error
		wantAvailable []string
		wantBasket    []string
	}{
		{"initial", func() error { return nil }, []string{"10", "20", "30"}, []string{}},
		{"save 10", func() error { return sel.Save(ctx, "10") }, []string{"20", "30"}, []string{"10"}},
		{"adopt 10", func() error { return sel.Adopt(ctx, "10") }, []string{"20", "30"}, []string{}},
		{"save then unselect 20", func() error {
			if err := sel.Save(ctx, "20"); err != nil {
				return err
			}
			return sel.Unselect(ctx, "20")
		}, []string{"20", "30"}, []string{}},
	}

	for _, step := range steps {
		require.NoError(t, step.action(), step.name)
		assert.Equal(t, step.wantAvailable, idsOf(sel.ListAvailable(ctx, catalog)), step.name)
		assert.Equal(t, step.wantBasket, idsOf(sel.ListBasket(ctx, catalog)), step.name)
	}
}
