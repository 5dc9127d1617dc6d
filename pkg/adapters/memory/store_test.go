package memory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/turing/pkg/adapters/memory"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/ports"
)

func TestMemoryStore_Contract(t *testing.T) {
	store := memory.NewStore()
	ports.RunResultStoreContract(t, store)
}

func TestMemoryStore_ListOrder(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, store.Save(ctx, &domain.RunRecord{ID: "late", CreatedAt: base.Add(time.Hour)}))
	require.NoError(t, store.Save(ctx, &domain.RunRecord{ID: "b", CreatedAt: base}))
	require.NoError(t, store.Save(ctx, &domain.RunRecord{ID: "a", CreatedAt: base}))

	ids, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "late"}, ids)
}

func TestMemoryStore_Concurrent(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := string(rune('a' + i%26))
			_ = store.Save(ctx, &domain.RunRecord{ID: id})
			_, _ = store.Load(ctx, id)
			_, _ = store.List(ctx)
		}()
	}
	wg.Wait()

	ids, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, ids, 26)
}
