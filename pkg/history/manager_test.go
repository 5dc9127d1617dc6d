package history_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/turing/pkg/adapters/memory"
	"github.com/aretw0/turing/pkg/adapters/redis"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/history"
	"github.com/aretw0/turing/pkg/ports"
)

func TestManager_LoadOrRunComputesOnce(t *testing.T) {
	mgr := history.NewManager(memory.NewStore())
	ctx := context.Background()

	var calls atomic.Int32
	run := func(context.Context) (*domain.RunRecord, error) {
		calls.Add(1)
		time.Sleep(10 * time.Millisecond) // widen the race window
		return &domain.RunRecord{Accepted: true, Steps: 3}, nil
	}

	var wg sync.WaitGroup
	var ranCount atomic.Int32
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec, ran, err := mgr.LoadOrRun(ctx, "same-id", run)
			assert.NoError(t, err)
			assert.Equal(t, "same-id", rec.ID)
			assert.Equal(t, 3, rec.Steps)
			if ran {
				ranCount.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, int32(1), ranCount.Load())
}

func TestManager_LoadOrRunPropagatesFailure(t *testing.T) {
	mgr := history.NewManager(memory.NewStore())
	ctx := context.Background()
	boom := errors.New("boom")

	_, ran, err := mgr.LoadOrRun(ctx, "x", func(context.Context) (*domain.RunRecord, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)
	assert.False(t, ran)

	_, err = mgr.Load(ctx, "x")
	assert.ErrorIs(t, err, domain.ErrRunNotFound, "failed runs are not stored")
}

func TestManager_Recent(t *testing.T) {
	mgr := history.NewManager(memory.NewStore())
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for i, id := range []string{"old", "mid", "new"} {
		require.NoError(t, mgr.Save(ctx, &domain.RunRecord{ID: id, CreatedAt: base.Add(time.Duration(i) * time.Minute)}))
	}

	all, err := mgr.Recent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "new", all[0].ID)
	assert.Equal(t, "old", all[2].ID)

	two, err := mgr.Recent(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, two, 2)

	require.NoError(t, mgr.Delete(ctx, "new"))
	ids, err := mgr.List(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"old", "mid"}, ids)
}

func TestManager_WithRedisLocker(t *testing.T) {
	mr := miniredis.RunT(t)
	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	defer client.Close()

	store := redis.NewFromClient(client)
	mgr := history.NewManager(store, history.WithLocker(redis.NewLocker(client, "test:")), history.WithLockTTL(time.Second))
	ctx := context.Background()

	rec, ran, err := mgr.LoadOrRun(ctx, "r1", func(context.Context) (*domain.RunRecord, error) {
		assert.True(t, mr.Exists("test:lock:r1"), "run happens under the distributed lock")
		return &domain.RunRecord{Tape: "ab_"}, nil
	})
	require.NoError(t, err)
	assert.True(t, ran)
	assert.Equal(t, "ab_", rec.Tape)
	assert.False(t, mr.Exists("test:lock:r1"))

	again, ran, err := mgr.LoadOrRun(ctx, "r1", func(context.Context) (*domain.RunRecord, error) {
		t.Fatal("run must not be called for a stored record")
		return nil, nil
	})
	require.NoError(t, err)
	assert.False(t, ran)
	assert.Equal(t, "ab_", again.Tape)
}

type failingLocker struct{}

func (failingLocker) Lock(context.Context, string, time.Duration) (ports.UnlockFunc, error) {
	return nil, errors.New("unavailable")
}

func TestManager_LockFailure(t *testing.T) {
	mgr := history.NewManager(memory.NewStore(), history.WithLocker(failingLocker{}))

	err := mgr.Save(context.Background(), &domain.RunRecord{ID: "x"})
	assert.ErrorContains(t, err, "failed to acquire distributed lock")
}
