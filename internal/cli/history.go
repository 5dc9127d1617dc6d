package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/aretw0/turing/internal/config"
	"github.com/aretw0/turing/internal/presentation/tui"
	"github.com/aretw0/turing/pkg/adapters/file"
	"github.com/aretw0/turing/pkg/adapters/redis"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/history"
	"github.com/aretw0/turing/pkg/persistence/middleware"
	"github.com/aretw0/turing/pkg/ports"
)

// OpenHistory opens the configured run store: a directory of JSON files when
// history_dir is set, Redis otherwise. Records are sealed when an encryption
// key is configured. The returned closer releases the connection.
func (a *App) OpenHistory(ctx context.Context) (*history.Manager, io.Closer, error) {
	rc := a.Config.Redis
	active, fallback, err := rc.Keys()
	if err != nil {
		return nil, nil, &ExitError{Code: ExitInput, Err: err}
	}

	var results ports.ResultStore
	var closer io.Closer = io.NopCloser(nil)
	opts := []history.Option{history.WithLogger(a.Logger)}
	if a.Config.HistoryDir != "" {
		results = file.New(a.Config.HistoryDir)
	} else {
		store := redis.New(rc.Addr, rc.Password, rc.DB, redis.WithTTL(rc.TTL), redis.WithPrefix(rc.Prefix))
		if err := store.Ping(ctx); err != nil {
			store.Close()
			return nil, nil, ioError(fmt.Errorf("history store unavailable at %s: %w", rc.Addr, err))
		}
		results, closer = store, store
		opts = append(opts, history.WithLocker(store.Locker()))
	}

	if active != nil {
		results = middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{
			ActiveKey:    active,
			FallbackKeys: fallback,
		})(results)
		a.Logger.Debug("History encryption enabled", "fallback_keys", len(fallback))
	}
	return history.NewManager(results, opts...), closer, nil
}

// History lists the most recent runs, or prints the run with the given id.
func (a *App) History(ctx context.Context, id string, limit int) error {
	mgr, closer, err := a.OpenHistory(ctx)
	if err != nil {
		return err
	}
	defer closer.Close()

	if id != "" {
		rec, err := mgr.Load(ctx, id)
		if errors.Is(err, domain.ErrRunNotFound) {
			return &ExitError{Code: ExitInput, Err: err}
		}
		if err != nil {
			return ioError(err)
		}
		return ioError(a.printRecord(rec))
	}

	records, err := mgr.Recent(ctx, limit)
	if err != nil {
		return ioError(err)
	}
	if a.Config.Output == config.OutputJSON {
		enc := json.NewEncoder(a.Stdout)
		enc.SetIndent("", "  ")
		return ioError(enc.Encode(records))
	}
	tui.RenderRuns(a.Stdout, records, a.Config.Output == config.OutputMarkdown)
	return nil
}
