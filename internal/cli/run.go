package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/aretw0/turing/internal/config"
	"github.com/aretw0/turing/internal/presentation/tui"
	"github.com/aretw0/turing/pkg/domain"
)

// RunOptions contains all the configuration for the Run command.
type RunOptions struct {
	Machine  string
	TapeFile string
	Tape     string
	HasTape  bool // Tape was given explicitly, even if empty
	Store    bool
}

// Run simulates the machine on the requested tape and prints the outcome.
// It returns ErrNotAccepted when the machine did not accept.
func (a *App) Run(ctx context.Context, opts RunOptions) (*domain.RunRecord, error) {
	input, err := readTape(opts)
	if err != nil {
		return nil, err
	}

	sim, err := a.load(opts.Machine)
	if err != nil {
		return nil, err
	}

	rec, err := sim.Run(ctx, input)
	if err != nil {
		if rec != nil && (errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)) {
			a.Logger.Warn("Run interrupted", "steps", rec.Steps)
			return rec, ioError(err)
		}
		return rec, err
	}

	if opts.Store {
		mgr, closer, err := a.OpenHistory(ctx)
		if err != nil {
			return rec, err
		}
		defer closer.Close()
		if err := mgr.Save(ctx, rec); err != nil {
			return rec, ioError(err)
		}
		a.Logger.Info("Run stored", "run_id", rec.ID)
	}

	if err := a.printRecord(rec); err != nil {
		return rec, ioError(err)
	}
	if !rec.Accepted {
		return rec, ErrNotAccepted
	}
	return rec, nil
}

// readTape resolves the initial tape from -T or TAPE_FILE; no source at all
// means an empty tape. Whitespace and non-ASCII characters in a tape file are
// dropped.
func readTape(opts RunOptions) (string, error) {
	if opts.HasTape && opts.TapeFile != "" {
		return "", errors.New("give the tape either inline or as a file, not both")
	}
	if opts.HasTape || opts.TapeFile == "" {
		return opts.Tape, nil
	}

	data, err := os.ReadFile(opts.TapeFile)
	if err != nil {
		return "", ioError(fmt.Errorf("failed to read tape file: %w", err))
	}
	return tapeSymbols(string(data)), nil
}

// tapeSymbols drops whitespace and non-ASCII characters from a tape file, so
// tapes may be wrapped or spaced for readability.
func tapeSymbols(s string) string {
	return strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// printRecord writes rec in the configured output format.
func (a *App) printRecord(rec *domain.RunRecord) error {
	switch a.Config.Output {
	case config.OutputJSON:
		enc := json.NewEncoder(a.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rec)
	case config.OutputMarkdown:
		report := tui.Report(rec)
		if a.isTerminal() {
			rendered, err := tui.NewRenderer()(report)
			if err == nil {
				report = rendered
			}
		}
		_, err := fmt.Fprint(a.Stdout, report)
		return err
	}

	if _, err := fmt.Fprintln(a.Stdout, tui.Outcome(rec)); err != nil {
		return err
	}
	fmt.Fprintf(a.Stdout, "steps: %d\n", rec.Steps)
	if rec.Mode == domain.ModeNonDeterministic {
		fmt.Fprintf(a.Stdout, "paths: %d\n", rec.Paths)
	}
	_, err := fmt.Fprintf(a.Stdout, "tape:  %s\n", rec.Tape)
	return err
}
