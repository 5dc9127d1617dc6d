package turing_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/dsl"
	"github.com/aretw0/turing/pkg/machine"
)

func TestLoad_Deterministic(t *testing.T) {
	sim, err := turing.Load("examples/machines/binary-increment.tm")
	require.NoError(t, err)
	assert.Equal(t, "binary-increment", sim.Name)
	assert.Equal(t, domain.ModeDeterministic, sim.Mode())

	rec, err := sim.Run(context.Background(), "1011")
	require.NoError(t, err)

	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, "binary-increment", rec.Machine)
	assert.Equal(t, "1011", rec.Input)
	assert.True(t, rec.Accepted)
	assert.False(t, rec.Limited)
	assert.Equal(t, 8, rec.Steps)
	assert.Equal(t, 1, rec.Paths)
	assert.Equal(t, "1100_", rec.Tape)
	assert.False(t, rec.CreatedAt.IsZero())
}

func TestLoad_NonDeterministic(t *testing.T) {
	sim, err := turing.Load("examples/machines/contains-aa.yaml", turing.WithMode(domain.ModeNonDeterministic))
	require.NoError(t, err)

	tests := []struct {
		input    string
		accepted bool
	}{
		{"baab", true},
		{"aa", true},
		{"abab", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			rec, err := sim.Run(context.Background(), tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.accepted, rec.Accepted)
			assert.False(t, rec.Limited)
			assert.Equal(t, domain.ModeNonDeterministic, rec.Mode)
		})
	}
}

func TestLoad_DeterministicRejectsChoices(t *testing.T) {
	_, err := turing.Load("examples/machines/contains-aa.yaml")

	var dup *machine.DuplicateTransitionError[string]
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "scan", dup.State)
	assert.Equal(t, 'a', dup.Symbol)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := turing.Load("examples/machines/nope.tm")
	assert.Error(t, err)
}

func TestSimulator_Limit(t *testing.T) {
	sim, err := turing.Load("examples/machines/even-a.tm", turing.WithLimit(2))
	require.NoError(t, err)

	rec, err := sim.Run(context.Background(), "aaaa")
	require.NoError(t, err)
	assert.False(t, rec.Accepted)
	assert.True(t, rec.Limited)
	assert.Equal(t, 3, rec.Steps)
}

func TestSimulator_TapeOutsideAlphabet(t *testing.T) {
	sim, err := turing.Load("examples/machines/even-a.tm")
	require.NoError(t, err)

	_, err = sim.Run(context.Background(), "abc")
	var tapeErr *machine.TapeAlphabetError
	require.ErrorAs(t, err, &tapeErr)
	assert.Equal(t, []domain.Symbol{'c'}, tapeErr.Symbols)
}

func TestSimulator_Cancelled(t *testing.T) {
	b := dsl.New[string]()
	b.Add("loop").Start().On(domain.Blank, "loop", domain.Blank, domain.Right)
	b.Add("yes").Accept()
	b.Add("no").Reject()

	sim, err := turing.New(b)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rec, err := sim.Run(ctx, "")
	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, rec)
	assert.False(t, rec.Accepted)
	assert.Equal(t, 0, rec.Steps)
}

func TestSimulator_Hooks(t *testing.T) {
	var steps, halts int
	hooks := domain.LifecycleHooks{
		OnStep: func(*domain.StepEvent) { steps++ },
		OnHalt: func(*domain.HaltEvent) { halts++ },
	}

	sim, err := turing.Load("examples/machines/even-a.tm", turing.WithLifecycleHooks(hooks))
	require.NoError(t, err)

	rec, err := sim.Run(context.Background(), "ab")
	require.NoError(t, err)
	assert.False(t, rec.Accepted)
	assert.Equal(t, rec.Steps, steps)
	assert.Equal(t, 1, halts)
}

func TestNew_InvalidMode(t *testing.T) {
	_, err := turing.New(dsl.New[string](), turing.WithMode("quantum"))
	assert.True(t, errors.Is(err, domain.ErrInvalidMode))
}

func TestParse_Text(t *testing.T) {
	src := strings.NewReader("states 3\nq0\nyes +\nno -\nalphabet 1 a\nq0 a yes a S\n")
	sim, err := turing.Parse(src, turing.FormatText, turing.WithName("inline"))
	require.NoError(t, err)

	rec, err := sim.Run(context.Background(), "a")
	require.NoError(t, err)
	assert.True(t, rec.Accepted)
	assert.Equal(t, "inline", rec.Machine)
	assert.Equal(t, 1, rec.Steps)
}

func TestSimulator_Representation(t *testing.T) {
	sim, err := turing.Load("examples/machines/even-a.tm")
	require.NoError(t, err)

	repr := sim.Representation()
	assert.Equal(t, "even", repr.StartingState())
	assert.Equal(t, 5, repr.Table().Len())
}

func TestVersion(t *testing.T) {
	assert.NotEmpty(t, strings.TrimSpace(turing.Version))
}
