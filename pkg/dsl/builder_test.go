package dsl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/turing/pkg/domain"
)

func TestBuilder_RawDescription(t *testing.T) {
	b := New[string]()

	b.Add("s0").Start().
		On('a', "s0", 'a', domain.Right).
		On('a', "acc", 'a', domain.Stay).
		Add("acc").Accept().
		Add("rej").Reject()
	b.Symbols('a')

	start, ok := b.StartingState()
	require.True(t, ok)
	assert.Equal(t, "s0", start)

	accept, _ := b.AcceptingState()
	reject, _ := b.RejectingState()
	assert.Equal(t, "acc", accept)
	assert.Equal(t, "rej", reject)

	assert.Equal(t, map[string]domain.Classification{
		"s0":  domain.Neutral,
		"acc": domain.Accepting,
		"rej": domain.Rejecting,
	}, b.States())
	assert.Equal(t, []domain.Symbol{'a'}, b.Alphabet())

	tr := b.Transitions()
	assert.Equal(t, []string{"s0"}, tr.States(), "only states with transitions are listed")
	assert.Len(t, tr.StateTransitions("s0"), 2)
	assert.Empty(t, tr.StateTransitions("unknown"))
}

func TestBuilder_UnsetStates(t *testing.T) {
	b := New[int]()
	b.Add(1)

	_, ok := b.StartingState()
	assert.False(t, ok)
	_, ok = b.AcceptingState()
	assert.False(t, ok)
	_, ok = b.RejectingState()
	assert.False(t, ok)
}

func TestBuilder_RedesignationDemotesPrevious(t *testing.T) {
	b := New[string]()
	b.Add("first").Accept()
	b.Add("second").Accept()

	accept, _ := b.AcceptingState()
	assert.Equal(t, "second", accept)
	assert.Equal(t, domain.Neutral, b.States()["first"])
}

func TestBuilder_AddIsIdempotent(t *testing.T) {
	b := New[string]()
	first := b.Add("s0")
	assert.Same(t, first, b.Add("s0"))
}

func TestBuilder_Build(t *testing.T) {
	b := New[string]()
	b.Add("s0").Start().On(domain.Blank, "acc", domain.Blank, domain.Stay)
	b.Add("acc").Accept()
	b.Add("rej").Reject()

	det, err := b.Deterministic()
	require.NoError(t, err)
	assert.Equal(t, 1, det.Table().Len())

	ndet, err := b.NonDeterministic()
	require.NoError(t, err)
	assert.Equal(t, 1, ndet.Table().Len())
}

func TestBuilder_TransitionDoesNotDeclareSource(t *testing.T) {
	b := New[string]()
	b.Add("s0").Start()
	b.Add("acc").Accept()
	b.Add("rej").Reject()
	b.Transition("ghost", domain.NewTransition(domain.Blank, "acc", domain.Blank, domain.Stay))

	assert.NotContains(t, b.States(), "ghost")
	assert.Equal(t, []string{"ghost"}, b.Transitions().States())

	_, err := b.Deterministic()
	assert.Error(t, err)
}

func TestBuilder_StartAtDoesNotDeclare(t *testing.T) {
	b := New[string]()
	b.StartAt("s0")

	start, ok := b.StartingState()
	assert.True(t, ok)
	assert.Equal(t, "s0", start)
	assert.Empty(t, b.States())
}
