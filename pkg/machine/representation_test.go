package machine_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/dsl"
	"github.com/aretw0/turing/pkg/machine"
)

// abMachine accepts words over {a,b} and halts on the first blank.
func abMachine() *dsl.Builder[string] {
	b := dsl.New[string]()
	b.Add("s0").Start().
		On('a', "s1", 'a', domain.Right).
		On('b', "s1", 'b', domain.Right)
	b.Add("s1").
		On('a', "s1", 'a', domain.Right).
		On('b', "s1", 'b', domain.Right).
		On(domain.Blank, "s2", domain.Blank, domain.Stay)
	b.Add("s2").Accept()
	b.Add("qr").Reject()
	b.Symbols('a', 'b')
	return b
}

func TestNew_MandatoryStates(t *testing.T) {
	tests := []struct {
		name  string
		setup func(b *dsl.Builder[string])
		want  error
	}{
		{
			name:  "Missing Start",
			setup: func(b *dsl.Builder[string]) { b.Add("a").Accept(); b.Add("r").Reject() },
			want:  machine.ErrStartingStateNotSpecified,
		},
		{
			name:  "Missing Accept",
			setup: func(b *dsl.Builder[string]) { b.Add("s").Start(); b.Add("r").Reject() },
			want:  machine.ErrAcceptStateNotSpecified,
		},
		{
			name:  "Missing Reject",
			setup: func(b *dsl.Builder[string]) { b.Add("s").Start(); b.Add("a").Accept() },
			want:  machine.ErrRejectStateNotSpecified,
		},
		{
			name:  "Start Checked First",
			setup: func(b *dsl.Builder[string]) {},
			want:  machine.ErrStartingStateNotSpecified,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := dsl.New[string]()
			tt.setup(b)

			_, err := machine.NewDeterministic[string](b)
			assert.ErrorIs(t, err, tt.want)

			_, err = machine.NewNonDeterministic[string](b)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNew_AcceptAndRejectMustDiffer(t *testing.T) {
	b := dsl.New[string]()
	b.Add("q").Start().Accept().Reject()
	b.Symbols('a')

	_, err := machine.NewDeterministic[string](b)
	assert.ErrorIs(t, err, machine.ErrAcceptRejectSameState)

	_, err = machine.NewNonDeterministic[string](b)
	assert.ErrorIs(t, err, machine.ErrAcceptRejectSameState)

	// Checked after the mandatory states.
	_, err = machine.NewDeterministic[string](dsl.New[string]())
	assert.ErrorIs(t, err, machine.ErrStartingStateNotSpecified)
}

func TestNew_OnlyDesignatedStatesHalt(t *testing.T) {
	raw := &extraMarkers{Builder: abMachine()}

	repr, err := machine.NewDeterministic[string](raw)
	require.NoError(t, err)

	states := repr.States()
	assert.Equal(t, domain.Neutral, states["s0"])
	assert.Equal(t, domain.Neutral, states["s1"])
	assert.Equal(t, domain.Accepting, states["s2"])
	assert.Equal(t, domain.Rejecting, states["qr"])
}

// extraMarkers reports classifications that disagree with the designated states.
type extraMarkers struct {
	*dsl.Builder[string]
}

func (e *extraMarkers) States() map[string]domain.Classification {
	states := e.Builder.States()
	states["s0"] = domain.Accepting
	states["s1"] = domain.Rejecting
	return states
}

func TestNew_StateMismatchReportsEveryOffender(t *testing.T) {
	b := abMachine()
	b.Add("s0").On(domain.Blank, "ghost", domain.Blank, domain.Stay)
	b.Add("s1").On('a', "phantom", 'a', domain.Left)

	_, err := machine.NewDeterministic[string](b)

	var mismatch *machine.StateMismatchError[string]
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, []string{"ghost", "phantom"}, mismatch.States)
}

func TestNew_StatesCheckedBeforeSymbols(t *testing.T) {
	b := abMachine()
	b.Add("s0").On('z', "ghost", 'z', domain.Stay)

	_, err := machine.NewDeterministic[string](b)

	var mismatch *machine.StateMismatchError[string]
	assert.ErrorAs(t, err, &mismatch)
}

func TestNew_AlphabetMismatchReportsEveryOffender(t *testing.T) {
	b := abMachine()
	b.Add("s0").On('x', "s1", 'y', domain.Right)
	b.Add("s1").On('c', "s2", 'c', domain.Stay)

	_, err := machine.NewNonDeterministic[string](b)

	var mismatch *machine.AlphabetMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, []domain.Symbol{'c', 'x', 'y'}, mismatch.Symbols)
}

func TestNew_DesignatedStateMustBeDeclared(t *testing.T) {
	b := dsl.New[string]()
	b.Add("s0").Start()
	b.Add("acc").Accept()
	b.Add("rej").Reject()

	// A raw builder naming a state it never declared.
	raw := &undeclaredStart{Builder: b}

	_, err := machine.NewDeterministic[string](raw)

	var mismatch *machine.StateMismatchError[string]
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, []string{"nowhere"}, mismatch.States)
}

type undeclaredStart struct {
	*dsl.Builder[string]
}

func (u *undeclaredStart) StartingState() (string, bool) { return "nowhere", true }

func TestNew_DuplicateTransitionFailsOnlyDeterministic(t *testing.T) {
	b := abMachine()
	b.Add("s0").On('a', "qr", 'a', domain.Stay)

	_, err := machine.NewDeterministic[string](b)

	var tableErr *machine.TableError
	require.ErrorAs(t, err, &tableErr)

	var dup *machine.DuplicateTransitionError[string]
	require.True(t, errors.As(err, &dup), "table error should unwrap to the duplicate")
	assert.Equal(t, "s0", dup.State)
	assert.Equal(t, 'a', dup.Symbol)

	repr, err := machine.NewNonDeterministic[string](b)
	require.NoError(t, err)
	assert.Len(t, repr.Table().Lookup("s0", 'a'), 2)
}

func TestRepresentation_Accessors(t *testing.T) {
	repr, err := abMachine().Deterministic()
	require.NoError(t, err)

	assert.Equal(t, "s0", repr.StartingState())
	assert.Equal(t, "s2", repr.AcceptingState())
	assert.Equal(t, "qr", repr.RejectingState())
	assert.Equal(t, []domain.Symbol{'_', 'a', 'b'}, repr.Alphabet())
	assert.True(t, repr.HasSymbol(domain.Blank))

	states := repr.States()
	assert.Equal(t, domain.Accepting, states["s2"])
	assert.Equal(t, domain.Rejecting, states["qr"])
	assert.Equal(t, domain.Neutral, states["s1"])

	t.Run("Returns Copies", func(t *testing.T) {
		states["s1"] = domain.Accepting
		delete(states, "s0")

		fresh := repr.States()
		assert.Equal(t, domain.Neutral, fresh["s1"])
		assert.Contains(t, fresh, "s0")
	})
}

func TestRepresentation_ValidateTape(t *testing.T) {
	repr, err := abMachine().Deterministic()
	require.NoError(t, err)

	assert.NoError(t, repr.ValidateTape([]domain.Symbol("abba_")))
	assert.NoError(t, repr.ValidateTape(nil))

	err = repr.ValidateTape([]domain.Symbol("axbyx"))
	var tapeErr *machine.TapeAlphabetError
	require.ErrorAs(t, err, &tapeErr)
	assert.Equal(t, []domain.Symbol{'x', 'y'}, tapeErr.Symbols)
}

func TestToNonDeterministic(t *testing.T) {
	det, err := abMachine().Deterministic()
	require.NoError(t, err)

	ndet := machine.ToNonDeterministic(det)

	assert.Equal(t, det.StartingState(), ndet.StartingState())
	assert.Equal(t, det.Alphabet(), ndet.Alphabet())
	assert.Equal(t, det.Table().Len(), ndet.Table().Len())

	for _, e := range det.Table().Entries() {
		assert.Equal(t, []domain.Action[string]{e.Action}, ndet.Table().Lookup(e.State, e.Read))
	}
}
