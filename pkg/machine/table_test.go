package machine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/machine"
)

func TestDeterministicTable_Lookup(t *testing.T) {
	table, err := machine.NewDeterministicTable[string](abMachine().Transitions())
	require.NoError(t, err)

	act, ok := table.Lookup("s1", domain.Blank)
	require.True(t, ok)
	assert.Equal(t, domain.NewAction("s2", domain.Blank, domain.Stay), act)

	_, ok = table.Lookup("s0", domain.Blank)
	assert.False(t, ok, "a missing key is a miss, not an error")

	assert.Equal(t, 5, table.Len())
}

func TestDeterministicTable_EntriesAreOrdered(t *testing.T) {
	table, err := machine.NewDeterministicTable[string](abMachine().Transitions())
	require.NoError(t, err)

	var got []string
	for _, e := range table.Entries() {
		got = append(got, e.State+string(e.Read))
	}
	assert.Equal(t, []string{"s0a", "s0b", "s1_", "s1a", "s1b"}, got)
}

func TestNonDeterministicTable_AccumulatesChoices(t *testing.T) {
	b := abMachine()
	b.Add("s0").
		On('a', "s0", 'b', domain.Left).
		On('a', "s1", 'a', domain.Right) // identical to the first choice

	table, err := machine.NewNonDeterministicTable[string](b.Transitions())
	require.NoError(t, err)

	got := table.Lookup("s0", 'a')
	assert.Equal(t, []domain.Action[string]{
		domain.NewAction("s1", 'a', domain.Right),
		domain.NewAction("s0", 'b', domain.Left),
	}, got, "declaration order kept and duplicates dropped")

	assert.Nil(t, table.Lookup("s2", 'a'))
	assert.Len(t, table.Entries(), 6)
}
