package tape_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/tape"
)

func TestTape_ReadPastEndDoesNotGrow(t *testing.T) {
	tp := tape.FromString("ab")

	assert.Equal(t, 'a', tp.Read(0))
	assert.Equal(t, 'b', tp.Read(1))
	assert.Equal(t, domain.Blank, tp.Read(2))
	assert.Equal(t, domain.Blank, tp.Read(100))
	assert.Equal(t, 2, tp.Len(), "reading must not mutate the tape")
}

func TestTape_GrowthPolicy(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		pos     int
		wantLen int
	}{
		{"Inside", "abc", 1, 3},
		{"At End", "ab", 2, 6},
		{"Empty Tape", "", 0, 2},
		{"Far Beyond Needs More Than Len+2", "a", 10, 11},
		{"Just Beyond", "abcd", 5, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tp := tape.FromString(tt.input)
			tp.Write(tt.pos, 'x')
			assert.Equal(t, tt.wantLen, tp.Len())
			assert.Equal(t, 'x', tp.Read(tt.pos))
		})
	}
}

func TestTape_GrowthIsReadTransparent(t *testing.T) {
	tp := tape.FromString("ab")
	before := make([]domain.Symbol, 20)
	for i := range before {
		before[i] = tp.Read(i)
	}

	tp.Write(5, 'z')

	for i := range before {
		if i == 5 {
			continue
		}
		assert.Equal(t, before[i], tp.Read(i), "position %d changed after growth", i)
	}
}

func TestTape_StringShowsVisitedRegion(t *testing.T) {
	tp := tape.FromString("ab")
	assert.Equal(t, "ab", tp.String())

	tp.Write(2, domain.Blank)
	assert.Equal(t, "ab_", tp.String())
	assert.Greater(t, tp.Len(), 3, "physical buffer is padded beyond the visited region")

	tp.Write(0, 'b')
	assert.Equal(t, "bb_", tp.String())
}

func TestTape_Trimmed(t *testing.T) {
	assert.Equal(t, "_", tape.FromString("").Trimmed())
	assert.Equal(t, "_", tape.FromString("___").Trimmed())
	assert.Equal(t, "a_b", tape.FromString("a_b__").Trimmed())
}

func TestTape_CloneIsIndependent(t *testing.T) {
	orig := tape.FromString("ab")
	clone := orig.Clone()
	require.True(t, orig.Equal(clone))

	clone.Write(0, 'z')
	assert.Equal(t, 'a', orig.Read(0))
	assert.False(t, orig.Equal(clone))
}

func TestTape_EqualIgnoresPadding(t *testing.T) {
	a := tape.FromString("ab")
	b := tape.FromString("ab")
	b.Write(3, domain.Blank) // grows b without changing what it reads

	assert.NotEqual(t, a.Len(), b.Len())
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Key(), b.Key())
}

func TestMove(t *testing.T) {
	assert.Equal(t, 0, tape.Move(0, domain.Left), "left at 0 saturates")
	assert.Equal(t, 2, tape.Move(3, domain.Left))
	assert.Equal(t, 4, tape.Move(3, domain.Right))
	assert.Equal(t, 3, tape.Move(3, domain.Stay))
}
