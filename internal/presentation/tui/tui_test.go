package tui_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/turing/internal/presentation/tui"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/dsl"
	"github.com/aretw0/turing/pkg/machine"
)

func flip(t *testing.T) *machine.NonDeterministicRepresentation[string] {
	t.Helper()
	b := dsl.New[string]()
	b.Add("q0").Start().
		On('0', "q0", '1', domain.Right).
		On('1', "q0", '0', domain.Right).
		On(domain.Blank, "done", domain.Blank, domain.Stay)
	b.Add("done").Accept()
	b.Add("fail").Reject()
	b.Symbols('0', '1')

	repr, err := b.NonDeterministic()
	require.NoError(t, err)
	return repr
}

func TestRenderTransitions(t *testing.T) {
	var buf bytes.Buffer
	tui.RenderTransitions(&buf, flip(t), false)

	out := buf.String()
	assert.Contains(t, strings.ToLower(out), "state")
	assert.Contains(t, out, "→ q0")
	assert.Contains(t, out, "done")
}

func TestRenderTransitions_Markdown(t *testing.T) {
	var buf bytes.Buffer
	tui.RenderTransitions(&buf, flip(t), true)

	out := buf.String()
	assert.Contains(t, strings.ToLower(out), "| state | read | next | write | move |")
	assert.Contains(t, out, "| → q0 | 0 | → q0 | 1 | R |")
}

func TestRenderStates(t *testing.T) {
	var buf bytes.Buffer
	tui.RenderStates(&buf, flip(t))

	out := buf.String()
	assert.Contains(t, out, "accept")
	assert.Contains(t, out, "reject")
	assert.Contains(t, out, "neutral")
}

func TestRenderRuns(t *testing.T) {
	var buf bytes.Buffer
	tui.RenderRuns(&buf, nil, false)
	assert.Equal(t, "(0 runs)\n", buf.String())

	buf.Reset()
	tui.RenderRuns(&buf, []*domain.RunRecord{
		{ID: "r1", Machine: "flip", Mode: domain.ModeDeterministic, Input: "01", Accepted: true, Steps: 3, CreatedAt: time.Now()},
		{ID: "r2", Machine: "flip", Mode: domain.ModeDeterministic, Input: "2", Steps: 1, CreatedAt: time.Now()},
	}, false)

	out := buf.String()
	assert.Contains(t, out, "r1")
	assert.Contains(t, out, "not accepted")
	assert.Contains(t, out, "(2 runs)")
}

func TestReport(t *testing.T) {
	rec := &domain.RunRecord{
		Machine: "contains-aa",
		Mode:    domain.ModeNonDeterministic,
		Input:   "baab",
		Paths:   2,
		Steps:   3,
		Limited: true,
		States:  []string{"one", "scan"},
		Tape:    "baab",
	}

	out := tui.Report(rec)
	assert.True(t, strings.HasPrefix(out, "# contains-aa: not accepted"))
	assert.Contains(t, out, "| Paths | 2 |")
	assert.Contains(t, out, "| Final states | one, scan |")
	assert.Contains(t, out, "step limit")
	assert.Contains(t, out, "```\nbaab\n```")
}

func TestOutcome(t *testing.T) {
	assert.Contains(t, tui.Outcome(&domain.RunRecord{Accepted: true}), "accepted")
	assert.Contains(t, tui.Outcome(&domain.RunRecord{Limited: true}), "step limit")
	assert.Contains(t, tui.Outcome(&domain.RunRecord{}), "not accepted")
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	tui.PrintBanner(&buf, "1.2.3")
	assert.Contains(t, buf.String(), "version 1.2.3")
}
