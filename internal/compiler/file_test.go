package compiler_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/turing/internal/compiler"
)

func TestParseFile_FormatsAgree(t *testing.T) {
	text, err := compiler.ParseFile(filepath.Join("testdata", "ab.tm"))
	require.NoError(t, err)
	yml, err := compiler.ParseFile(filepath.Join("testdata", "ab.yaml"))
	require.NoError(t, err)

	textRepr, err := text.Deterministic()
	require.NoError(t, err)
	yamlRepr, err := yml.Deterministic()
	require.NoError(t, err)

	assert.Equal(t, textRepr.States(), yamlRepr.States())
	assert.Equal(t, textRepr.Alphabet(), yamlRepr.Alphabet())
	assert.Equal(t, textRepr.Table().Entries(), yamlRepr.Table().Entries())
}

func TestParseFile_Missing(t *testing.T) {
	_, err := compiler.ParseFile(filepath.Join(t.TempDir(), "nope.tm"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	var perr *compiler.ParseError
	assert.NotErrorAs(t, err, &perr)
}

func TestFormatFor(t *testing.T) {
	assert.Equal(t, compiler.FormatYAML, compiler.FormatFor("m.YAML"))
	assert.Equal(t, compiler.FormatYAML, compiler.FormatFor("m.yml"))
	assert.Equal(t, compiler.FormatYAML, compiler.FormatFor("m.json"))
	assert.Equal(t, compiler.FormatText, compiler.FormatFor("m.tm"))
	assert.Equal(t, compiler.FormatText, compiler.FormatFor("machine"))
}

func TestParseFormat(t *testing.T) {
	f, err := compiler.ParseFormat("YAML")
	require.NoError(t, err)
	assert.Equal(t, compiler.FormatYAML, f)

	f, err = compiler.ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, compiler.FormatText, f)

	_, err = compiler.ParseFormat("xml")
	assert.Error(t, err)
}
