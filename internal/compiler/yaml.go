package compiler

import (
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/turing/internal/dto"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/dsl"
)

// ParseYAML reads a machine document. JSON documents are accepted as well.
func ParseYAML(src io.Reader) (*dsl.Builder[string], error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read machine: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &ParseError{Section: SectionDocument, Reason: err.Error(), Err: ErrInvalidDocument}
	}

	meta, err := decodeMetadata(raw)
	if err != nil {
		return nil, &ParseError{Section: SectionDocument, Reason: err.Error(), Err: ErrInvalidDocument}
	}

	return FromMetadata(meta)
}

func decodeMetadata(raw map[string]any) (dto.MachineMetadata, error) {
	var meta dto.MachineMetadata
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &meta,
		WeaklyTypedInput: true, // "alphabet: [0, 1]" decodes as strings
		ErrorUnused:      true,
	})
	if err != nil {
		return meta, err
	}
	if err := decoder.Decode(raw); err != nil {
		return meta, err
	}
	return meta, nil
}

// FromMetadata converts a decoded machine document into a raw builder.
func FromMetadata(meta dto.MachineMetadata) (*dsl.Builder[string], error) {
	b := dsl.New[string]()

	var accept, reject []string
	for _, name := range slices.Sorted(maps.Keys(meta.States)) {
		class, err := domain.ParseClassification(meta.States[name])
		if err != nil {
			return nil, &ParseError{Section: SectionStates, Reason: fmt.Sprintf("%s: %q", name, meta.States[name]), Err: ErrInvalidStateMarker}
		}
		sb := b.Add(name)
		switch class {
		case domain.Accepting:
			sb.Accept()
			accept = append(accept, name)
		case domain.Rejecting:
			sb.Reject()
			reject = append(reject, name)
		}
	}
	if len(accept) > 1 || len(reject) > 1 {
		return nil, &ParseError{Section: SectionStates, Reason: fmt.Sprintf("accept %v, reject %v", accept, reject), Err: ErrAmbiguousStates}
	}
	if meta.Start != "" {
		b.StartAt(meta.Start)
	}

	for _, tok := range meta.Alphabet {
		sym, ok := symbol(tok)
		if !ok {
			return nil, &ParseError{Section: SectionAlphabet, Reason: tok, Err: ErrNotASymbol}
		}
		if sym == domain.Blank {
			return nil, &ParseError{Section: SectionAlphabet, Err: ErrBlankInAlphabet}
		}
		b.Symbols(sym)
	}

	for i, tm := range meta.Transitions {
		where := fmt.Sprintf("transition %d", i+1)
		read, ok := symbol(tm.Read)
		if !ok {
			return nil, &ParseError{Section: SectionTransitions, Reason: fmt.Sprintf("%s: read %q", where, tm.Read), Err: ErrNotASymbol}
		}
		write, ok := symbol(tm.Write)
		if !ok {
			return nil, &ParseError{Section: SectionTransitions, Reason: fmt.Sprintf("%s: write %q", where, tm.Write), Err: ErrNotASymbol}
		}
		move, err := domain.ParseMotion(tm.Move)
		if err != nil {
			return nil, &ParseError{Section: SectionTransitions, Reason: fmt.Sprintf("%s: move %q", where, tm.Move), Err: ErrInvalidMotion}
		}
		b.Transition(tm.From, domain.NewTransition(read, tm.To, write, move))
	}

	return b, nil
}
