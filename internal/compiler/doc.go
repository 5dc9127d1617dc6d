// Package compiler reads machine files into a raw dsl.Builder.
//
// Two formats are understood. The line-oriented text format:
//
//	states 4
//	s0
//	s1
//	s2 +
//	qr -
//	alphabet 2 a b
//	s0 a s1 a R
//	s1 _ s2 _ S
//
// and a YAML document (see dto.MachineMetadata). Readers only check syntax;
// cross references are left to pkg/machine.
package compiler
