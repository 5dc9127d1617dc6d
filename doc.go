/*
Package turing simulates deterministic and non-deterministic Turing machines.

A machine is described either in Go, through the fluent builder in pkg/dsl, or in
one of two file formats read by Load: a line oriented text format (.tm) and a
YAML document (.yaml, .yml, .json).

# Concept

Construction validates the description once and freezes it into a
representation: every referenced state must be declared, every read or written
symbol must belong to the alphabet, and a deterministic machine may not have two
transitions for the same state and symbol. The representation is immutable and
shared by every run.

A deterministic run follows a single configuration. A non-deterministic run
explores every choice in lockstep, merging configurations that become
identical. It accepts as soon as one path accepts and rejects only when every
path has rejected.

# Usage

	sim, err := turing.Load("machines/even-a.tm", turing.WithLimit(10000))
	if err != nil {
		log.Fatal(err)
	}

	rec, err := sim.Run(context.Background(), "aab")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(rec.Outcome(), rec.Steps, rec.Tape)
*/
package turing
