package turing_test

import (
	"context"
	"fmt"
	"log"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/dsl"
)

// ExampleNew builds a machine in Go that accepts words over {a,b} ending in b.
func ExampleNew() {
	b := dsl.New[string]()
	b.Add("scan").Start().
		On('a', "sawA", 'a', domain.Right).
		On('b', "sawB", 'b', domain.Right)
	b.Add("sawA").
		On('a', "sawA", 'a', domain.Right).
		On('b', "sawB", 'b', domain.Right)
	b.Add("sawB").
		On('a', "sawA", 'a', domain.Right).
		On('b', "sawB", 'b', domain.Right).
		On(domain.Blank, "yes", domain.Blank, domain.Stay)
	b.Add("yes").Accept()
	b.Add("no").Reject()
	b.Symbols('a', 'b')

	sim, err := turing.New(b, turing.WithName("ends-in-b"))
	if err != nil {
		log.Fatal(err)
	}

	for _, input := range []string{"aab", "aba"} {
		rec, err := sim.Run(context.Background(), input)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%s: %s after %d steps\n", input, rec.Outcome(), rec.Steps)
	}

	// Output:
	// aab: accepted after 4 steps
	// aba: not accepted after 4 steps
}

// ExampleLoad runs a non-deterministic machine read from a YAML file.
func ExampleLoad() {
	sim, err := turing.Load("examples/machines/contains-aa.yaml",
		turing.WithMode(domain.ModeNonDeterministic),
		turing.WithLimit(1000),
	)
	if err != nil {
		log.Fatal(err)
	}

	rec, err := sim.Run(context.Background(), "baab")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(rec.Machine, rec.Outcome())

	// Output:
	// contains-aa accepted
}
