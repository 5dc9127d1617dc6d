/*
Package dsl provides a fluent Go API for declaring Turing machines without a
machine file.

The Builder satisfies ports.RawBuilder, so it can be handed to the
representation constructor directly or through the Deterministic and
NonDeterministic shortcuts:

	b := dsl.New[string]()

	b.Add("s0").Start().
		On('a', "s0", 'a', domain.Right).
		On('_', "acc", '_', domain.Stay)

	b.Add("acc").Accept()
	b.Add("rej").Reject()

	b.Symbols('a')

	repr, err := b.Deterministic()

Nothing is checked while building; all validation happens in pkg/machine.
*/
package dsl
