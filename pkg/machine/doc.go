/*
Package machine turns a raw, unchecked machine description into an immutable,
validated Representation.

The constructor is shared by both machine variants; only the transition table
plugged into it differs:

	det, err := machine.NewDeterministic[string](builder)      // (state, symbol) -> Action
	ndet, err := machine.NewNonDeterministic[string](builder)  // (state, symbol) -> []Action

Validation runs in a fixed order and stops at the first failing stage:

 1. starting, accepting and rejecting states are designated;
 2. every state referenced by a transition is declared (all offenders are reported);
 3. every symbol read or written by a transition is in the alphabet (all offenders are reported);
 4. the table constructor accepts the transitions (the deterministic one rejects duplicates).
*/
package machine
