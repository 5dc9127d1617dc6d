/*
Package domain contains the core domain models of the turing simulator.

It defines the vocabulary shared by every other package: tape symbols, head
motions, state classifications, transition actions and the events emitted by
the execution engines. This package is kept pure and free of I/O.

# Key Entities

  - Symbol: a single tape character. Blank ('_') fills every unwritten cell.
  - Classification: whether a state is neutral, accepting or rejecting.
  - Action: what a transition does (next state, symbol to write, head motion).
  - Transition: an Action keyed by the symbol that triggers it.
  - RunRecord: the persisted outcome of a simulation.
*/
package domain
