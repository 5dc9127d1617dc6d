/*
Package ports defines the interfaces that connect the turing core to its collaborators.

These interfaces decouple the representation constructor and the engines from the
readers that produce machine descriptions, and the CLI/HTTP adapters from the
storage backends that keep run results.

# Key Interfaces

  - RawBuilder / TransitionBuilder: unchecked machine descriptions produced by a parser or the DSL.
  - Machine: the step-wise execution surface shared by both engines and their decorators.
  - ResultStore: persists RunRecords (memory, file, redis).
  - DistributedLocker: cross-process locks for the history manager (redis).
*/
package ports
