/*
Package domain contains the shared vocabulary of the Markov engine.

It defines the sentinel errors returned by the chain, the status machine of a
single walk, and the lifecycle events emitted while a chain is built and walked.
This package is kept pure and free of external dependencies so that the engine,
the client adapters and the observability layer can all import it.

# Key Entities

  - WalkStatus: NotStarted, Walking, Terminated.
  - StopReason: why a walk terminated (terminal state, length cap, dead end).
  - LifecycleHooks: callbacks for metrics and debug logging.
*/
package domain
