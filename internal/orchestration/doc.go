// Package orchestration coordinates concurrent execution of the Fibonacci
// batch and aggregates per-element results in input order. It decouples
// business logic from presentation via the ProgressReporter and
// ResultPresenter interfaces, and from instrumentation via Recorder.
package orchestration
