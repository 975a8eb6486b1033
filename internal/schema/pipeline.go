package schema

// Processor is a predicate run on a single [T] as part of a [Pipeline].
//
// It returns whether the item is accepted. Any output the user needs to be
// aware of should be made with slog calls, as no error type can be returned
// through the processor itself. During execution the pipeline stops at the
// first processor rejecting an item, so processors must not rely on being
// called for items an earlier processor has already rejected.
type Processor[T any] func(item T) bool

// BatchProcessor is a function that processes a slice of [T] as part of a
// [Pipeline]. During execution, only copies of the original slice are given to
// the BatchProcessor, so it is free to reorder or shrink the slice it is given.
//
// It returns a success boolean and the slice holding the manipulations after
// processing. A "false" aborts the remaining batch processors.
type BatchProcessor[T any] func(items []T) ([]T, bool)

// Pipeline describes a structure that holds and executes [Processor]
// predicates and [BatchProcessor] post-processor functions.
//
// The pipeline itself is not context-aware; the passed in functions can
// capture a context and return "false" where early exit is wanted.
type Pipeline[T any] interface {
	// Add adds a [Processor] to the pipeline.
	Add(processor Processor[T]) Pipeline[T]

	// AddPostProcess adds a [BatchProcessor] post-processor to the pipeline.
	AddPostProcess(processor BatchProcessor[T]) Pipeline[T]

	// Process runs all [Processor] processors on the given [T] and reports
	// whether every one of them accepted it.
	Process(item T) bool

	// Filter returns a new slice holding the items for which [Process]
	// returned true, in their original order.
	Filter(items []T) []T

	// PostProcess runs all [BatchProcessor] post-processors on a copy of the
	// given slice of [T].
	PostProcess(items []T) ([]T, bool)
}
