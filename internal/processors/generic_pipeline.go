// Package processors implements the pipelines that listing records are run
// through between traversal and rendering.
package processors

import (
	"github.com/desertwitch/bestls/internal/schema"
)

// GenericPipeline is the principal implementation of a [schema.Pipeline]. It
// holds all [schema.Processor] predicates and [schema.BatchProcessor]
// post-processors for a specific operation and provides helper functions to
// execute them in sequential order while ensuring data safety.
//
// A processor added to the pipeline is always run after the processors that
// were added before it.
type GenericPipeline[T any] struct {
	itemProcessors      []schema.Processor[T]
	batchPostProcessors []schema.BatchProcessor[T]
}

// NewGenericPipeline returns a pointer to a new, empty [GenericPipeline].
func NewGenericPipeline[T any]() *GenericPipeline[T] {
	return &GenericPipeline[T]{}
}

// Add takes a [schema.Processor] and adds it to the pipeline for later
// execution.
func (p *GenericPipeline[T]) Add(processor schema.Processor[T]) schema.Pipeline[T] { //nolint:ireturn
	p.itemProcessors = append(p.itemProcessors, processor)

	return p
}

// AddPostProcess takes a [schema.BatchProcessor] and adds it to the pipeline
// for later execution.
func (p *GenericPipeline[T]) AddPostProcess(processor schema.BatchProcessor[T]) schema.Pipeline[T] { //nolint:ireturn
	p.batchPostProcessors = append(p.batchPostProcessors, processor)

	return p
}

// Len returns the amount of [schema.Processor] predicates in the pipeline.
func (p *GenericPipeline[T]) Len() int {
	return len(p.itemProcessors)
}

// Process sequentially runs all previously added [schema.Processor] on the
// item, stopping at the first one that rejects it. An empty pipeline accepts
// every item.
func (p *GenericPipeline[T]) Process(item T) bool {
	for _, fn := range p.itemProcessors {
		if ok := fn(item); !ok {
			return false
		}
	}

	return true
}

// Filter returns a new slice with all items accepted by [Process]. The input
// slice is left untouched.
func (p *GenericPipeline[T]) Filter(items []T) []T {
	filtered := make([]T, 0, len(items))

	for _, item := range items {
		if p.Process(item) {
			filtered = append(filtered, item)
		}
	}

	return filtered
}

// PostProcess sequentially runs all previously added [schema.BatchProcessor]
// post-processors. Every post-processor is handed its own copy of the slice.
func (p *GenericPipeline[T]) PostProcess(items []T) ([]T, bool) {
	current := make([]T, len(items))
	copy(current, items)

	for _, fn := range p.batchPostProcessors {
		result, ok := fn(current)
		if !ok {
			return nil, false
		}

		current = make([]T, len(result))
		copy(current, result)
	}

	return current, true
}
