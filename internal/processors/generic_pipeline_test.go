package processors

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGenericPipeline_Process_Empty tests that an empty pipeline accepts all.
func TestGenericPipeline_Process_Empty(t *testing.T) {
	t.Parallel()

	p := NewGenericPipeline[int]()

	assert.True(t, p.Process(1))
	assert.Equal(t, []int{1, 2, 3}, p.Filter([]int{1, 2, 3}))
	assert.Equal(t, 0, p.Len())
}

// TestGenericPipeline_Process_StopsAtFirstReject tests the short-circuit of
// the predicate chain.
func TestGenericPipeline_Process_StopsAtFirstReject(t *testing.T) {
	t.Parallel()

	var calls []string

	p := NewGenericPipeline[int]()
	p.Add(func(i int) bool {
		calls = append(calls, "even")

		return i%2 == 0
	}).Add(func(i int) bool {
		calls = append(calls, "positive")

		return i > 0
	})

	assert.False(t, p.Process(3))
	assert.Equal(t, []string{"even"}, calls)

	calls = nil
	assert.True(t, p.Process(4))
	assert.Equal(t, []string{"even", "positive"}, calls)
}

// TestGenericPipeline_Filter tests that filtering preserves order and does not
// touch the input slice.
func TestGenericPipeline_Filter(t *testing.T) {
	t.Parallel()

	p := NewGenericPipeline[int]()
	p.Add(func(i int) bool { return i%2 == 0 })

	input := []int{6, 1, 4, 3, 2}
	assert.Equal(t, []int{6, 4, 2}, p.Filter(input))
	assert.Equal(t, []int{6, 1, 4, 3, 2}, input)
	assert.Empty(t, p.Filter(nil))
}

// TestGenericPipeline_PostProcess tests sequencing and copying of the batch
// post-processors.
func TestGenericPipeline_PostProcess(t *testing.T) {
	t.Parallel()

	p := NewGenericPipeline[int]()
	p.AddPostProcess(func(items []int) ([]int, bool) {
		slices.Sort(items)

		return items, true
	}).AddPostProcess(func(items []int) ([]int, bool) {
		return items[:2], true
	})

	input := []int{3, 1, 2}
	out, ok := p.PostProcess(input)

	require.True(t, ok)
	assert.Equal(t, []int{1, 2}, out)
	assert.Equal(t, []int{3, 1, 2}, input)
}

// TestGenericPipeline_PostProcess_Fail tests that a failing post-processor
// aborts the remaining ones.
func TestGenericPipeline_PostProcess_Fail(t *testing.T) {
	t.Parallel()

	called := false

	p := NewGenericPipeline[int]()
	p.AddPostProcess(func([]int) ([]int, bool) {
		return nil, false
	}).AddPostProcess(func(items []int) ([]int, bool) {
		called = true

		return items, true
	})

	out, ok := p.PostProcess([]int{1})

	assert.False(t, ok)
	assert.Nil(t, out)
	assert.False(t, called)
}
