package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain[T any](w Worklist[T]) []T {
	var out []T
	for !w.IsEmpty() {
		out = append(out, w.RemoveNext())
	}
	return out
}

func TestStack_LIFO(t *testing.T) {
	s := &Stack[int]{}
	assert.True(t, s.IsEmpty())
	for i := 1; i <= 3; i++ {
		s.Add(i)
	}
	assert.False(t, s.IsEmpty())
	assert.Equal(t, []int{3, 2, 1}, drain[int](s))
	assert.True(t, s.IsEmpty())
}

func TestQueue_FIFO(t *testing.T) {
	q := &Queue[int]{}
	assert.True(t, q.IsEmpty())
	for i := 1; i <= 3; i++ {
		q.Add(i)
	}
	assert.Equal(t, []int{1, 2, 3}, drain[int](q))
	assert.True(t, q.IsEmpty())
}

func TestQueue_Interleaved(t *testing.T) {
	q := &Queue[int]{}
	next := 0
	var got []int
	// Enough traffic to trigger compaction several times.
	for round := 0; round < 100; round++ {
		for k := 0; k < 3; k++ {
			q.Add(next)
			next++
		}
		got = append(got, q.RemoveNext(), q.RemoveNext())
	}
	got = append(got, drain[int](q)...)

	require.Len(t, got, next)
	for i, v := range got {
		assert.Equal(t, i, v)
	}
}

func TestNewWorklist(t *testing.T) {
	assert.IsType(t, &Stack[CellID]{}, NewWorklist[CellID](DepthFirst))
	assert.IsType(t, &Queue[CellID]{}, NewWorklist[CellID](BreadthFirst))
}
