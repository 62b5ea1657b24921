package ship

import (
	"github.com/zyedidia/generic/stack"

	"shipgen/internal/core"
)

// ErosionQueue holds cells waiting to be eroded. It is last-in first-out;
// the same point may be queued more than once and is then removed once per
// insertion.
type ErosionQueue struct {
	s *stack.Stack[core.Point]
}

// NewErosionQueue returns an empty queue.
func NewErosionQueue() *ErosionQueue {
	return &ErosionQueue{s: stack.New[core.Point]()}
}

func (q *ErosionQueue) Insert(p core.Point) { q.s.Push(p) }

// Remove pops the most recently inserted point. It panics when empty.
func (q *ErosionQueue) Remove() core.Point {
	if q.Empty() {
		panic("ship: remove from empty erosion queue")
	}
	return q.s.Pop()
}

func (q *ErosionQueue) Empty() bool { return q.s.Size() == 0 }

func (q *ErosionQueue) Len() int { return q.s.Size() }

func (q *ErosionQueue) Clear() { q.s = stack.New[core.Point]() }
