package ship

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shipgen/internal/core"
)

func TestErosionQueue(t *testing.T) {
	q := NewErosionQueue()
	assert.True(t, q.Empty())

	q.Insert(core.Pt(1, 1))
	q.Insert(core.Pt(2, 2))
	q.Insert(core.Pt(1, 1))
	assert.Equal(t, 3, q.Len())

	assert.Equal(t, core.Pt(1, 1), q.Remove())
	assert.Equal(t, core.Pt(2, 2), q.Remove())
	assert.Equal(t, core.Pt(1, 1), q.Remove(), "duplicates come out once per insertion")
	assert.True(t, q.Empty())
	assert.Panics(t, func() { q.Remove() })

	q.Insert(core.Pt(0, 0))
	q.Clear()
	assert.True(t, q.Empty())
}
