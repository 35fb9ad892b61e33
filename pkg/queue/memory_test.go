package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryQueue_Order(t *testing.T) {
	q := NewInMemoryQueue(4)
	require.NoError(t, q.Enqueue(1))
	require.NoError(t, q.Enqueue(2))
	require.NoError(t, q.Enqueue(3))
	assert.Equal(t, 3, q.Size())

	item, err := q.Dequeue()
	require.NoError(t, err)
	assert.Equal(t, 1, item)

	items, err := q.ReadAllMessages()
	require.NoError(t, err)
	assert.Equal(t, []interface{}{2, 3}, items)
	assert.Equal(t, 0, q.Size())
}

func TestInMemoryQueue_Full(t *testing.T) {
	q := NewInMemoryQueue(1)
	require.NoError(t, q.Enqueue("a"))
	assert.ErrorIs(t, q.Enqueue("b"), ErrQueueFull)
}

func TestInMemoryQueue_Empty(t *testing.T) {
	q := NewInMemoryQueue(1)
	_, err := q.Dequeue()
	assert.ErrorIs(t, err, ErrQueueEmpty)

	items, err := q.ReadAllMessages()
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestInMemoryQueue_ClearQueue(t *testing.T) {
	q := NewInMemoryQueue(8)
	for i := 0; i < 5; i++ {
		require.NoError(t, q.Enqueue(i))
	}
	require.NoError(t, q.ClearQueue())
	assert.Equal(t, 0, q.Size())
}
