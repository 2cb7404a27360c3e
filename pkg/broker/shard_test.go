package broker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShardIndex(t *testing.T) {
	t.Run("matches the published hash contract", func(t *testing.T) {
		// SHA-256 over the decimal chat id string, taken as a big-endian
		// integer, mod the queue count. Expectations computed externally.
		cases := []struct {
			chatID    int64
			numQueues int
			want      int
		}{
			{42, 4, 1},
			{-42, 4, 2},
			{0, 4, 1},
			{123456789, 4, 1},
			{-1001234567890, 4, 0},
			{555, 4, 0},
			{42, 7, 4},
			{-42, 7, 6},
			{123456789, 7, 5},
			{-1001234567890, 7, 6},
		}
		for _, tc := range cases {
			assert.Equal(t, tc.want, ShardIndex(tc.chatID, tc.numQueues),
				"chat %d over %d queues", tc.chatID, tc.numQueues)
		}
	})

	t.Run("single queue takes everything", func(t *testing.T) {
		for _, chatID := range []int64{0, 1, -1, 42, -1001234567890} {
			assert.Equal(t, 0, ShardIndex(chatID, 1))
		}
	})

	t.Run("deterministic per chat", func(t *testing.T) {
		for i := 0; i < 10; i++ {
			assert.Equal(t, ShardIndex(-100900, 8), ShardIndex(-100900, 8))
		}
	})

	t.Run("stays in range", func(t *testing.T) {
		for chatID := int64(-50); chatID < 50; chatID++ {
			idx := ShardIndex(chatID, 4)
			assert.GreaterOrEqual(t, idx, 0)
			assert.Less(t, idx, 4)
		}
	})
}

func TestQueueName(t *testing.T) {
	assert.Equal(t, "update_queue_1", QueueName(42, 4))
	assert.Equal(t, "update_queue_0", QueueName(-1001234567890, 4))
	assert.Equal(t, "update_queue_3", QueueNameFor(3))
}
