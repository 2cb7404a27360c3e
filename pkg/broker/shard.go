// Package broker provides the AMQP transport between the poller and the
// queue workers, including the chat-to-queue sharding that gives every chat
// a single owning worker.
package broker

import (
	"crypto/sha256"
	"fmt"
	"math/big"
	"strconv"
)

// ShardIndex maps a chat to one of numQueues shards. The hash runs over the
// decimal chat id string (sign included), so the mapping is stable across
// processes, restarts and implementations.
func ShardIndex(chatID int64, numQueues int) int {
	if numQueues <= 1 {
		return 0
	}

	sum := sha256.Sum256([]byte(strconv.FormatInt(chatID, 10)))

	var n big.Int
	n.SetBytes(sum[:])
	return int(n.Mod(&n, big.NewInt(int64(numQueues))).Int64())
}

// QueueName returns the queue a chat's updates are published to.
func QueueName(chatID int64, numQueues int) string {
	return QueueNameFor(ShardIndex(chatID, numQueues))
}

// QueueNameFor returns the name of the k-th update queue.
func QueueNameFor(shard int) string {
	return fmt.Sprintf("update_queue_%d", shard)
}
