package txn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTriggerQueueLazyUntilFirstAdd(t *testing.T) {
	var q triggerQueue
	assert.Nil(t, q.payloads)
	q.add(Payload{})
	assert.Len(t, q.payloads, 1)
}

func TestTriggerQueueFiresInInsertionOrder(t *testing.T) {
	var q triggerQueue
	var order []int
	for i := 0; i < 5; i++ {
		i := i
		q.add(Payload{Hook: func(interface{}) { order = append(order, i) }})
	}
	q.fire()
	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestPayloadWithNilHookIsSafe(t *testing.T) {
	var q triggerQueue
	q.add(Payload{Data: "no-op"})
	assert.NotPanics(t, q.fire)
}
