package txn

// Payload is an opaque trigger record: the payload Data carried by value
// plus the Hook that fires it. The core never inspects Data, it only
// ever invokes Hook.
type Payload struct {
	Data interface{}
	Hook func(data interface{})
}

func (p Payload) fire() {
	if p.Hook != nil {
		p.Hook(p.Data)
	}
}

// triggerQueue is the on_commit_triggers sequence. A nil backing slice
// already models "lazily allocated, empty means absent" with no extra
// bookkeeping: no allocation happens until the first add.
type triggerQueue struct {
	payloads []Payload
}

func (q *triggerQueue) add(p Payload) {
	q.payloads = append(q.payloads, p)
}

// fire invokes every queued payload's hook in insertion order. It does
// not clear the queue: firing is idempotent from the queue's point of
// view, and it is the caller's responsibility that the owning context
// is discarded afterward.
func (q *triggerQueue) fire() {
	for _, p := range q.payloads {
		p.fire()
	}
}
