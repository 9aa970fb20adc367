package txn

import (
	"fmt"

	"github.com/pingcap/log"
	"go.uber.org/zap"
)

// operation names a recording call, used only to annotate a precondition
// fault with what the caller attempted.
type operation uint8

const (
	opRead operation = iota
	opReadOwn
	opUpdate
	opInsert
	opDelete
)

func (o operation) String() string {
	switch o {
	case opRead:
		return "read"
	case opReadOwn:
		return "read_own"
	case opUpdate:
		return "update"
	case opInsert:
		return "insert"
	case opDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// actionMatrix is the rw_set: a mapping from item pointer to its current
// access classification, together with the insert_count and is_written
// bookkeeping that some transitions update atomically with it. See
// classification.go for the transition table this implements.
type actionMatrix struct {
	entries     map[ItemPointer]Classification
	insertCount int
	isWritten   bool
}

func newActionMatrix() *actionMatrix {
	return &actionMatrix{entries: make(map[ItemPointer]Classification)}
}

// classification returns the current classification for loc, or None if
// loc has no entry. Callers cannot distinguish "never touched" from
// "touched but the classification itself was never recorded" — there is
// only the one zero value.
func (m *actionMatrix) classification(loc ItemPointer) Classification {
	return m.entries[loc]
}

// fault logs the violating key and current state, then panics. Illegal
// transitions are an executor or storage-layer protocol bug, never a
// condition this package recovers from.
func (m *actionMatrix) fault(loc ItemPointer, op operation, current Classification) {
	log.Error("illegal rw-set transition attempted",
		zap.Stringer("op", op),
		zap.Uint32("block_id", loc.BlockID),
		zap.Uint32("offset", uint32(loc.Offset)),
		zap.Stringer("current", current),
	)
	panic(fmt.Sprintf("txn: illegal %s on item pointer %+v already in terminal/incompatible state %s", op, loc, current))
}

func (m *actionMatrix) recordRead(loc ItemPointer) {
	switch cur := m.classification(loc); cur {
	case None:
		m.entries[loc] = Read
	case Read, ReadOwn, Update, Insert:
		// no-op: already observed or already being written by this txn
	default:
		m.fault(loc, opRead, cur)
	}
}

func (m *actionMatrix) recordReadOwn(loc ItemPointer) {
	switch cur := m.classification(loc); cur {
	case None, Read:
		m.entries[loc] = ReadOwn
	case ReadOwn, Update, Insert:
	default:
		m.fault(loc, opReadOwn, cur)
	}
}

func (m *actionMatrix) recordUpdate(loc ItemPointer) {
	switch cur := m.classification(loc); cur {
	case None:
		m.entries[loc] = Update
	case Read, ReadOwn:
		m.entries[loc] = Update
		m.isWritten = true
	case Update, Insert:
	default:
		m.fault(loc, opUpdate, cur)
	}
}

func (m *actionMatrix) recordInsert(loc ItemPointer) {
	switch cur := m.classification(loc); cur {
	case None:
		m.entries[loc] = Insert
		m.insertCount++
	default:
		// insert is only ever legal on a fresh item pointer; every other
		// current state, including an existing Insert, is a caller bug.
		m.fault(loc, opInsert, cur)
	}
}

// recordDelete returns true iff the transition was Insert -> InsertDelete,
// meaning the caller may physically reclaim the new version immediately.
func (m *actionMatrix) recordDelete(loc ItemPointer) bool {
	switch cur := m.classification(loc); cur {
	case None:
		m.entries[loc] = Delete
		return false
	case Read, ReadOwn:
		m.entries[loc] = Delete
		m.isWritten = true
		return false
	case Update:
		m.entries[loc] = Delete
		return false
	case Insert:
		m.entries[loc] = InsertDelete
		m.insertCount--
		return true
	default:
		m.fault(loc, opDelete, cur)
		return false
	}
}
