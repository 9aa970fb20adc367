package txn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var locA = ItemPointer{BlockID: 1, Offset: 0}
var locB = ItemPointer{BlockID: 2, Offset: 0}

// TestLatticeFromNone exhaustively exercises every recording op's
// behavior when called once on a fresh, untouched key.
func TestLatticeFromNone(t *testing.T) {
	tests := []struct {
		name string
		op   func(m *actionMatrix, loc ItemPointer)
		want Classification
	}{
		{"read", func(m *actionMatrix, loc ItemPointer) { m.recordRead(loc) }, Read},
		{"read_own", func(m *actionMatrix, loc ItemPointer) { m.recordReadOwn(loc) }, ReadOwn},
		{"update", func(m *actionMatrix, loc ItemPointer) { m.recordUpdate(loc) }, Update},
		{"insert", func(m *actionMatrix, loc ItemPointer) { m.recordInsert(loc) }, Insert},
		{"delete", func(m *actionMatrix, loc ItemPointer) { m.recordDelete(loc) }, Delete},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := newActionMatrix()
			tc.op(m, locA)
			assert.Equal(t, tc.want, m.classification(locA))
			assert.False(t, m.isWritten)
		})
	}
}

// TestReadThenReadIsNoOp checks that repeated reads of the same key
// leave its classification and bookkeeping unchanged.
func TestReadThenReadIsNoOp(t *testing.T) {
	m := newActionMatrix()
	m.recordRead(locA)
	m.recordRead(locA)
	m.recordRead(locA)
	assert.Equal(t, Read, m.classification(locA))
	assert.False(t, m.isWritten)
	assert.Equal(t, 0, m.insertCount)
}

// TestWriteLatchOnlyFromReadClass checks that is_written latches only
// on a write-class transition reached via a read-class predecessor,
// never on a direct None -> write-class transition.
func TestWriteLatchOnlyFromReadClass(t *testing.T) {
	m := newActionMatrix()
	m.recordUpdate(locA) // None -> Update, direct
	assert.False(t, m.isWritten)

	m2 := newActionMatrix()
	m2.recordRead(locB)
	m2.recordUpdate(locB) // Read -> Update
	assert.True(t, m2.isWritten)
}

// TestWriteLatchMonotone checks that once set, is_written never clears.
func TestWriteLatchMonotone(t *testing.T) {
	m := newActionMatrix()
	m.recordRead(locA)
	m.recordUpdate(locA)
	require.True(t, m.isWritten)
	m.recordDelete(locA)
	assert.True(t, m.isWritten)
}

// TestInsertThenDeleteElides checks that Insert -> Delete transitions to
// InsertDelete, decrements insert_count, and returns true.
func TestInsertThenDeleteElides(t *testing.T) {
	m := newActionMatrix()
	m.recordInsert(locA)
	require.Equal(t, 1, m.insertCount)
	elided := m.recordDelete(locA)
	assert.True(t, elided)
	assert.Equal(t, InsertDelete, m.classification(locA))
	assert.Equal(t, 0, m.insertCount)
}

// TestDeleteFromReadIsNotElided checks that deleting a key that only
// reached a write-class state via a prior read never reports elision.
func TestDeleteFromReadIsNotElided(t *testing.T) {
	m := newActionMatrix()
	m.recordRead(locA)
	m.recordReadOwn(locA)
	m.recordUpdate(locA)
	elided := m.recordDelete(locA)
	assert.False(t, elided)
	assert.Equal(t, Delete, m.classification(locA))
	assert.True(t, m.isWritten)
	assert.Equal(t, 0, m.insertCount)
}

// TestInsertCountAgreement checks insert_count bookkeeping across a
// mixed sequence: two inserts, one of which is later deleted.
func TestInsertCountAgreement(t *testing.T) {
	m := newActionMatrix()
	m.recordInsert(locA)
	m.recordInsert(locB)
	elided := m.recordDelete(locA)
	m.recordUpdate(locB)

	assert.True(t, elided)
	assert.Equal(t, InsertDelete, m.classification(locA))
	assert.Equal(t, Insert, m.classification(locB))
	assert.Equal(t, 1, m.insertCount)
	assert.False(t, m.isWritten) // no read-then-write occurred
}

// TestTerminalStatesRejectEveryOperation checks that once a key is
// Delete or InsertDelete, every recording operation on it faults.
func TestTerminalStatesRejectEveryOperation(t *testing.T) {
	terminalSetups := map[string]func(m *actionMatrix){
		"Delete":       func(m *actionMatrix) { m.recordDelete(locA) },
		"InsertDelete": func(m *actionMatrix) { m.recordInsert(locA); m.recordDelete(locA) },
	}
	ops := map[string]func(m *actionMatrix){
		"read":      func(m *actionMatrix) { m.recordRead(locA) },
		"read_own":  func(m *actionMatrix) { m.recordReadOwn(locA) },
		"update":    func(m *actionMatrix) { m.recordUpdate(locA) },
		"insert":    func(m *actionMatrix) { m.recordInsert(locA) },
		"delete":    func(m *actionMatrix) { m.recordDelete(locA) },
	}
	for terminalName, setup := range terminalSetups {
		for opName, op := range ops {
			t.Run(terminalName+"/"+opName, func(t *testing.T) {
				m := newActionMatrix()
				setup(m)
				assert.Panics(t, func() { op(m) })
			})
		}
	}
}

// TestInsertOnlyLegalFromNone covers the insert column's illegal cells:
// Read, ReadOwn, Update, and Insert itself all reject an insert.
func TestInsertOnlyLegalFromNone(t *testing.T) {
	setups := map[string]func(m *actionMatrix){
		"Read":     func(m *actionMatrix) { m.recordRead(locA) },
		"ReadOwn":  func(m *actionMatrix) { m.recordReadOwn(locA) },
		"Update":   func(m *actionMatrix) { m.recordUpdate(locA) },
		"Insert":   func(m *actionMatrix) { m.recordInsert(locA) },
	}
	for name, setup := range setups {
		t.Run(name, func(t *testing.T) {
			m := newActionMatrix()
			setup(m)
			assert.Panics(t, func() { m.recordInsert(locA) })
		})
	}
}

// TestUniquenessOfEntries checks that at most one entry exists per key,
// and distinct keys are tracked independently.
func TestUniquenessOfEntries(t *testing.T) {
	m := newActionMatrix()
	m.recordRead(locA)
	m.recordRead(locB)
	assert.Len(t, m.entries, 2)
	assert.Equal(t, Read, m.classification(locA))
	assert.Equal(t, Read, m.classification(locB))
}

func TestClassificationOfAbsentKeyIsNone(t *testing.T) {
	m := newActionMatrix()
	assert.Equal(t, None, m.classification(locA))
}
