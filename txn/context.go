package txn

import "fmt"

// Context is a transaction's read/write tracking state: identity and
// timestamps, the rw_set (action matrix), GC bookkeeping, and deferred
// on-commit triggers. It is single-writer: only the thread identified
// by ThreadID may invoke its mutating operations. Context performs no
// locking itself.
type Context struct {
	identity

	matrix *actionMatrix

	gcSet    *GCSet
	gcObjSet *GCObjectSet

	triggers triggerQueue
}

// New begins a transaction context with no commit id assigned yet
// (CommitIDSentinel). The transaction manager supplies one later via
// SetCommitID, typically at commit phase.
func New(threadID uint64, isolation IsolationLevel, readID uint64) *Context {
	return NewWithCommitID(threadID, isolation, readID, CommitIDSentinel)
}

// NewWithCommitID begins a transaction context that already knows its
// commit id (e.g. a single-statement transaction that serializes
// immediately).
func NewWithCommitID(threadID uint64, isolation IsolationLevel, readID, commitID uint64) *Context {
	transactionsStartedCounter.Inc()
	return &Context{
		identity: newIdentity(threadID, isolation, readID, commitID),
		matrix:   newActionMatrix(),
		gcSet:    newGCSet(),
		gcObjSet: newGCObjectSet(),
	}
}

// --- Action Matrix ---------------------------------------------------

// RecordRead records an observation of loc with no intent to modify it.
func (c *Context) RecordRead(loc ItemPointer) { c.matrix.recordRead(loc) }

// RecordReadOwn records an observation of loc locked for prospective
// modification (the upgrade path toward Update/Delete).
func (c *Context) RecordReadOwn(loc ItemPointer) { c.matrix.recordReadOwn(loc) }

// RecordUpdate records that the existing version at loc was replaced.
func (c *Context) RecordUpdate(loc ItemPointer) { c.matrix.recordUpdate(loc) }

// RecordInsert records that a brand new version was created at loc. Only
// ever legal when loc has no prior entry in this transaction.
func (c *Context) RecordInsert(loc ItemPointer) {
	c.matrix.recordInsert(loc)
	insertCountGauge.Set(float64(c.matrix.insertCount))
}

// RecordDelete records that the version at loc was marked deleted. It
// returns true iff this transition fully cancelled a same-transaction
// insert (Insert -> InsertDelete), in which case the caller may reclaim
// the new physical version immediately.
func (c *Context) RecordDelete(loc ItemPointer) bool {
	elided := c.matrix.recordDelete(loc)
	insertCountGauge.Set(float64(c.matrix.insertCount))
	return elided
}

// Classification reports loc's current access classification, or None
// if this transaction has no entry for loc.
func (c *Context) Classification(loc ItemPointer) Classification { return c.matrix.classification(loc) }

// IsWritten reports whether some key reached a write-class state via a
// read-class predecessor. It latches true and is never cleared.
func (c *Context) IsWritten() bool { return c.matrix.isWritten }

// InsertCount is the number of keys currently classified exactly Insert
// (InsertDelete does not count).
func (c *Context) InsertCount() int { return c.matrix.insertCount }

// --- Identity & timestamps --------------------------------------------

func (c *Context) ThreadID() uint64              { return c.identity.threadID }
func (c *Context) IsolationLevel() IsolationLevel { return c.identity.isolationLevel }
func (c *Context) ReadID() uint64                 { return c.identity.readID }
func (c *Context) CommitID() uint64               { return c.identity.commitID }
func (c *Context) TransactionID() uint64          { return c.identity.transactionID }
func (c *Context) EpochID() uint32                { return c.identity.epochID }
func (c *Context) Result() ResultStatus           { return c.identity.result }

// SetCommitID replaces commit_id (and, with it, transaction_id). See
// identity.setCommitID for the one documented guard.
func (c *Context) SetCommitID(commitID uint64) { c.identity.setCommitID(commitID) }

// SetResult is unchecked: the transaction manager is the sole legitimate
// caller and is trusted to call it at most once with a terminal status.
func (c *Context) SetResult(result ResultStatus) {
	c.identity.result = result
	transactionsResolvedCounter.WithLabelValues(result.String()).Inc()
}

// --- GC bookkeeping ----------------------------------------------------

// GCSet returns the table-keyed set of tuple-versions this transaction
// has made garbage, for an external collector to drain at commit/abort.
func (c *Context) GCSet() *GCSet { return c.gcSet }

// GCObjectSet returns the set of table/index objects this transaction
// has scheduled for drop.
func (c *Context) GCObjectSet() *GCObjectSet { return c.gcObjSet }

// --- Trigger deferral ---------------------------------------------------

// AddOnCommit enqueues a trigger payload to fire at commit. The queue is
// allocated lazily on first call.
func (c *Context) AddOnCommit(p Payload) { c.triggers.add(p) }

// FireOnCommit invokes every queued payload's hook in insertion order.
// A no-op if nothing was ever queued. It is the caller's responsibility
// to discard the context afterward.
func (c *Context) FireOnCommit() { c.triggers.fire() }

// --- Diagnostics ---------------------------------------------------------

// Describe renders a one-line human-readable summary for operator
// debugging. Its exact format is not contractual; it always mentions
// the context's identity, transaction_id, read_id, commit_id, epoch_id,
// and result.
func (c *Context) Describe() string {
	return fmt.Sprintf(
		"Txn :: @%p ID: %d Read ID: %d Commit ID: %d Epoch ID: %d Result: %s",
		c, c.identity.transactionID, c.identity.readID, c.identity.commitID,
		c.identity.epochID, c.identity.result,
	)
}
