package txn

import (
	"fmt"

	"github.com/pingcap/log"
	"go.uber.org/zap"
)

// CommitIDSentinel is the reserved value meaning "commit id not yet
// assigned": the all-ones 64-bit value, mirroring the common "max
// uint64 means invalid" convention used for timestamps elsewhere in
// this codebase's lineage. It is rejected as an input to SetCommitID,
// since accepting it would make a legitimately-committed transaction
// indistinguishable from an unassigned one.
const CommitIDSentinel uint64 = ^uint64(0)

// IsolationLevel is opaque to the core: the executor and transaction
// manager choose it, the core never branches on its value.
type IsolationLevel uint8

const (
	ReadUncommitted IsolationLevel = iota
	ReadCommitted
	RepeatableRead
	Serializable
)

func (l IsolationLevel) String() string {
	switch l {
	case ReadUncommitted:
		return "ReadUncommitted"
	case ReadCommitted:
		return "ReadCommitted"
	case RepeatableRead:
		return "RepeatableRead"
	case Serializable:
		return "Serializable"
	default:
		return "Unknown"
	}
}

// ResultStatus is the outcome the transaction manager assigns once a
// transaction resolves. The core never sets it itself.
type ResultStatus uint8

const (
	// ResultPending is the zero value: no outcome assigned yet.
	ResultPending ResultStatus = iota
	ResultSuccess
	ResultFailure
	ResultAborted
)

func (r ResultStatus) String() string {
	switch r {
	case ResultPending:
		return "Pending"
	case ResultSuccess:
		return "Success"
	case ResultFailure:
		return "Failure"
	case ResultAborted:
		return "Aborted"
	default:
		return "Unknown"
	}
}

// identity holds the timestamp trio and thread binding for one
// transaction. transaction_id mirrors commit_id; epoch_id is derived
// from read_id at construction and never recomputed.
type identity struct {
	threadID       uint64
	isolationLevel IsolationLevel
	readID         uint64
	commitID       uint64
	transactionID  uint64
	epochID        uint32
	result         ResultStatus
}

func newIdentity(threadID uint64, isolation IsolationLevel, readID, commitID uint64) identity {
	return identity{
		threadID:       threadID,
		isolationLevel: isolation,
		readID:         readID,
		commitID:       commitID,
		transactionID:  commitID,
		epochID:        uint32(readID >> 32),
	}
}

// setCommitID is otherwise unchecked (per spec, commit-id mutation is
// the transaction manager's unsupervised responsibility) except for one
// documented guard: the reserved sentinel may never be reintroduced
// once a transaction exists, or a committed transaction would become
// indistinguishable from an unassigned one. That guard is a precondition
// fault like any other in this package, not a recoverable error.
func (id *identity) setCommitID(commitID uint64) {
	if commitID == CommitIDSentinel {
		log.Error("refusing to set commit id to the reserved sentinel",
			zap.Uint64("transaction_id", id.transactionID))
		panic(fmt.Sprintf("txn: set_commit_id called with reserved sentinel %#x", CommitIDSentinel))
	}
	id.commitID = commitID
	id.transactionID = commitID
}
