package txn

import "fmt"

// Classification is the per-tuple label tracking what a transaction has
// done to one item pointer. The zero value, None, is never stored in a
// rw set; it represents "no entry for this key" (see Classification.String
// and Context.Classification).
type Classification uint8

const (
	// None is the implicit classification for any key absent from the
	// rw set. It is never written into the map.
	None Classification = iota
	// Read: value observed, no intent to modify.
	Read
	// ReadOwn: value observed and locked for prospective modification.
	ReadOwn
	// Update: an existing version was replaced by a new version.
	Update
	// Insert: a new version was created that did not exist before this
	// transaction.
	Insert
	// Delete: an existing version was marked deleted. Terminal.
	Delete
	// InsertDelete: a version both inserted and deleted by this
	// transaction; net no-op for external visibility. Terminal.
	InsertDelete
)

func (c Classification) String() string {
	switch c {
	case None:
		return "None"
	case Read:
		return "Read"
	case ReadOwn:
		return "ReadOwn"
	case Update:
		return "Update"
	case Insert:
		return "Insert"
	case Delete:
		return "Delete"
	case InsertDelete:
		return "InsertDelete"
	default:
		return fmt.Sprintf("Classification(%d)", uint8(c))
	}
}

// terminal reports whether no further recording operation may legally
// target a key already in this classification.
func (c Classification) terminal() bool {
	return c == Delete || c == InsertDelete
}

/*
State transition lattice (rows = current classification, columns = the
recording operation invoked; cell = resulting classification, "-" = no
change, "x" = illegal / precondition fault):

                  read   read_own   update   insert   delete
  None            Read   ReadOwn    Update   Insert   Delete
  Read            -      ReadOwn    Update*  x        Delete*
  ReadOwn         -      -          Update*  x        Delete*
  Update          -      -          -        x        Delete
  Insert          -      -          -        x        InsertDelete+
  Delete          x      x          x        x        x
  InsertDelete    x      x          x        x        x

  *  latches is_written
  +  decrements insert_count, record_delete returns true
*/
