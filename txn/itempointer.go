package txn

// ItemPointer identifies one physical tuple slot: a block and an offset
// within that block. It is supplied by the storage layer; this package
// only ever uses it as a map key, never dereferences it.
//
// ItemPointer is a plain value type: comparable, hashable, and safe to
// copy. Two ItemPointers are equal iff both fields are equal.
type ItemPointer struct {
	BlockID uint32
	Offset  uint16
}

// InvalidItemPointer is the zero value; storage never hands out this
// pointer for a live tuple, so callers may use it as a sentinel in
// tests and tables.
var InvalidItemPointer = ItemPointer{}
