package txn

import "github.com/google/btree"

// gcDegree mirrors the degree cockroachdb's txn pipeliner uses for its
// in-flight-write btree (pkg/kv/txn_interceptor_pipeliner.go); there is
// nothing domain-specific about the value, it is just a reasonable
// B-tree fan-out for the handful of tables/objects one transaction
// typically touches.
const gcDegree = 32

// GCFlags is a small flag set attached to one reclaimable tuple-version,
// e.g. whether its indexes also need a purge pass.
type GCFlags uint8

const (
	// NeedsIndexPurge marks a version whose secondary index entries must
	// also be reclaimed, not just the heap version itself.
	NeedsIndexPurge GCFlags = 1 << iota
)

// tableBucket is one table's reclaimable item pointers. It implements
// btree.Item so GCSet can keep its tables in ascending table-id order.
type tableBucket struct {
	tableID uint64
	items   map[ItemPointer]GCFlags
}

func (b *tableBucket) Less(than btree.Item) bool {
	return b.tableID < than.(*tableBucket).tableID
}

// GCSet accumulates, per table, the tuple-versions this transaction has
// made garbage. The core only ever appends to it on the executor's
// behalf; it never populates it during recording. An external collector
// drains it at commit or abort.
type GCSet struct {
	tables *btree.BTree
}

func newGCSet() *GCSet {
	return &GCSet{tables: btree.New(gcDegree)}
}

// Add schedules loc under tableID for reclamation with the given flags.
// Calling Add again for the same (tableID, loc) overwrites the flags.
func (s *GCSet) Add(tableID uint64, loc ItemPointer, flags GCFlags) {
	probe := &tableBucket{tableID: tableID}
	var bucket *tableBucket
	if existing := s.tables.Get(probe); existing != nil {
		bucket = existing.(*tableBucket)
	} else {
		bucket = &tableBucket{tableID: tableID, items: make(map[ItemPointer]GCFlags)}
		s.tables.ReplaceOrInsert(bucket)
	}
	bucket.items[loc] = flags
}

// Len returns the number of tables with at least one pending reclaim.
func (s *GCSet) Len() int {
	return s.tables.Len()
}

// Ascend visits each table bucket in ascending table-id order, calling fn
// with the table id and its reclaimable item pointers. fn's map must not
// be retained past the call.
func (s *GCSet) Ascend(fn func(tableID uint64, items map[ItemPointer]GCFlags)) {
	s.tables.Ascend(func(i btree.Item) bool {
		b := i.(*tableBucket)
		fn(b.tableID, b.items)
		return true
	})
}

// ObjectHandle identifies a table or index object scheduled for drop.
type ObjectHandle struct {
	DatabaseID uint64
	TableID    uint64
	IndexID    uint64
}

func (h ObjectHandle) Less(than btree.Item) bool {
	o := than.(ObjectHandle)
	if h.DatabaseID != o.DatabaseID {
		return h.DatabaseID < o.DatabaseID
	}
	if h.TableID != o.TableID {
		return h.TableID < o.TableID
	}
	return h.IndexID < o.IndexID
}

// GCObjectSet is the set of table/index objects this transaction has
// scheduled for drop (e.g. DROP TABLE executed within the transaction).
type GCObjectSet struct {
	objects *btree.BTree
}

func newGCObjectSet() *GCObjectSet {
	return &GCObjectSet{objects: btree.New(gcDegree)}
}

// Add schedules handle for drop. Adding the same handle twice is a no-op.
func (s *GCObjectSet) Add(handle ObjectHandle) {
	s.objects.ReplaceOrInsert(handle)
}

// Len returns the number of distinct objects scheduled for drop.
func (s *GCObjectSet) Len() int {
	return s.objects.Len()
}

// Ascend visits each scheduled object in ascending (database, table,
// index) order.
func (s *GCObjectSet) Ascend(fn func(handle ObjectHandle)) {
	s.objects.Ascend(func(i btree.Item) bool {
		fn(i.(ObjectHandle))
		return true
	})
}
