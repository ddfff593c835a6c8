package storage

import "sync/atomic"

// MVCCRow carries the per-row multiversion-concurrency-control fields a
// chunk may optionally track. The core treats these as opaque uint64
// columns (spec.md §3); only the storage layer shrinks and shifts them —
// nothing here interprets transaction visibility.
type MVCCRow struct {
	TransactionID uint64
	BeginCID      uint64
	EndCID        uint64
}

// Chunk is a horizontal partition of a table: one column per table column,
// positionally aligned, plus optional MVCC auxiliary columns. A chunk is
// mutable until its first column replacement (ReplaceColumn, which the
// compression engine uses to install dictionary columns), at which point it
// becomes frozen and no further appends are permitted.
type Chunk struct {
	columns []Column
	frozen  bool

	hasMVCC  bool
	mvccTxID []uint64
	mvccBCID []uint64
	mvccECID []uint64

	stats atomic.Pointer[ChunkStatistics]
}

// NewChunk allocates a mutable chunk with one empty ValueColumn per schema
// entry. mvccCapacity, when > 0, preallocates the opaque MVCC columns to
// that capacity (the table's max_chunk_size) the way the original
// implementation's chunk reserves MVCC column storage up front and shrinks
// it after compression.
func NewChunk(schema []ColumnDefinition, mvccCapacity int) *Chunk {
	c := &Chunk{columns: make([]Column, len(schema))}
	for i, def := range schema {
		c.columns[i] = newValueColumn(def.Type, def.Nullable)
	}
	if mvccCapacity > 0 {
		c.hasMVCC = true
		c.mvccTxID = make([]uint64, 0, mvccCapacity)
		c.mvccBCID = make([]uint64, 0, mvccCapacity)
		c.mvccECID = make([]uint64, 0, mvccCapacity)
	}
	return c
}

// ColumnCount returns the number of columns in the chunk.
func (c *Chunk) ColumnCount() int { return len(c.columns) }

// RowCount returns the chunk's current row count, defined as the size of
// any contained column (spec.md §3 — all columns stay length-aligned).
func (c *Chunk) RowCount() int {
	if len(c.columns) == 0 {
		return 0
	}
	return c.columns[0].Size()
}

// Mutable reports whether the chunk still accepts appends.
func (c *Chunk) Mutable() bool { return !c.frozen }

// HasMVCCColumns reports whether this chunk tracks MVCC auxiliary columns.
func (c *Chunk) HasMVCCColumns() bool { return c.hasMVCC }

// Column returns the column at the given position.
func (c *Chunk) Column(id ColumnId) Column {
	assert(int(id) < len(c.columns), "Chunk.Column: id %d out of range [0,%d)", id, len(c.columns))
	return c.columns[id]
}

// AppendRow appends one row's worth of values (and, if the chunk tracks
// MVCC columns, the row's MVCC fields) to every column. It requires the
// chunk to be mutable; appending to a frozen chunk is a State error.
// len(values) and len(nulls) must equal the chunk's column count — a
// mismatch is a SchemaMismatch error since the caller (Table.AppendRow)
// supplies this shape from outside the core.
func (c *Chunk) AppendRow(values []Value, nulls []bool, mvcc *MVCCRow) error {
	const op = "Chunk.AppendRow"
	if c.frozen {
		return newError(op, KindState, "chunk is frozen")
	}
	if len(values) != len(c.columns) || len(nulls) != len(c.columns) {
		return newError(op, KindSchemaMismatch, "row has %d/%d values, chunk has %d columns", len(values), len(nulls), len(c.columns))
	}
	for i, col := range c.columns {
		if err := appendToColumn(col, values[i], nulls[i]); err != nil {
			return err
		}
	}
	if c.hasMVCC {
		if mvcc == nil {
			mvcc = &MVCCRow{}
		}
		c.mvccTxID = append(c.mvccTxID, mvcc.TransactionID)
		c.mvccBCID = append(c.mvccBCID, mvcc.BeginCID)
		c.mvccECID = append(c.mvccECID, mvcc.EndCID)
	}
	return nil
}

// ReplaceColumn installs a new column at position id. The replacement must
// have the same row count as the chunk; a mismatch is a SchemaMismatch
// error (spec.md §4.5). The first successful replacement on a chunk
// transitions it from mutable to frozen.
func (c *Chunk) ReplaceColumn(id ColumnId, col Column) error {
	const op = "Chunk.ReplaceColumn"
	assert(int(id) < len(c.columns), "%s: id %d out of range [0,%d)", op, id, len(c.columns))
	if col.Size() != c.RowCount() {
		return newError(op, KindSchemaMismatch, "replacement has %d rows, chunk has %d", col.Size(), c.RowCount())
	}
	c.columns[id] = col
	c.frozen = true
	return nil
}

// ShrinkMVCCColumns trims the opaque MVCC auxiliary columns to the chunk's
// actual row count, releasing any capacity reserved up to max_chunk_size
// (spec.md §4.3, "MVCC auxiliary vectors... are shrunk to their actual
// length").
func (c *Chunk) ShrinkMVCCColumns() {
	if !c.hasMVCC {
		return
	}
	n := c.RowCount()
	c.mvccTxID = append(make([]uint64, 0, n), c.mvccTxID[:n]...)
	c.mvccBCID = append(make([]uint64, 0, n), c.mvccBCID[:n]...)
	c.mvccECID = append(make([]uint64, 0, n), c.mvccECID[:n]...)
}

// SetStatistics installs stats as the chunk's statistics snapshot in one
// atomic pointer swap (spec.md §4.5, "installed at chunk granularity as one
// value"). Readers calling Statistics concurrently with this observe either
// the old or the new snapshot in full, never a partial one.
func (c *Chunk) SetStatistics(stats ChunkStatistics) {
	c.stats.Store(&stats)
}

// Statistics returns the chunk's current statistics snapshot, or nil if
// none has been installed yet (e.g. the chunk hasn't been compressed).
func (c *Chunk) Statistics() ChunkStatistics {
	p := c.stats.Load()
	if p == nil {
		return nil
	}
	return *p
}
