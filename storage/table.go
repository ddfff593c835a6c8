package storage

// Table is an ordered sequence of chunks sharing an immutable schema and a
// max_chunk_size policy. New chunks are created on demand as rows are
// appended; existing chunk slots never change identity once created, so
// readers holding a chunk reference can keep using it even while the table
// grows (spec.md §5, "table's chunk list is append-only").
type Table struct {
	schema       []ColumnDefinition
	maxChunkSize int
	mvccEnabled  bool
	chunks       []*Chunk
}

// NewTable creates an empty table with the given schema and per-chunk row
// limit. mvccEnabled controls whether chunks created by this table reserve
// the opaque MVCC auxiliary columns described in spec.md §3.
func NewTable(schema []ColumnDefinition, maxChunkSize int, mvccEnabled bool) *Table {
	assert(maxChunkSize > 0, "NewTable: max_chunk_size must be positive, got %d", maxChunkSize)
	return &Table{
		schema:       append([]ColumnDefinition(nil), schema...),
		maxChunkSize: maxChunkSize,
		mvccEnabled:  mvccEnabled,
	}
}

// CloneLayout returns a new, empty table sharing this table's schema and
// max_chunk_size policy (spec.md §3, "layout-cloning constructor").
func (t *Table) CloneLayout() *Table {
	return NewTable(t.schema, t.maxChunkSize, t.mvccEnabled)
}

// Schema returns the table's column definitions.
func (t *Table) Schema() []ColumnDefinition { return t.schema }

// ColumnTypes returns just the element type of each schema column, the
// shape the compression engine's entry points expect.
func (t *Table) ColumnTypes() []DataType {
	types := make([]DataType, len(t.schema))
	for i, def := range t.schema {
		types[i] = def.Type
	}
	return types
}

// MaxChunkSize returns the table's fixed per-chunk row limit.
func (t *Table) MaxChunkSize() int { return t.maxChunkSize }

// ChunkCount returns the number of chunks currently in the table.
func (t *Table) ChunkCount() int { return len(t.chunks) }

// Chunk returns the chunk at the given position.
func (t *Table) Chunk(id ChunkId) *Chunk {
	assert(int(id) < len(t.chunks), "Table.Chunk: id %d out of range [0,%d)", id, len(t.chunks))
	return t.chunks[id]
}

// Chunks returns the table's chunks in order. The returned slice is a copy
// of the header; the underlying Chunk objects are shared, not copied.
func (t *Table) Chunks() []*Chunk {
	out := make([]*Chunk, len(t.chunks))
	copy(out, t.chunks)
	return out
}

// AppendChunk appends an already-built chunk to the table (used by the
// table-access operator to assemble a pruned view from shared chunk
// references, and by tests). It bypasses AppendRow's max_chunk_size
// bookkeeping — callers are responsible for chunk sizing.
func (t *Table) AppendChunk(c *Chunk) {
	t.chunks = append(t.chunks, c)
}

// AppendRow appends one row to the table, allocating a new chunk when the
// current last chunk is absent, frozen, or already at max_chunk_size
// (spec.md §4.5 — rows are never split across chunks).
func (t *Table) AppendRow(values []Value, nulls []bool, mvcc *MVCCRow) error {
	if len(t.chunks) == 0 || !t.chunks[len(t.chunks)-1].Mutable() || t.chunks[len(t.chunks)-1].RowCount() >= t.maxChunkSize {
		mvccCap := 0
		if t.mvccEnabled {
			mvccCap = t.maxChunkSize
		}
		t.chunks = append(t.chunks, NewChunk(t.schema, mvccCap))
	}
	return t.chunks[len(t.chunks)-1].AppendRow(values, nulls, mvcc)
}
