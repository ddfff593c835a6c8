package compression

import "chunkstore/storage"

// CompressColumn compresses a single column according to its element type,
// selecting the right generic instantiation via the dataType tag. It is
// the entry point spec.md §6 calls "a column-type dispatch mechanism that,
// given a runtime DataType, constructs a generic column-compressor over the
// corresponding element type."
func CompressColumn(dataType storage.DataType, col storage.Column) (storage.Column, *storage.ColumnStatistics, error) {
	c, ok := dispatch[dataType]
	if !ok {
		return nil, nil, &storage.Error{Op: "compression.CompressColumn", Kind: storage.KindSchemaMismatch, Err: errUnknownDataType}
	}
	return c.compress(col)
}

// CompressChunk compresses every column of chunk in ascending column-id
// order (spec.md §5), replacing each with its dictionary-encoded form and
// installing the resulting per-column statistics atomically once all
// columns have been replaced. columnTypes must have one entry per chunk
// column; a mismatch is a SchemaMismatch error rather than an assertion,
// since it depends on caller-supplied data (spec.md §7).
func CompressChunk(columnTypes []storage.DataType, chunk *storage.Chunk) (storage.ChunkStatistics, error) {
	const op = "compression.CompressChunk"
	if len(columnTypes) != chunk.ColumnCount() {
		return nil, &storage.Error{Op: op, Kind: storage.KindSchemaMismatch, Err: errColumnTypeCount}
	}

	stats := make(storage.ChunkStatistics, chunk.ColumnCount())
	for id := 0; id < chunk.ColumnCount(); id++ {
		columnID := storage.ColumnId(id)
		col := chunk.Column(columnID)
		dictCol, colStats, err := CompressColumn(columnTypes[id], col)
		if err != nil {
			return nil, err
		}
		if err := chunk.ReplaceColumn(columnID, dictCol); err != nil {
			return nil, err
		}
		stats[id] = colStats
	}

	if chunk.HasMVCCColumns() {
		chunk.ShrinkMVCCColumns()
	}

	chunk.SetStatistics(stats)
	return stats, nil
}

// CompressChunks compresses the chunks named by chunkIds, in the order
// given, and returns their resulting statistics in that order. Each
// chunkId must be in range — this is an internal invariant a correct
// caller can never violate (the original's Assert(chunk_id <
// table.chunk_count())), so it panics rather than returning an error.
func CompressChunks(table *storage.Table, chunkIds []storage.ChunkId) ([]storage.ChunkStatistics, error) {
	out := make([]storage.ChunkStatistics, 0, len(chunkIds))
	for _, id := range chunkIds {
		if int(id) >= table.ChunkCount() {
			panic("compression.CompressChunks: chunk id out of range")
		}
		stats, err := CompressChunk(table.ColumnTypes(), table.Chunk(id))
		if err != nil {
			return nil, err
		}
		out = append(out, stats)
	}
	return out, nil
}

// CompressTable compresses every chunk of table in ascending chunk-id
// order (spec.md §5).
func CompressTable(table *storage.Table) ([]storage.ChunkStatistics, error) {
	out := make([]storage.ChunkStatistics, 0, table.ChunkCount())
	for id := 0; id < table.ChunkCount(); id++ {
		stats, err := CompressChunk(table.ColumnTypes(), table.Chunk(storage.ChunkId(id)))
		if err != nil {
			return nil, err
		}
		out = append(out, stats)
	}
	return out, nil
}
