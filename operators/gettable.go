// Package operators implements the minimal execution glue spec.md scopes
// in: the chunk-pruning table-access operator that exposes a stored table
// to a query pipeline. Everything else a real query engine needs — plan
// construction, join ordering, the scheduler — is an external collaborator
// per spec.md §1.
package operators

import (
	"fmt"

	"chunkstore/catalog"
	"chunkstore/storage"
)

// GetTable is the table-access operator (spec.md §4.4): it looks up a
// named table in the storage registry and, when given an excluded-chunk
// set by an external optimizer collaborator, materializes a pruned view
// that shares chunk references with the original rather than copying
// payloads.
type GetTable struct {
	tableName string
	excluded  map[storage.ChunkId]struct{}
	prunedN   int
}

// NewGetTable constructs the operator for the named table.
func NewGetTable(tableName string) *GetTable {
	return &GetTable{tableName: tableName}
}

// SetExcludedChunks supplies the ordered set of chunk ids to exclude from
// the materialized view. Passing nil or an empty slice clears any previous
// exclusion, restoring the zero-copy fast path.
func (op *GetTable) SetExcludedChunks(ids []storage.ChunkId) {
	if len(ids) == 0 {
		op.excluded = nil
		return
	}
	op.excluded = make(map[storage.ChunkId]struct{}, len(ids))
	for _, id := range ids {
		op.excluded[id] = struct{}{}
	}
}

// Execute looks up the table and, if an exclusion set is present, returns
// a pruned view; otherwise it returns the original table reference
// unchanged (spec.md §4.4, "zero-copy fast path"). Re-invoking Execute is
// deterministic: the same table contents and exclusion set produce the
// same pruning decision every time.
func (op *GetTable) Execute(registry *catalog.Registry) (*storage.Table, error) {
	table, err := registry.GetTable(op.tableName)
	if err != nil {
		return nil, err
	}

	op.prunedN = 0
	if len(op.excluded) == 0 {
		return table, nil
	}

	pruned := table.CloneLayout()
	for id := 0; id < table.ChunkCount(); id++ {
		chunkID := storage.ChunkId(id)
		if _, excluded := op.excluded[chunkID]; excluded {
			op.prunedN++
			continue
		}
		pruned.AppendChunk(table.Chunk(chunkID))
	}
	return pruned, nil
}

// Description renders the operator's plan-node label, of the form
// "GetTable (name)" optionally augmented with "(N Chunks pruned)" once
// Execute has run (spec.md §6).
func (op *GetTable) Description() string {
	if op.prunedN == 0 {
		return fmt.Sprintf("GetTable (%s)", op.tableName)
	}
	return fmt.Sprintf("GetTable (%s) (%d Chunks pruned)", op.tableName, op.prunedN)
}
