package operators

import (
	"testing"

	"chunkstore/catalog"
	"chunkstore/storage"
)

func buildPruningTable(t *testing.T) *storage.Table {
	schema := []storage.ColumnDefinition{
		{Name: "id", Type: storage.DataTypeInt64, Nullable: false},
	}
	table := storage.NewTable(schema, 2, false)
	for i := int64(0); i < 8; i++ {
		if err := table.AppendRow([]storage.Value{storage.Int64Value(i)}, []bool{false}, nil); err != nil {
			t.Fatal(err)
		}
	}
	if table.ChunkCount() != 4 {
		t.Fatalf("setup: ChunkCount() = %d, want 4", table.ChunkCount())
	}
	return table
}

func TestGetTableFastPathReturnsSameTableReference(t *testing.T) {
	registry := catalog.NewRegistry()
	table := buildPruningTable(t)
	registry.Register("t", table)

	op := NewGetTable("t")
	result, err := op.Execute(registry)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if result != table {
		t.Fatal("unpruned Execute should return the original table reference, not a copy")
	}
	if got := op.Description(); got != "GetTable (t)" {
		t.Fatalf("Description() = %q, want %q", got, "GetTable (t)")
	}
}

func TestGetTablePrunesExcludedChunksAndSharesRemaining(t *testing.T) {
	registry := catalog.NewRegistry()
	table := buildPruningTable(t)
	registry.Register("t", table)

	want0, want2 := table.Chunk(0), table.Chunk(2)

	op := NewGetTable("t")
	op.SetExcludedChunks([]storage.ChunkId{1, 3})

	result, err := op.Execute(registry)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if got := result.ChunkCount(); got != 2 {
		t.Fatalf("pruned view chunk count = %d, want 2", got)
	}
	if result.Chunk(0) != want0 {
		t.Fatal("pruned view's first chunk should be the same object as original chunk 0")
	}
	if result.Chunk(1) != want2 {
		t.Fatal("pruned view's second chunk should be the same object as original chunk 2")
	}

	if got := op.Description(); got != "GetTable (t) (2 Chunks pruned)" {
		t.Fatalf("Description() = %q, want %q", got, "GetTable (t) (2 Chunks pruned)")
	}
}

func TestGetTableClearingExclusionRestoresFastPath(t *testing.T) {
	registry := catalog.NewRegistry()
	table := buildPruningTable(t)
	registry.Register("t", table)

	op := NewGetTable("t")
	op.SetExcludedChunks([]storage.ChunkId{0})
	if _, err := op.Execute(registry); err != nil {
		t.Fatal(err)
	}

	op.SetExcludedChunks(nil)
	result, err := op.Execute(registry)
	if err != nil {
		t.Fatal(err)
	}
	if result != table {
		t.Fatal("clearing the exclusion set should restore the zero-copy fast path")
	}
}

func TestGetTableUnknownTableReturnsError(t *testing.T) {
	registry := catalog.NewRegistry()
	op := NewGetTable("missing")

	_, err := op.Execute(registry)
	if err == nil {
		t.Fatal("expected an error for an unregistered table")
	}
	if !storage.IsKind(err, storage.KindNotFound) {
		t.Fatalf("expected KindNotFound, got %v", err)
	}
}
