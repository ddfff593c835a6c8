package storage

import "testing"

func testSchema() []ColumnDefinition {
	return []ColumnDefinition{
		{Name: "id", Type: DataTypeInt64, Nullable: false},
		{Name: "name", Type: DataTypeString, Nullable: true},
	}
}

func TestTableAppendRowAllocatesNewChunkWhenFull(t *testing.T) {
	table := NewTable(testSchema(), 2, false)

	for i := 0; i < 5; i++ {
		err := table.AppendRow(
			[]Value{Int64Value(int64(i)), StringValue("x")},
			[]bool{false, false},
			nil,
		)
		if err != nil {
			t.Fatalf("AppendRow(%d): %v", i, err)
		}
	}

	if got := table.ChunkCount(); got != 3 {
		t.Fatalf("ChunkCount() = %d, want 3 (ceil(5/2))", got)
	}
	if got := table.Chunk(0).RowCount(); got != 2 {
		t.Fatalf("chunk 0 row count = %d, want 2", got)
	}
	if got := table.Chunk(2).RowCount(); got != 1 {
		t.Fatalf("chunk 2 row count = %d, want 1", got)
	}
}

func TestTableAppendRowNeverSplitsAcrossFrozenChunk(t *testing.T) {
	table := NewTable(testSchema(), 10, false)
	if err := table.AppendRow([]Value{Int64Value(1), StringValue("a")}, []bool{false, false}, nil); err != nil {
		t.Fatal(err)
	}

	// Freeze the only chunk directly (simulating compression having run)
	// and confirm the next append allocates a fresh chunk rather than
	// erroring or reusing the frozen one.
	table.chunks[0].frozen = true

	if err := table.AppendRow([]Value{Int64Value(2), StringValue("b")}, []bool{false, false}, nil); err != nil {
		t.Fatal(err)
	}

	if got := table.ChunkCount(); got != 2 {
		t.Fatalf("ChunkCount() = %d, want 2", got)
	}
	if got := table.Chunk(1).RowCount(); got != 1 {
		t.Fatalf("new chunk row count = %d, want 1", got)
	}
}

func TestTableCloneLayoutSharesSchemaNotChunks(t *testing.T) {
	table := NewTable(testSchema(), 5, false)
	table.AppendRow([]Value{Int64Value(1), StringValue("a")}, []bool{false, false}, nil)

	clone := table.CloneLayout()
	if clone.ChunkCount() != 0 {
		t.Fatalf("CloneLayout() chunk count = %d, want 0", clone.ChunkCount())
	}
	if clone.MaxChunkSize() != table.MaxChunkSize() {
		t.Fatalf("CloneLayout() max chunk size = %d, want %d", clone.MaxChunkSize(), table.MaxChunkSize())
	}
	if len(clone.Schema()) != len(table.Schema()) {
		t.Fatalf("CloneLayout() schema length mismatch")
	}
}

func TestChunkReplaceColumnRequiresMatchingRowCount(t *testing.T) {
	c := NewChunk(testSchema(), 0)
	c.AppendRow([]Value{Int64Value(1), StringValue("a")}, []bool{false, false}, nil)
	c.AppendRow([]Value{Int64Value(2), StringValue("b")}, []bool{false, false}, nil)

	shortCol := NewValueColumn[int64](false)
	shortCol.Append(1)

	err := c.ReplaceColumn(0, shortCol)
	if err == nil {
		t.Fatal("expected SchemaMismatch error replacing with wrong row count")
	}
	if !IsKind(err, KindSchemaMismatch) {
		t.Fatalf("expected KindSchemaMismatch, got %v", err)
	}
}

func TestChunkFreezesOnFirstReplace(t *testing.T) {
	c := NewChunk(testSchema(), 0)
	c.AppendRow([]Value{Int64Value(1), StringValue("a")}, []bool{false, false}, nil)

	if !c.Mutable() {
		t.Fatal("fresh chunk should be mutable")
	}

	replacement := NewValueColumn[int64](false)
	replacement.Append(1)
	if err := c.ReplaceColumn(0, replacement); err != nil {
		t.Fatal(err)
	}

	if c.Mutable() {
		t.Fatal("chunk should be frozen after first column replace")
	}

	err := c.AppendRow([]Value{Int64Value(2), StringValue("b")}, []bool{false, false}, nil)
	if err == nil || !IsKind(err, KindState) {
		t.Fatalf("expected State error appending to frozen chunk, got %v", err)
	}
}
