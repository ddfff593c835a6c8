package sqlbridge

import (
	"testing"

	"chunkstore/storage"
)

func TestParseRangePredicateBetween(t *testing.T) {
	pred, err := ParseRangePredicate("SELECT * FROM measurements WHERE reading BETWEEN 10 AND 20")
	if err != nil {
		t.Fatalf("ParseRangePredicate: %v", err)
	}
	if pred.Column != "reading" {
		t.Fatalf("Column = %q, want %q", pred.Column, "reading")
	}
	if pred.Low != 10 || pred.High != 20 {
		t.Fatalf("range = (%g, %g), want (10, 20)", pred.Low, pred.High)
	}
}

func TestParseRangePredicateConjunction(t *testing.T) {
	pred, err := ParseRangePredicate("SELECT * FROM measurements WHERE reading >= 5 AND reading <= 9")
	if err != nil {
		t.Fatalf("ParseRangePredicate: %v", err)
	}
	if pred.Low != 5 || pred.High != 9 {
		t.Fatalf("range = (%g, %g), want (5, 9)", pred.Low, pred.High)
	}
}

func TestParseRangePredicateUnsupportedShape(t *testing.T) {
	_, err := ParseRangePredicate("SELECT * FROM measurements")
	if err != ErrUnsupportedPredicate {
		t.Fatalf("err = %v, want ErrUnsupportedPredicate", err)
	}
}

func buildStatsTable(t *testing.T) *storage.Table {
	schema := []storage.ColumnDefinition{
		{Name: "reading", Type: storage.DataTypeFloat64, Nullable: false},
	}
	table := storage.NewTable(schema, 2, false)
	values := [][]float64{{0, 1}, {10, 11}, {20, 21}, {100, 101}}
	for _, chunkValues := range values {
		for _, v := range chunkValues {
			if err := table.AppendRow([]storage.Value{storage.Float64Value(v)}, []bool{false}, nil); err != nil {
				t.Fatal(err)
			}
		}
	}

	for id := 0; id < table.ChunkCount(); id++ {
		chunk := table.Chunk(storage.ChunkId(id))
		vc := chunk.Column(0).(*storage.ValueColumn[float64])
		vals := vc.Values()
		min, max := vals[0], vals[0]
		for _, v := range vals {
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
		chunk.SetStatistics(storage.ChunkStatistics{
			{Min: storage.Float64Value(min), Max: storage.Float64Value(max)},
		})
	}
	return table
}

func TestExcludedChunksPrunesDisjointRanges(t *testing.T) {
	table := buildStatsTable(t)

	// chunk 0: [0,1], chunk 1: [10,11], chunk 2: [20,21], chunk 3: [100,101]
	pred := RangePredicate{Column: "reading", Low: 9, High: 22}
	excluded := ExcludedChunks(table, 0, pred)

	want := map[storage.ChunkId]bool{0: true, 3: true}
	if len(excluded) != len(want) {
		t.Fatalf("excluded = %v, want chunks 0 and 3", excluded)
	}
	for _, id := range excluded {
		if !want[id] {
			t.Fatalf("unexpected excluded chunk %d", id)
		}
	}
}

func TestExcludedChunksKeepsChunksWithoutStatistics(t *testing.T) {
	schema := []storage.ColumnDefinition{
		{Name: "reading", Type: storage.DataTypeFloat64, Nullable: false},
	}
	table := storage.NewTable(schema, 10, false)
	table.AppendRow([]storage.Value{storage.Float64Value(1)}, []bool{false}, nil)

	pred := RangePredicate{Column: "reading", Low: 1000, High: 2000}
	excluded := ExcludedChunks(table, 0, pred)
	if len(excluded) != 0 {
		t.Fatalf("expected no exclusions for an uncompressed chunk, got %v", excluded)
	}
}
