// Command chunkstore-demo exercises the columnar storage core end to end:
// build a table, optionally load it from a parquet file, compress it,
// register it in a catalog, and run the chunk-pruning table-access
// operator against a range predicate parsed out of a SQL string. It plays
// the role ByteDB's own main.go and backend/columnar/example/main.go play
// for their respective packages — a thin driver, not part of the core.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"chunkstore/catalog"
	"chunkstore/compression"
	"chunkstore/ingest"
	"chunkstore/operators"
	"chunkstore/sqlbridge"
	"chunkstore/storage"
)

func main() {
	var (
		parquetPath  = flag.String("parquet", "", "optional parquet file to load into the demo table")
		tableName    = flag.String("table", "measurements", "name to register the table under")
		maxChunkSize = flag.Int("max-chunk-size", 1000, "rows per chunk")
		whereSQL     = flag.String("where", "", "optional SELECT ... WHERE ... used to derive a chunk-pruning predicate")
	)
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to build logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	schema := []storage.ColumnDefinition{
		{Name: "id", Type: storage.DataTypeInt64, Nullable: false},
		{Name: "reading", Type: storage.DataTypeFloat64, Nullable: true},
		{Name: "station", Type: storage.DataTypeString, Nullable: false},
	}
	table := storage.NewTable(schema, *maxChunkSize, false)

	if *parquetPath != "" {
		n, err := ingest.LoadParquet(table, *parquetPath)
		if err != nil {
			logger.Fatal("load parquet", zap.Error(err))
		}
		logger.Info("loaded parquet rows", zap.Int("rows", n), zap.String("path", *parquetPath))
	} else {
		seedSyntheticData(table)
		logger.Info("seeded synthetic rows", zap.Int("chunks", table.ChunkCount()))
	}

	stats, err := compression.CompressTable(table)
	if err != nil {
		logger.Fatal("compress table", zap.Error(err))
	}
	logger.Info("compressed table", zap.Int("chunks", len(stats)))

	registry := catalog.NewRegistry()
	registry.Register(*tableName, table)
	id, _ := registry.Describe(*tableName)
	logger.Info("registered table", zap.String("name", *tableName), zap.String("id", id.String()))

	op := operators.NewGetTable(*tableName)
	if *whereSQL != "" {
		pred, err := sqlbridge.ParseRangePredicate(*whereSQL)
		if err != nil {
			logger.Warn("predicate not recognized, running unpruned", zap.Error(err))
		} else {
			excluded := sqlbridge.ExcludedChunks(table, 1, pred)
			op.SetExcludedChunks(excluded)
			logger.Info("derived chunk exclusion", zap.Int("excluded", len(excluded)), zap.String("column", pred.Column))
		}
	}

	result, err := op.Execute(registry)
	if err != nil {
		logger.Fatal("execute GetTable", zap.Error(err))
	}

	fmt.Println(op.Description())
	fmt.Printf("result table: %d chunks, %d rows total\n", result.ChunkCount(), totalRows(result))
}

func totalRows(table *storage.Table) int {
	total := 0
	for _, c := range table.Chunks() {
		total += c.RowCount()
	}
	return total
}

func seedSyntheticData(table *storage.Table) {
	stations := []string{"alpha", "bravo", "charlie", "delta"}
	for i := 0; i < 5*table.MaxChunkSize(); i++ {
		reading := float64(i%97) - 48.5
		nulls := []bool{false, i%23 == 0, false}
		values := []storage.Value{
			storage.Int64Value(int64(i)),
			storage.Float64Value(reading),
			storage.StringValue(stations[i%len(stations)]),
		}
		if err := table.AppendRow(values, nulls, nil); err != nil {
			panic(err)
		}
	}
}
