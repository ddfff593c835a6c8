// Package ingest loads external data into storage.Table instances. It is
// an input-loading utility, not a persistence layer for the compressed
// core representation — spec.md's "no on-disk persistence" non-goal is
// about the core's own encoded state, not about how a table is first
// populated.
package ingest

import (
	"fmt"
	"io"
	"os"

	"github.com/parquet-go/parquet-go"

	"chunkstore/storage"
)

// LoadParquet reads every row of the parquet file at path and appends it to
// table, in file order, using table's schema to pick which parquet field
// maps to which column by name and to coerce each field's generic value
// into the column's element type. It is grounded on ByteDB's own
// core/parquet_reader.go, which reads rows into a generic map via
// parquet.NewReader(file).Read(&rowData) rather than a generated struct.
func LoadParquet(table *storage.Table, path string) (int, error) {
	const op = "ingest.LoadParquet"

	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("%s: open %s: %w", op, path, err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return 0, fmt.Errorf("%s: stat %s: %w", op, path, err)
	}

	pf, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		return 0, fmt.Errorf("%s: open parquet file %s: %w", op, path, err)
	}

	reader := parquet.NewReader(pf)
	defer reader.Close()

	schema := table.Schema()
	values := make([]storage.Value, len(schema))
	nulls := make([]bool, len(schema))

	n := 0
	for {
		row := make(map[string]any)
		if err := reader.Read(&row); err != nil {
			if err == io.EOF {
				break
			}
			return n, &storage.Error{Op: op, Kind: storage.KindDomain, Err: fmt.Errorf("decode row %d: %w", n, err)}
		}

		for i, def := range schema {
			raw, present := row[def.Name]
			if !present || raw == nil {
				if !def.Nullable {
					return n, &storage.Error{Op: op, Kind: storage.KindSchemaMismatch, Err: fmt.Errorf("column %q is not nullable but row %d has no value", def.Name, n)}
				}
				nulls[i] = true
				continue
			}
			v, err := coerce(def.Type, raw)
			if err != nil {
				return n, &storage.Error{Op: op, Kind: storage.KindDomain, Err: fmt.Errorf("column %q row %d: %w", def.Name, n, err)}
			}
			values[i] = v
			nulls[i] = false
		}

		if err := table.AppendRow(values, nulls, nil); err != nil {
			return n, err
		}
		n++
	}

	return n, nil
}

func coerce(dt storage.DataType, raw any) (storage.Value, error) {
	switch dt {
	case storage.DataTypeInt32:
		switch x := raw.(type) {
		case int32:
			return storage.Int32Value(x), nil
		case int64:
			return storage.Int32Value(int32(x)), nil
		case int:
			return storage.Int32Value(int32(x)), nil
		}
	case storage.DataTypeInt64:
		switch x := raw.(type) {
		case int64:
			return storage.Int64Value(x), nil
		case int32:
			return storage.Int64Value(int64(x)), nil
		case int:
			return storage.Int64Value(int64(x)), nil
		}
	case storage.DataTypeFloat32:
		switch x := raw.(type) {
		case float32:
			return storage.Float32Value(x), nil
		case float64:
			return storage.Float32Value(float32(x)), nil
		}
	case storage.DataTypeFloat64:
		switch x := raw.(type) {
		case float64:
			return storage.Float64Value(x), nil
		case float32:
			return storage.Float64Value(float64(x)), nil
		}
	case storage.DataTypeString:
		if x, ok := raw.(string); ok {
			return storage.StringValue(x), nil
		}
	}
	return storage.Value{}, fmt.Errorf("cannot coerce %T to %s", raw, dt)
}
