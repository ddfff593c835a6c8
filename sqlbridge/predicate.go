// Package sqlbridge is a minimal simulation of the external optimizer
// collaborator spec.md §1 places out of scope ("SQL parsing, logical plan
// construction, join ordering/optimization... those collaborators interact
// with the core only via the contracts in §6"). It reads one predicate
// shape — a range over a single column — and turns it into the
// excluded-chunk-id list the table-access operator's contract expects. It
// is not a query planner: a WHERE clause with no column reference or no
// numeric literal is reported back to the caller, while other shapes are
// not checked and are read as a range from their smallest to their largest
// literal (see ParseRangePredicate).
package sqlbridge

import (
	"encoding/json"
	"fmt"
	"math"

	pgquery "github.com/pganalyze/pg_query_go/v6"

	"chunkstore/storage"
)

// ErrUnsupportedPredicate is returned when the WHERE clause isn't a simple
// range predicate this bridge knows how to translate.
var ErrUnsupportedPredicate = fmt.Errorf("sqlbridge: predicate shape not supported")

// RangePredicate is the one shape this bridge understands: "column BETWEEN
// low AND high" (or the equivalent >=/<= conjunction).
type RangePredicate struct {
	Column string
	Low    float64
	High   float64
}

// ParseRangePredicate parses sql (expected to be a single SELECT with a
// WHERE clause) with pg_query_go — the same parser ByteDB's own
// core/parser.go is built around — and extracts a RangePredicate by
// walking the parser's JSON AST for a column reference and the numeric
// literals compared against it. It deliberately doesn't attempt to
// reconstruct the full expression tree (AND/OR structure, operator
// direction): it collects every numeric literal in the WHERE clause and
// treats the smallest and largest as the predicate's bounds, and the first
// column reference found as the target column. That is sufficient for the
// "col BETWEEN a AND b" and "col >= a AND col <= b" shapes this bridge
// exists to support, and it fails closed (ErrUnsupportedPredicate) rather
// than guess when no literal or no column reference is present.
func ParseRangePredicate(sql string) (RangePredicate, error) {
	tree, err := pgquery.ParseToJSON(sql)
	if err != nil {
		return RangePredicate{}, fmt.Errorf("sqlbridge: parse: %w", err)
	}

	var doc any
	if err := json.Unmarshal([]byte(tree), &doc); err != nil {
		return RangePredicate{}, fmt.Errorf("sqlbridge: decode parse tree: %w", err)
	}

	// Only the first statement's WHERE clause is searched; a statement
	// without one leaves where nil and yields ErrUnsupportedPredicate.
	var where any
	if m, ok := doc.(map[string]any); ok {
		if stmts, ok := m["stmts"].([]any); ok && len(stmts) > 0 {
			s, _ := stmts[0].(map[string]any)
			stmt, _ := s["stmt"].(map[string]any)
			sel, _ := stmt["SelectStmt"].(map[string]any)
			where = sel["whereClause"]
		}
	}

	var column string
	var literals []float64
	walkJSON(where, &column, &literals)

	if column == "" || len(literals) == 0 {
		return RangePredicate{}, ErrUnsupportedPredicate
	}

	lo, hi := literals[0], literals[0]
	for _, v := range literals[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return RangePredicate{Column: column, Low: lo, High: hi}, nil
}

// walkJSON recursively scans a decoded pg_query JSON parse tree, recording
// the first column name it finds in a ColumnRef node (the last "String"/
// "sval" entry of its fields; operator names such as an A_Expr's "BETWEEN"
// are not column references and are skipped) and every numeric literal it
// finds under an "ival" or "fval" key (the shape an A_Const's value takes).
func walkJSON(node any, column *string, literals *[]float64) {
	switch v := node.(type) {
	case map[string]any:
		if ref, ok := v["ColumnRef"].(map[string]any); ok && *column == "" {
			fields, _ := ref["fields"].([]any)
			for _, f := range fields {
				fm, _ := f.(map[string]any)
				str, _ := fm["String"].(map[string]any)
				if s, ok := str["sval"].(string); ok && s != "" {
					*column = s
				}
			}
		}
		if ival, ok := v["ival"]; ok {
			if f, ok := toFloat(ival); ok {
				*literals = append(*literals, f)
			}
		}
		if fval, ok := v["fval"]; ok {
			if f, ok := toFloat(fval); ok {
				*literals = append(*literals, f)
			}
		}
		for _, child := range v {
			walkJSON(child, column, literals)
		}
	case []any:
		for _, child := range v {
			walkJSON(child, column, literals)
		}
	}
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case string:
		var f float64
		if _, err := fmt.Sscanf(x, "%g", &f); err == nil {
			return f, true
		}
	}
	return 0, false
}

// ExcludedChunks evaluates pred against table's per-chunk statistics for
// columnIndex and returns the ids of chunks whose [min,max] range cannot
// overlap [pred.Low, pred.High] — the exact "predicate range disjoint from
// [min, max] marks the chunk as excluded" rule spec.md §4.6 assigns to an
// external optimizer. Chunks with no statistics (never compressed, or an
// empty/all-null column) are never excluded, since there's nothing to rule
// them out with.
func ExcludedChunks(table *storage.Table, columnIndex int, pred RangePredicate) []storage.ChunkId {
	var excluded []storage.ChunkId
	for id := 0; id < table.ChunkCount(); id++ {
		chunkID := storage.ChunkId(id)
		stats := table.Chunk(chunkID).Statistics()
		if stats == nil || columnIndex >= len(stats) || stats[columnIndex] == nil {
			continue
		}
		min, max := numericBounds(stats[columnIndex])
		if max < pred.Low || min > pred.High {
			excluded = append(excluded, chunkID)
		}
	}
	return excluded
}

func numericBounds(cs *storage.ColumnStatistics) (float64, float64) {
	switch cs.Min.Type() {
	case storage.DataTypeInt32:
		return float64(cs.Min.Int32()), float64(cs.Max.Int32())
	case storage.DataTypeInt64:
		return float64(cs.Min.Int64()), float64(cs.Max.Int64())
	case storage.DataTypeFloat32:
		return float64(cs.Min.Float32()), float64(cs.Max.Float32())
	case storage.DataTypeFloat64:
		return cs.Min.Float64(), cs.Max.Float64()
	default:
		// Non-numeric columns (strings) don't participate in range
		// pruning through this bridge; report a range that never
		// excludes.
		return math.Inf(-1), math.Inf(1)
	}
}
