// Package compression implements the dictionary-compression engine: it
// turns a chunk's mutable value columns into immutable dictionary columns
// plus per-column statistics, following spec.md §4.3 and grounded directly
// on the original implementation's dictionary_compression.cpp
// (_examples/original_source/src/lib/storage/dictionary_compression.cpp).
package compression

import (
	"sort"

	"chunkstore/storage"
)

// columnCompressor is the runtime-dispatchable capability the original's
// ColumnCompressorBase/ColumnCompressor<T> hierarchy is rendered as: one
// generic instantiation per Elem type, selected from a DataType tag by the
// dispatch table below (spec.md §9's "capability object... selected from a
// table keyed on DataType" alternative).
type columnCompressor interface {
	compress(col storage.Column) (storage.Column, *storage.ColumnStatistics, error)
}

type typedCompressor[T storage.Elem] struct{}

var dispatch = map[storage.DataType]columnCompressor{
	storage.DataTypeInt32:   typedCompressor[int32]{},
	storage.DataTypeInt64:   typedCompressor[int64]{},
	storage.DataTypeFloat32: typedCompressor[float32]{},
	storage.DataTypeFloat64: typedCompressor[float64]{},
	storage.DataTypeString:  typedCompressor[string]{},
}

func (typedCompressor[T]) compress(col storage.Column) (storage.Column, *storage.ColumnStatistics, error) {
	const op = "compression.CompressColumn"

	vc, ok := col.(*storage.ValueColumn[T])
	if !ok {
		return nil, nil, &storage.Error{Op: op, Kind: storage.KindState, Err: errAlreadyCompressed}
	}

	values := vc.Values()
	rowCount := len(values)

	// Step 1: materialize a scratch sequence equal to the value column's
	// values.
	scratch := append([]T(nil), values...)

	// Step 2: partition nulls to the tail, walking from the tail and
	// swapping null-row values outward, then truncate.
	liveCount := rowCount
	if vc.Nullable() && vc.NullCount() > 0 {
		eraseFrom := liveCount
		for i := liveCount - 1; i >= 0; i-- {
			if vc.IsNull(i) {
				eraseFrom--
				scratch[i], scratch[eraseFrom] = scratch[eraseFrom], scratch[i]
			}
		}
		liveCount = eraseFrom
	}
	dictionary := scratch[:liveCount]

	// Reject NaN columns before sorting (spec.md §4.3: "if NaNs appear,
	// the engine rejects the column with a Domain error").
	for _, v := range dictionary {
		if isNaNElem(v) {
			return nil, nil, &storage.Error{Op: op, Kind: storage.KindDomain, Err: errNaN}
		}
	}

	// Step 3: sort ascending using T's natural order (byte-lexicographic
	// for strings, which Go's < already does).
	sort.Slice(dictionary, func(i, j int) bool { return dictionary[i] < dictionary[j] })

	// Step 4: deduplicate adjacent equals in one pass.
	dictionary = dedup(dictionary)

	d := len(dictionary)

	// Step 5: allocate the attribute vector; max value id is d, the "+1"
	// accommodating NullValueID falls out of fittedWidth(d) directly
	// since real ids run 1..d.
	av := storage.NewAttributeVector(rowCount, storage.ValueId(d))

	// Step 6: fill the attribute vector.
	for i := 0; i < rowCount; i++ {
		if vc.Nullable() && vc.IsNull(i) {
			if err := av.Set(i, storage.NullValueID); err != nil {
				return nil, nil, &storage.Error{Op: op, Kind: storage.KindDomain, Err: err}
			}
			continue
		}
		value, _ := vc.Get(i)
		idx := lowerBound(dictionary, value)
		// The dictionary contains the value exactly: step 3/4 preserved
		// every distinct non-null value, so this search always lands on
		// an exact match.
		if err := av.Set(i, storage.ValueId(idx+1)); err != nil {
			return nil, nil, &storage.Error{Op: op, Kind: storage.KindDomain, Err: err}
		}
	}

	// Step 7 & 8: construct the dictionary column and its statistics.
	dictCol := storage.NewDictionaryColumn(dictionary, av)
	stats := storage.NewColumnStatistics(dictionary)

	return dictCol, stats, nil
}

// lowerBound returns the index of the first element of sorted not less than
// value, the same result as storage's unexported lowerBound behind
// DictionaryColumn.ValueIDFor. It is a separate implementation, declared
// here (rather than exported from storage) because it operates on the
// engine's own scratch slice mid-construction, before any DictionaryColumn
// exists to ask.
func lowerBound[T storage.Elem](sorted []T, value T) int {
	lo, hi := 0, len(sorted)
	for lo < hi {
		mid := (lo + hi) / 2
		if sorted[mid] < value {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// dedup removes adjacent equal elements from a sorted slice in place and
// shrinks the result to its exact length (the original's std::unique +
// shrink_to_fit).
func dedup[T storage.Elem](sorted []T) []T {
	if len(sorted) == 0 {
		return sorted
	}
	n := 1
	for i := 1; i < len(sorted); i++ {
		if sorted[i] != sorted[n-1] {
			sorted[n] = sorted[i]
			n++
		}
	}
	out := make([]T, n)
	copy(out, sorted[:n])
	return out
}

func isNaNElem[T storage.Elem](v T) bool {
	switch x := any(v).(type) {
	case float32:
		return x != x
	case float64:
		return x != x
	default:
		return false
	}
}
