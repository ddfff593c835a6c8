package storage

// newValueColumn constructs a fresh, empty ValueColumn of the concrete Go
// type matching dt, returned through the Column interface. This is the
// "type registry" half of the type-dispatch component spec.md §9
// describes: a DataType tag selects one of five closed generic
// instantiations instead of a class hierarchy.
func newValueColumn(dt DataType, nullable bool) Column {
	switch dt {
	case DataTypeInt32:
		return NewValueColumn[int32](nullable)
	case DataTypeInt64:
		return NewValueColumn[int64](nullable)
	case DataTypeFloat32:
		return NewValueColumn[float32](nullable)
	case DataTypeFloat64:
		return NewValueColumn[float64](nullable)
	case DataTypeString:
		return NewValueColumn[string](nullable)
	default:
		assert(false, "newValueColumn: unknown data type %v", dt)
		return nil
	}
}

// appendToColumn appends one (value, isNull) pair to col, dispatching on
// col's concrete generic instantiation. It returns a State error if col has
// already been compressed into a DictionaryColumn — appends are only legal
// against a mutable value column.
func appendToColumn(col Column, v Value, isNull bool) error {
	const op = "Chunk.AppendRow"
	switch c := col.(type) {
	case *ValueColumn[int32]:
		if isNull {
			c.AppendNull()
		} else {
			c.Append(v.Int32())
		}
	case *ValueColumn[int64]:
		if isNull {
			c.AppendNull()
		} else {
			c.Append(v.Int64())
		}
	case *ValueColumn[float32]:
		if isNull {
			c.AppendNull()
		} else {
			c.Append(v.Float32())
		}
	case *ValueColumn[float64]:
		if isNull {
			c.AppendNull()
		} else {
			c.Append(v.Float64())
		}
	case *ValueColumn[string]:
		if isNull {
			c.AppendNull()
		} else {
			c.Append(v.Str())
		}
	default:
		return newError(op, KindState, "column is frozen (already compressed)")
	}
	return nil
}
