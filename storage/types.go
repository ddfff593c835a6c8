// Package storage implements the columnar storage core: the chunked table
// layout, value and dictionary columns, width-fitted attribute vectors, and
// per-chunk statistics that a compression engine and a query pipeline build
// on top of.
package storage

// DataType is the closed set of scalar element kinds a column can carry.
type DataType uint8

const (
	DataTypeInt32 DataType = iota
	DataTypeInt64
	DataTypeFloat32
	DataTypeFloat64
	DataTypeString
)

// String returns the canonical name of the data type, mostly for error
// messages and debug output.
func (dt DataType) String() string {
	switch dt {
	case DataTypeInt32:
		return "int32"
	case DataTypeInt64:
		return "int64"
	case DataTypeFloat32:
		return "float32"
	case DataTypeFloat64:
		return "float64"
	case DataTypeString:
		return "string"
	default:
		return "unknown"
	}
}

// ColumnId identifies a column's position within a table's schema.
type ColumnId uint32

// ChunkId identifies a chunk's position within a table.
type ChunkId uint32

// ValueId identifies a dictionary entry inside a dictionary column's
// attribute vector. NullValueID is reserved and never assigned to a real
// dictionary entry.
type ValueId uint32

// NullValueID is the reserved ValueId denoting a null row. Real dictionary
// entries are numbered starting from 1.
const NullValueID ValueId = 0

// ColumnDefinition is one entry of a table's schema.
type ColumnDefinition struct {
	Name     string
	Type     DataType
	Nullable bool
}
