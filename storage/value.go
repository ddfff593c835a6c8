package storage

import "fmt"

// Elem is the closed set of scalar element types a column may hold. This is
// the Go rendering of the original's AllTypeVariant tagged union: rather
// than a class hierarchy, callers instantiate generic types over one of
// these five concrete types, and runtime dispatch from a DataType tag picks
// the right instantiation (see compression.typedCompressor).
type Elem interface {
	int32 | int64 | float32 | float64 | string
}

// Value is a runtime-tagged variant capable of holding any supported
// element type. It exists for the handful of call sites that only learn the
// element type from a DataType tag at runtime — column statistics exposed
// to an external optimizer, and schema descriptions — everything on the hot
// compression path stays fully generic over Elem instead.
type Value struct {
	typ DataType
	i32 int32
	i64 int64
	f32 float32
	f64 float64
	str string
}

// Type reports which field of the variant is populated.
func (v Value) Type() DataType { return v.typ }

// Int32Value, Int64Value, Float32Value, Float64Value, and StringValue
// construct a Value of the corresponding tag, for callers (like package
// ingest) that only learn the element type at runtime from a DataType.
func Int32Value(v int32) Value     { return Value{typ: DataTypeInt32, i32: v} }
func Int64Value(v int64) Value     { return Value{typ: DataTypeInt64, i64: v} }
func Float32Value(v float32) Value { return Value{typ: DataTypeFloat32, f32: v} }
func Float64Value(v float64) Value { return Value{typ: DataTypeFloat64, f64: v} }
func StringValue(v string) Value   { return Value{typ: DataTypeString, str: v} }

func (v Value) Int32() int32     { return v.i32 }
func (v Value) Int64() int64     { return v.i64 }
func (v Value) Float32() float32 { return v.f32 }
func (v Value) Float64() float64 { return v.f64 }
func (v Value) Str() string      { return v.str }

// String renders the held value for logging/debugging.
func (v Value) String() string {
	switch v.typ {
	case DataTypeInt32:
		return fmt.Sprintf("%d", v.i32)
	case DataTypeInt64:
		return fmt.Sprintf("%d", v.i64)
	case DataTypeFloat32:
		return fmt.Sprintf("%g", v.f32)
	case DataTypeFloat64:
		return fmt.Sprintf("%g", v.f64)
	case DataTypeString:
		return v.str
	default:
		return "<invalid value>"
	}
}

// valueFrom lifts a concrete Elem into the runtime Value variant.
func valueFrom[T Elem](v T) Value {
	switch x := any(v).(type) {
	case int32:
		return Value{typ: DataTypeInt32, i32: x}
	case int64:
		return Value{typ: DataTypeInt64, i64: x}
	case float32:
		return Value{typ: DataTypeFloat32, f32: x}
	case float64:
		return Value{typ: DataTypeFloat64, f64: x}
	case string:
		return Value{typ: DataTypeString, str: x}
	default:
		panic("storage: unreachable element type")
	}
}

// dataTypeOf returns the DataType tag corresponding to Elem type T.
func dataTypeOf[T Elem]() DataType {
	var zero T
	return valueFrom(zero).Type()
}

// elemByteSize estimates the in-memory footprint of a single element,
// used by ValueColumn/DictionaryColumn ByteSize for memory-footprint
// reporting. Strings are charged their byte length plus a fixed header
// estimate; fixed-width numeric types are charged their exact size.
func elemByteSize[T Elem](v T) int {
	switch x := any(v).(type) {
	case int32:
		return 4
	case int64:
		return 8
	case float32:
		return 4
	case float64:
		return 8
	case string:
		return len(x) + 16
	default:
		return 0
	}
}
