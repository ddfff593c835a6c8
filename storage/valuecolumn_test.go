package storage

import "testing"

func TestValueColumnAppendAndGet(t *testing.T) {
	vc := NewValueColumn[int64](true)
	vc.Append(5)
	vc.Append(1)
	vc.AppendNull()
	vc.Append(3)

	if got := vc.Size(); got != 4 {
		t.Fatalf("Size() = %d, want 4", got)
	}

	v, isNull := vc.Get(2)
	if !isNull {
		t.Fatalf("row 2 should be null")
	}
	if v != 0 {
		t.Fatalf("null row should carry the default value, got %d", v)
	}

	v, isNull = vc.Get(0)
	if isNull || v != 5 {
		t.Fatalf("row 0 = (%d, null=%v), want (5, false)", v, isNull)
	}

	if got := vc.NullCount(); got != 1 {
		t.Fatalf("NullCount() = %d, want 1", got)
	}
}

func TestValueColumnNonNullable(t *testing.T) {
	vc := NewValueColumn[string](false)
	vc.Append("a")
	vc.Append("b")

	if vc.IsNull(0) || vc.IsNull(1) {
		t.Fatal("non-nullable column should never report null rows")
	}
	if vc.NullCount() != 0 {
		t.Fatal("non-nullable column should report zero null count")
	}
}

func TestValueColumnByteSize(t *testing.T) {
	vc := NewValueColumn[int32](false)
	vc.Append(1)
	vc.Append(2)
	vc.Append(3)
	if got := vc.ByteSize(); got != 12 {
		t.Fatalf("ByteSize() = %d, want 12", got)
	}
}
