package storage

// attributeVectorWidth is the physical byte width used to store one
// ValueId inside an AttributeVector.
type attributeVectorWidth uint8

const (
	width1 attributeVectorWidth = 1
	width2 attributeVectorWidth = 2
	width4 attributeVectorWidth = 4
)

// fittedWidth picks the narrowest of 1/2/4 bytes that can hold every value
// in [0, maxValueID], matching ByteDB's DictionaryEncoder index-size choice
// (backend/columnar/compression.go) generalized from its two-tier uint8/
// uint16/uint32 cutoffs.
func fittedWidth(maxValueID ValueId) attributeVectorWidth {
	switch {
	case maxValueID <= 255:
		return width1
	case maxValueID <= 65535:
		return width2
	default:
		return width4
	}
}

// AttributeVector is a fixed-length sequence of ValueIds stored in the
// narrowest of 1/2/4-byte unsigned representations. It is the physical
// backing of a DictionaryColumn.
type AttributeVector struct {
	width attributeVectorWidth
	size  int
	buf1  []uint8
	buf2  []uint16
	buf4  []uint32
}

// NewAttributeVector allocates a zero-initialized vector of the given
// capacity, wide enough to represent every value in [0, maxValueID].
func NewAttributeVector(capacity int, maxValueID ValueId) *AttributeVector {
	assert(capacity >= 0, "NewAttributeVector: negative capacity %d", capacity)
	av := &AttributeVector{width: fittedWidth(maxValueID), size: capacity}
	switch av.width {
	case width1:
		av.buf1 = make([]uint8, capacity)
	case width2:
		av.buf2 = make([]uint16, capacity)
	default:
		av.buf4 = make([]uint32, capacity)
	}
	return av
}

// Width returns the chosen byte width (1, 2, or 4). Observable, per spec,
// for memory-footprint reporting.
func (av *AttributeVector) Width() int { return int(av.width) }

// Size returns the number of positions in the vector.
func (av *AttributeVector) Size() int { return av.size }

// Get returns the ValueId stored at position i.
func (av *AttributeVector) Get(i int) ValueId {
	assert(i >= 0 && i < av.size, "AttributeVector.Get: index %d out of range [0,%d)", i, av.size)
	switch av.width {
	case width1:
		return ValueId(av.buf1[i])
	case width2:
		return ValueId(av.buf2[i])
	default:
		return ValueId(av.buf4[i])
	}
}

// Set stores v at position i. It is only legal before the owning column is
// frozen. Returns a Domain error if v does not fit in the vector's width.
func (av *AttributeVector) Set(i int, v ValueId) error {
	const op = "AttributeVector.Set"
	assert(i >= 0 && i < av.size, "%s: index %d out of range [0,%d)", op, i, av.size)

	var limit ValueId
	switch av.width {
	case width1:
		limit = 255
	case width2:
		limit = 65535
	default:
		limit = 0xFFFFFFFF
	}
	if v > limit {
		return newError(op, KindDomain, "value id %d does not fit in %d-byte width", v, av.width)
	}

	switch av.width {
	case width1:
		av.buf1[i] = uint8(v)
	case width2:
		av.buf2[i] = uint16(v)
	default:
		av.buf4[i] = uint32(v)
	}
	return nil
}

// ByteSize returns the number of bytes the physical buffer occupies, used
// by Chunk.MemoryFootprint.
func (av *AttributeVector) ByteSize() int {
	return av.size * int(av.width)
}

// RawBytes returns the attribute vector's physical backing as a flat byte
// slice in little-endian layout, used by Chunk.Snapshot to build a
// compact in-memory export of a frozen chunk.
func (av *AttributeVector) RawBytes() []byte {
	switch av.width {
	case width1:
		return av.buf1
	case width2:
		out := make([]byte, len(av.buf2)*2)
		for i, v := range av.buf2 {
			byteOrder.PutUint16(out[i*2:], v)
		}
		return out
	default:
		out := make([]byte, len(av.buf4)*4)
		for i, v := range av.buf4 {
			byteOrder.PutUint32(out[i*4:], v)
		}
		return out
	}
}
