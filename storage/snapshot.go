package storage

import (
	"bytes"
	"encoding/binary"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"
)

// sized is implemented by every concrete column representation and used
// only for memory-footprint accounting; Column itself doesn't expose
// ByteSize because a caller that only cares about rows/type shouldn't need
// it.
type sized interface {
	ByteSize() int
}

// MemoryFootprint reports the estimated in-memory byte size of each column
// in the chunk, positionally aligned with the schema (spec.md §4.1).
func (c *Chunk) MemoryFootprint() []int {
	out := make([]int, len(c.columns))
	for i, col := range c.columns {
		if s, ok := col.(sized); ok {
			out[i] = s.ByteSize()
		}
	}
	return out
}

// Snapshot builds a compact, zstd-compressed in-memory export of a frozen
// chunk's physical layout (attribute vector widths and raw bytes, and
// dictionary sizes) for a monitoring collaborator — the same shape ByteDB's
// ZstdCompressor (backend/columnar/compression.go) applies to page
// payloads. It is not a serialization format: there is no corresponding
// Restore, and nothing here ever touches disk, keeping "no on-disk
// persistence" (spec.md §1) intact. Snapshot requires the chunk to be
// frozen — a mutable chunk's value columns aren't meaningfully describable
// by width/dictionary size yet.
func (c *Chunk) Snapshot() ([]byte, error) {
	const op = "Chunk.Snapshot"
	if !c.frozen {
		return nil, newError(op, KindState, "chunk is not frozen")
	}

	var buf bytes.Buffer
	binary.Write(&buf, byteOrder, uint32(len(c.columns)))
	for _, col := range c.columns {
		dc, ok := col.(interface {
			AttributeVector() *AttributeVector
			dictionarySize() int
		})
		if !ok {
			binary.Write(&buf, byteOrder, uint8(0))
			continue
		}
		av := dc.AttributeVector()
		binary.Write(&buf, byteOrder, uint8(av.Width()))
		binary.Write(&buf, byteOrder, uint32(dc.dictionarySize()))
		raw := av.RawBytes()
		binary.Write(&buf, byteOrder, uint32(len(raw)))
		buf.Write(raw)
	}

	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, newError(op, KindState, "build zstd encoder: %w", err)
	}
	defer enc.Close()
	return enc.EncodeAll(buf.Bytes(), nil), nil
}

// EncodeStatisticsSnapshot snappy-frames a chunk's statistics for handoff
// to an external optimizer collaborator, the same way ByteDB frames page
// payloads ahead of designating a CompressionType (backend/columnar/
// compression.go). This is a wire-shaped helper, not a stored format —
// there is no corresponding decode in this package because the core never
// reads statistics back from this encoding itself.
func EncodeStatisticsSnapshot(stats ChunkStatistics) []byte {
	var buf bytes.Buffer
	binary.Write(&buf, byteOrder, uint32(len(stats)))
	for _, s := range stats {
		if s == nil {
			buf.WriteByte(0)
			continue
		}
		buf.WriteByte(1)
		buf.WriteString(s.Min.String())
		buf.WriteByte(0)
		buf.WriteString(s.Max.String())
		buf.WriteByte(0)
	}
	return snappy.Encode(nil, buf.Bytes())
}
