package storage

import "encoding/binary"

// byteOrder is the wire/snapshot byte order, matching ByteDB's own
// columnar.ByteOrder (backend/columnar/types.go) rather than inventing a
// second convention.
var byteOrder = binary.LittleEndian
