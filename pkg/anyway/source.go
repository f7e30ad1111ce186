package anyway

import "bytes"

// Source is anything the encoder can read raw bytes from. Implementations
// return a read-only view; the encoder never mutates it. No validation is
// performed, any byte value is accepted.
type Source interface {
	Bytes() []byte
}

// String adapts a string to a Source.
type String string

func (s String) Bytes() []byte {
	return []byte(s)
}

// Raw adapts a byte slice to a Source without copying.
type Raw []byte

func (r Raw) Bytes() []byte {
	return r
}

// Buffer adapts a bytes.Buffer to a Source without copying its contents.
func Buffer(b *bytes.Buffer) Source {
	return Raw(b.Bytes())
}
