package anyway

import "github.com/TadaHrd/encosure/pkg/encoding"

var (
	_ = encoding.Encoder(Codec{})
	_ = encoding.Decoder(Codec{})
)

// Codec bundles a scheme variant and separator into the Encoder/Decoder
// shape the CLI dispatches on. The zero value is plain AES with the default
// separator.
type Codec struct {
	Escaped   bool
	Separator string
}

// Encode implements encoding.Encoder. It never returns an error; the
// encosure schemes are total over all inputs.
func (c Codec) Encode(in []byte) ([]byte, error) {
	return []byte(EncodeEscape(Raw(in), c.Separator, c.Escaped)), nil
}

// Decode implements encoding.Decoder. Both variants decode with the same
// tolerant scan, so Escaped is irrelevant here.
func (c Codec) Decode(in []byte) ([]byte, error) {
	return Decode(string(in)), nil
}
