package encoding

// Encoder turns raw bytes into their encosure-scheme text form.
type Encoder interface {
	Encode(in []byte) ([]byte, error)
}

// Decoder turns encosure-scheme text back into the raw bytes it stores.
type Decoder interface {
	Decode(in []byte) ([]byte, error)
}
