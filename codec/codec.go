// This package contains the main [Codec] interface and several implementations inside subpackages.
package codec

import "iter"

// Codec encodes and decodes vector items.
//
// Implementations are not considered thread-safe.
type Codec[Item any] interface {
	// Encode serializes a sequence of items into a byte slice.
	Encode(batch iter.Seq[Item]) ([]byte, error)
	// Decode deserializes a byte slice into items, pushing each to the provided function. Decoding
	// stops at the first error returned by push.
	Decode(data []byte, push func(Item) error) error
}
