package msgp

import (
	"iter"

	"github.com/teenjuna/vec/codec"
	"github.com/tinylib/msgp/msgp"
)

// Codec stores items as concatenated MessagePack objects. Items must have msgp-generated
// marshaling methods on their pointer type.
type Codec[Item any, ItemPtr msgpable[Item]] struct {
	buf []byte
}

var _ codec.Codec[msgp.Raw] = (*Codec[msgp.Raw, *msgp.Raw])(nil)

func New[Item any, ItemPtr msgpable[Item]]() *Codec[Item, ItemPtr] {
	return &Codec[Item, ItemPtr]{
		buf: make([]byte, 0),
	}
}

func (c *Codec[Item, ItemPtr]) Encode(batch iter.Seq[Item]) ([]byte, error) {
	c.buf = c.buf[:0]
	for item := range batch {
		b, err := ItemPtr(&item).MarshalMsg(c.buf)
		if err != nil {
			return nil, err
		}
		c.buf = b
	}

	out := make([]byte, len(c.buf))
	copy(out, c.buf)

	return out, nil
}

func (c *Codec[Item, ItemPtr]) Decode(data []byte, push func(Item) error) error {
	for len(data) != 0 {
		var item Item
		d, err := ItemPtr(&item).UnmarshalMsg(data)
		if err != nil {
			return err
		}
		data = d
		if err := push(item); err != nil {
			return err
		}
	}

	return nil
}

type msgpable[Item any] interface {
	*Item
	msgp.Marshaler
	msgp.Unmarshaler
}
