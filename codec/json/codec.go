package json

import (
	"bytes"
	"encoding/json"
	"iter"
	"slices"

	"github.com/teenjuna/vec/codec"
)

// Codec stores items as a single JSON array.
type Codec[Item any] struct {
	buf *bytes.Buffer
}

var _ codec.Codec[any] = (*Codec[any])(nil)

func New[Item any]() *Codec[Item] {
	return &Codec[Item]{
		buf: new(bytes.Buffer),
	}
}

func (c *Codec[Item]) Encode(batch iter.Seq[Item]) ([]byte, error) {
	items := slices.Collect(batch)
	if items == nil {
		items = make([]Item, 0)
	}

	c.buf.Reset()
	enc := json.NewEncoder(c.buf)

	if err := enc.Encode(items); err != nil {
		return nil, err
	}

	res := c.buf.Bytes()
	out := make([]byte, len(res))
	copy(out, res)

	return out, nil
}

func (c *Codec[Item]) Decode(data []byte, push func(Item) error) error {
	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}

	for _, item := range items {
		if err := push(item); err != nil {
			return err
		}
	}

	return nil
}
