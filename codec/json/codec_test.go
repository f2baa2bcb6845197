package json_test

import (
	"errors"
	"math/rand/v2"
	"slices"
	"strconv"
	"testing"

	"github.com/teenjuna/vec"
	"github.com/teenjuna/vec/codec/json"
	"github.com/teenjuna/vec/internal/testing/require"
)

func TestCodec(t *testing.T) {
	type Item struct {
		ID string
		N1 int
		N2 float64
	}

	vector, err := vec.New[Item]()
	require.Nil(t, err)
	codec := json.New[Item]()

	var items []Item
	for i := range 1000 {
		item := Item{
			ID: strconv.Itoa(i),
			N1: rand.IntN(1000),
			N2: float64(rand.IntN(1000)) / 4,
		}
		items = append(items, item)
		require.Nil(t, vector.Push(item))
	}

	data, err := vector.Encode(codec)
	require.Nil(t, err)
	require.NotEqual(t, len(data), 0)

	require.Nil(t, vector.Reset())

	require.Nil(t, vector.Decode(codec, data))
	require.Equal(t, slices.Collect(vector.Iter()), items)
}

func TestCodecEmpty(t *testing.T) {
	codec := json.New[string]()

	data, err := codec.Encode(slices.Values([]string(nil)))
	require.Nil(t, err)
	require.Equal(t, string(data), "[]\n")

	var items []string
	err = codec.Decode(data, func(item string) error {
		items = append(items, item)
		return nil
	})
	require.Nil(t, err)
	require.Equal(t, len(items), 0)
}

func TestCodecPushError(t *testing.T) {
	codec := json.New[string]()
	data, err := codec.Encode(slices.Values([]string{"a", "b", "c"}))
	require.Nil(t, err)

	var (
		stop  = errors.New("stop")
		items []string
	)
	err = codec.Decode(data, func(item string) error {
		if len(items) == 2 {
			return stop
		}
		items = append(items, item)
		return nil
	})
	require.ErrorIs(t, err, stop)
	require.Equal(t, items, []string{"a", "b"})
}

func TestDecodeInvalid(t *testing.T) {
	vector, err := vec.New[string]()
	require.Nil(t, err)
	require.Nil(t, vector.Push("kept"))

	require.NotNil(t, vector.Decode(json.New[string](), []byte(`["a", 1]`)))
	require.Equal(t, slices.Collect(vector.Iter()), []string{"kept"})
}
