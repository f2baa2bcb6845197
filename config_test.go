package vec_test

import (
	"testing"

	"github.com/teenjuna/vec"
	"github.com/teenjuna/vec/internal/testing/require"
)

func TestConfigValidation(t *testing.T) {
	c := &vec.Config{}

	require.PanicWithError(t, "capacity can't be < 0", func() {
		c.Capacity(-1)
	})

	require.PanicWithError(t, "allocator can't be nil", func() {
		c.Allocator(nil)
	})

	require.PanicWithError(t, "logger can't be nil", func() {
		c.Logger(nil)
	})

	require.PanicWithError(t, "prometheus can't be nil", func() {
		c.Prometheus(nil)
	})
}
