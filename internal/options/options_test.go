package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	value   int
	name    string
	enabled bool
}

func (tc *testConfig) setValue(v int) error {
	if v < 0 {
		return errors.New("value cannot be negative")
	}
	tc.value = v

	return nil
}

func TestOption_New(t *testing.T) {
	t.Run("applies option function", func(t *testing.T) {
		cfg := &testConfig{}
		opt := New(func(c *testConfig) error {
			return c.setValue(42)
		})

		require.NoError(t, opt.apply(cfg))
		require.Equal(t, 42, cfg.value)
	})

	t.Run("propagates errors from option function", func(t *testing.T) {
		cfg := &testConfig{}
		opt := New(func(c *testConfig) error {
			return c.setValue(-1)
		})

		err := opt.apply(cfg)
		require.Error(t, err)
		require.Contains(t, err.Error(), "value cannot be negative")
	})
}

func TestOption_NoError(t *testing.T) {
	cfg := &testConfig{}
	opt := NoError(func(c *testConfig) {
		c.name = "page"
		c.enabled = true
	})

	require.NoError(t, opt.apply(cfg))
	require.Equal(t, "page", cfg.name)
	require.True(t, cfg.enabled)
}

func TestOption_Apply(t *testing.T) {
	t.Run("applies all options in order", func(t *testing.T) {
		cfg := &testConfig{}
		err := Apply(cfg,
			NoError(func(c *testConfig) { c.value = 1 }),
			NoError(func(c *testConfig) { c.value = 2 }),
		)
		require.NoError(t, err)
		require.Equal(t, 2, cfg.value)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &testConfig{}
		err := Apply(cfg,
			New(func(c *testConfig) error { return c.setValue(-1) }),
			NoError(func(c *testConfig) { c.enabled = true }),
		)
		require.Error(t, err)
		require.False(t, cfg.enabled)
	})
}
