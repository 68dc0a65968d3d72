package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	dimension int
	name      string
	calls     []string
}

func (c *testConfig) setDimension(d int) error {
	if d < 2 {
		return errors.New("dimension must be at least 2")
	}
	c.dimension = d
	c.calls = append(c.calls, "dimension")

	return nil
}

func TestNew(t *testing.T) {
	t.Run("applies value", func(t *testing.T) {
		cfg := &testConfig{}
		opt := New(func(c *testConfig) error { return c.setDimension(3) })

		require.NoError(t, opt.apply(cfg))
		require.Equal(t, 3, cfg.dimension)
	})

	t.Run("propagates error", func(t *testing.T) {
		cfg := &testConfig{}
		opt := New(func(c *testConfig) error { return c.setDimension(1) })

		err := opt.apply(cfg)
		require.Error(t, err)
		require.Contains(t, err.Error(), "at least 2")
		require.Zero(t, cfg.dimension)
	})
}

func TestNoError(t *testing.T) {
	cfg := &testConfig{}
	opt := NoError(func(c *testConfig) { c.name = "ring" })

	require.NoError(t, opt.apply(cfg))
	require.Equal(t, "ring", cfg.name)
}

func TestApply(t *testing.T) {
	t.Run("applies in order", func(t *testing.T) {
		cfg := &testConfig{}
		err := Apply(cfg,
			New(func(c *testConfig) error { return c.setDimension(2) }),
			NoError(func(c *testConfig) { c.calls = append(c.calls, "name") }),
			New(func(c *testConfig) error { return c.setDimension(4) }),
		)

		require.NoError(t, err)
		require.Equal(t, 4, cfg.dimension)
		require.Equal(t, []string{"dimension", "name", "dimension"}, cfg.calls)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &testConfig{}
		err := Apply(cfg,
			New(func(c *testConfig) error { return c.setDimension(0) }),
			NoError(func(c *testConfig) { c.name = "unreachable" }),
		)

		require.Error(t, err)
		require.Empty(t, cfg.name)
	})

	t.Run("no options", func(t *testing.T) {
		cfg := &testConfig{}
		require.NoError(t, Apply(cfg))
	})

	t.Run("nil option skipped", func(t *testing.T) {
		cfg := &testConfig{}
		var opt Option[*testConfig]
		require.NoError(t, Apply(cfg, opt, NoError(func(c *testConfig) { c.name = "ok" })))
		require.Equal(t, "ok", cfg.name)
	})
}
