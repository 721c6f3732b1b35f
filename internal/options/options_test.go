package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	threads int
	label   string
}

var errNegative = errors.New("threads cannot be negative")

func withThreads(n int) Option[*testConfig] {
	return Named("threads", func(c *testConfig) error {
		if n < 0 {
			return errNegative
		}
		c.threads = n

		return nil
	})
}

func withLabel(label string) Option[*testConfig] {
	return NoError(func(c *testConfig) {
		c.label = label
	})
}

func TestApply(t *testing.T) {
	t.Run("applies in order", func(t *testing.T) {
		cfg := &testConfig{}
		err := Apply(cfg, withThreads(4), withLabel("a"), withThreads(8))
		require.NoError(t, err)
		require.Equal(t, 8, cfg.threads)
		require.Equal(t, "a", cfg.label)
	})

	t.Run("stops at first error and prefixes name", func(t *testing.T) {
		cfg := &testConfig{}
		err := Apply(cfg, withThreads(-1), withLabel("never"))
		require.ErrorIs(t, err, errNegative)
		require.Contains(t, err.Error(), "threads:")
		require.Empty(t, cfg.label)
	})

	t.Run("unnamed errors are returned as is", func(t *testing.T) {
		cfg := &testConfig{}
		opt := New(func(*testConfig) error { return errNegative })
		err := Apply[*testConfig](cfg, opt)
		require.Equal(t, errNegative, err)
	})

	t.Run("nil options are skipped", func(t *testing.T) {
		cfg := &testConfig{}
		require.NoError(t, Apply(cfg, nil, withLabel("x")))
		require.Equal(t, "x", cfg.label)
	})

	t.Run("no options", func(t *testing.T) {
		require.NoError(t, Apply[*testConfig](&testConfig{}))
	})
}
