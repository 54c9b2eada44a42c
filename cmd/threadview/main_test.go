package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	bt "github.com/fwojciec/threadview/bubbletea"
	"github.com/fwojciec/threadview/demo"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOptions(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		opts, err := parseOptions(nil, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, demo.DefaultConversations, opts.conversations)
		assert.Equal(t, demo.DefaultMessages, opts.messages)
		assert.Equal(t, bt.DefaultConfig(), opts.config)
		assert.Empty(t, opts.logOutput)
	})

	t.Run("flags override defaults", func(t *testing.T) {
		t.Parallel()
		opts, err := parseOptions([]string{
			"--conversations", "10",
			"--messages=2",
			"--no-animation",
			"--animation-step", "50ms",
			"--scroll-delay", "0",
			"--log-output", "/tmp/x.log",
		}, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, 10, opts.conversations)
		assert.Equal(t, 2, opts.messages)
		assert.False(t, opts.config.Animate)
		assert.Equal(t, 50*time.Millisecond, opts.config.AnimationStep)
		assert.Zero(t, opts.config.ScrollDelay)
		assert.Equal(t, "/tmp/x.log", opts.logOutput)
	})

	t.Run("rejects invalid values", func(t *testing.T) {
		t.Parallel()
		for _, args := range [][]string{
			{"--conversations", "-1"},
			{"--messages", "-2"},
			{"--animation-step", "-1s"},
			{"--scroll-delay", "-1s"},
			{"--conversations", "many"},
			{"--unknown"},
			{"extra"},
		} {
			_, err := parseOptions(args, &bytes.Buffer{})
			assert.Error(t, err, "args %v", args)
		}
	})

	t.Run("help", func(t *testing.T) {
		t.Parallel()
		var out bytes.Buffer
		_, err := parseOptions([]string{"--help"}, &out)
		assert.ErrorIs(t, err, pflag.ErrHelp)
		assert.Contains(t, out.String(), "--conversations")
	})
}

func TestOpenLogger(t *testing.T) {
	t.Parallel()

	t.Run("empty path discards", func(t *testing.T) {
		t.Parallel()
		logger, closeLog, err := openLogger("")
		require.NoError(t, err)
		defer closeLog()
		logger.Info("dropped")
	})

	t.Run("writes JSON records", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "threadview.log")
		logger, closeLog, err := openLogger(path)
		require.NoError(t, err)
		logger.Debug("toggled conversation", "title", "Conversation 1")
		closeLog()

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		var record map[string]any
		require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &record))
		assert.Equal(t, "toggled conversation", record["msg"])
		assert.Equal(t, "Conversation 1", record["title"])
	})

	t.Run("unwritable path fails", func(t *testing.T) {
		t.Parallel()
		_, _, err := openLogger(filepath.Join(t.TempDir(), "missing", "x.log"))
		assert.Error(t, err)
	})
}
