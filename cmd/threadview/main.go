// Command threadview is a terminal demo of an expandable conversation list.
//
// Usage:
//
//	threadview [flags]
//
// Flags:
//
//	--conversations int       Number of generated conversations (default 1000)
//	--messages int            Messages per conversation (default 5)
//	--no-animation            Replace the list instead of fading rows
//	--animation-step duration Duration of each fade phase (default 150ms)
//	--scroll-delay duration   Delay before scrolling to the last row; 0 disables (default 1s)
//	--log-output string       Write JSON log records to this file
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/fwojciec/threadview"
	bt "github.com/fwojciec/threadview/bubbletea"
	"github.com/fwojciec/threadview/demo"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "threadview: %v\n", err)
		os.Exit(1)
	}
}

// options holds parsed command line settings.
type options struct {
	conversations int
	messages      int
	config        bt.Config
	logOutput     string
}

func parseOptions(args []string, output io.Writer) (options, error) {
	defaults := bt.DefaultConfig()
	var (
		opts        options
		noAnimation bool
	)

	flagSet := pflag.NewFlagSet("threadview", pflag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.IntVar(&opts.conversations, "conversations", demo.DefaultConversations, "number of generated conversations")
	flagSet.IntVar(&opts.messages, "messages", demo.DefaultMessages, "messages per conversation")
	flagSet.BoolVar(&noAnimation, "no-animation", false, "replace the list instead of fading rows")
	flagSet.DurationVar(&opts.config.AnimationStep, "animation-step", defaults.AnimationStep, "duration of each fade phase")
	flagSet.DurationVar(&opts.config.ScrollDelay, "scroll-delay", defaults.ScrollDelay, "delay before scrolling to the last row (0 disables)")
	flagSet.StringVar(&opts.logOutput, "log-output", "", "write JSON log records to this file")

	if err := flagSet.Parse(args); err != nil {
		return options{}, err
	}
	if rest := flagSet.Args(); len(rest) > 0 {
		return options{}, fmt.Errorf("unexpected argument: %s", rest[0])
	}

	switch {
	case opts.conversations < 0:
		return options{}, fmt.Errorf("--conversations must be non-negative, got %d", opts.conversations)
	case opts.messages < 0:
		return options{}, fmt.Errorf("--messages must be non-negative, got %d", opts.messages)
	case opts.config.AnimationStep < 0:
		return options{}, fmt.Errorf("--animation-step must be non-negative, got %s", opts.config.AnimationStep)
	case opts.config.ScrollDelay < 0:
		return options{}, fmt.Errorf("--scroll-delay must be non-negative, got %s", opts.config.ScrollDelay)
	}
	opts.config.Animate = !noAnimation
	return opts, nil
}

func run(args []string) error {
	opts, err := parseOptions(args, os.Stderr)
	if err != nil {
		return err
	}

	// Handle OS signals for graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger, closeLog, err := openLogger(opts.logOutput)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer closeLog()

	tree, err := threadview.NewTree(demo.Generate(opts.conversations, opts.messages)...)
	if err != nil {
		return fmt.Errorf("build tree: %w", err)
	}
	logger.Info("starting",
		"conversations", tree.Len(),
		"messages", opts.messages,
		"animate", opts.config.Animate)

	start := time.Now()
	if err := bt.Run(ctx, bt.New(tree, threadview.DefaultTheme(), opts.config, logger)); err != nil {
		return fmt.Errorf("TUI: %w", err)
	}
	logger.Info("exiting", "elapsed", time.Since(start))
	return nil
}

// openLogger returns a JSON logger writing to path, or a discarding logger
// when path is empty. The TUI owns the terminal, so logs never go to
// stderr.
func openLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, err
	}
	handler := slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(handler), func() { f.Close() }, nil
}
