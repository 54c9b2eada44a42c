package bubbletea_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/threadview"
	bt "github.com/fwojciec/threadview/bubbletea"
	"github.com/fwojciec/threadview/demo"
	"github.com/stretchr/testify/require"
)

// newTree builds a tree of n generated conversations with per messages each.
func newTree(t *testing.T, n, per int) *threadview.Tree {
	t.Helper()
	tree, err := threadview.NewTree(demo.Generate(n, per)...)
	require.NoError(t, err)
	return tree
}

// initModel creates a model over tree and sends a WindowSizeMsg to
// initialize the viewport.
func initModel(t *testing.T, tree *threadview.Tree, config bt.Config) bt.Model {
	t.Helper()
	return initModelWithSize(t, tree, config, 80, 24)
}

// initModelWithSize creates a model with a custom terminal size.
func initModelWithSize(t *testing.T, tree *threadview.Tree, config bt.Config, width, height int) bt.Model {
	t.Helper()
	m := bt.New(tree, threadview.DefaultTheme(), config, nil)
	return updateModel(t, m, tea.WindowSizeMsg{Width: width, Height: height})
}

// updateModel sends a message and returns the updated Model.
func updateModel(t *testing.T, m bt.Model, msg tea.Msg) bt.Model {
	t.Helper()
	updated, _ := m.Update(msg)
	model, ok := updated.(bt.Model)
	require.True(t, ok)
	return model
}

// staticConfig disables animation and the delayed scroll.
func staticConfig() bt.Config {
	return bt.Config{}
}

// animatedConfig animates without the delayed scroll.
func animatedConfig() bt.Config {
	c := bt.DefaultConfig()
	c.ScrollDelay = 0
	return c
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyEnd   = tea.KeyMsg{Type: tea.KeyEnd}
	keyHome  = tea.KeyMsg{Type: tea.KeyHome}
)
