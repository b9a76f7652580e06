// cmd/injectpreload/root_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: cobra
// PURPOSE: Test root command structure, help topics and misc commands

package injectpreload

import (
	"testing"

	"github.com/arthur-debert/injectpreload/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findCommand(root *cobra.Command, name string) *cobra.Command {
	for _, c := range root.Commands() {
		if c.Name() == name {
			return c
		}
	}
	return nil
}

func TestRootCommandStructure(t *testing.T) {
	root := NewRootCmd()

	tests := []struct {
		name  string
		group string
	}{
		{"inject", "core"},
		{"tags", "core"},
		{"init", "core"},
		{"version", "misc"},
		{"topics", "misc"},
		{"completion", "misc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := findCommand(root, tt.name)
			require.NotNil(t, cmd, "%s command should exist", tt.name)
			assert.Equal(t, tt.group, cmd.GroupID)
			assert.NotEmpty(t, cmd.Short)
		})
	}

	for _, name := range []string{"verbose", "config", "no-color"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(name), "missing global flag %s", name)
	}
	assert.NotNil(t, findCommand(root, "inject").Flags().Lookup("dry-run"))
	assert.Nil(t, findCommand(root, "tags").Flags().Lookup("dry-run"))
}

func TestRootCommand_NoSubcommand(t *testing.T) {
	_, err := runCmd(t, afero.NewMemMapFs())
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	assert.Contains(t, err.Error(), MsgNoCommandProvided)
}

func TestVersionCommand(t *testing.T) {
	out, err := runCmd(t, afero.NewMemMapFs(), "version")
	require.NoError(t, err)
	assert.Contains(t, out, "injectpreload version dev")
}

func TestTopicsCommand(t *testing.T) {
	out, err := runCmd(t, afero.NewMemMapFs(), "topics")
	require.NoError(t, err)

	for _, topic := range []string{"configuration", "marker", "patterns", "--dry-run"} {
		assert.Contains(t, out, topic)
	}
}

func TestHelpTopic(t *testing.T) {
	out, err := runCmd(t, afero.NewMemMapFs(), "help", "marker")
	require.NoError(t, err)
	assert.Contains(t, out, "__vite-plugin-inject-preload__")
}

func TestCompletionCommand(t *testing.T) {
	out, err := runCmd(t, afero.NewMemMapFs(), "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "injectpreload")

	_, err = runCmd(t, afero.NewMemMapFs(), "completion", "tcsh")
	assert.Error(t, err)
}
