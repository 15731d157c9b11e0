package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmd(t *testing.T) {
	root := NewRootCmd("1.2.3")
	require.NotNil(t, root)
	assert.Equal(t, "pager", root.Use)
	assert.Equal(t, "1.2.3", root.Version)
	assert.NotEmpty(t, root.Example)

	names := make([]string, 0, len(root.Commands()))
	for _, sub := range root.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "view")
	assert.Contains(t, names, "browse")
}

func TestRootCmd_UnknownCommand(t *testing.T) {
	_, err := executeCommand(t, "", "paginate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}

func TestRootCmd_DebugFlag(t *testing.T) {
	path := writeLines(t, 2)
	_, err := executeCommand(t, "", "view", path, "--debug")
	require.NoError(t, err)
	assert.Equal(t, "debug", logger.GetLevel().String())
}
