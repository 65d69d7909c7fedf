package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMCPServeCmd_PortFlag(t *testing.T) {
	flag := mcpServeCmd.Flags().Lookup("port")
	require.NotNil(t, flag)
	assert.Equal(t, "p", flag.Shorthand)
	assert.Equal(t, "0", flag.DefValue)
}

func TestMCPServeCmd_NotWired(t *testing.T) {
	setupTestCLI(t, &catalogue{})
	wiring = Wiring{}

	err := execute("mcp", "serve")

	assert.ErrorIs(t, err, errNotWired)
}
