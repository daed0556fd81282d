package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommands(t *testing.T) {
	root := newRootCmd()
	for _, name := range []string{"migrate", "report", "export"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}

	exp, _, err := root.Find([]string{"export"})
	require.NoError(t, err)
	out := exp.Flags().Lookup("out")
	require.NotNil(t, out)
	assert.Equal(t, "estoque.xlsx", out.DefValue)
	assert.NotNil(t, root.PersistentFlags().Lookup("dsn"))
}
