// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterruptContext(t *testing.T) {
	ctx, stop := interruptContext()
	require.NoError(t, ctx.Err())

	stop()
	<-ctx.Done()
	assert.Error(t, ctx.Err())
}

func TestSubcommandsRegistered(t *testing.T) {
	for _, name := range []string{"harvest", "author", "version"} {
		cmd, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
		assert.True(t, cmd.RunE != nil || cmd.Run != nil)
	}
}
