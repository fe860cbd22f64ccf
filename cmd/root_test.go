package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandsRegistered(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["process"])
	assert.True(t, names["report"])
	assert.True(t, names["runs"])
}

func TestProcessFlagDefaults(t *testing.T) {
	regions, err := processCmd.Flags().GetStringSlice("regions")
	require.NoError(t, err)
	assert.Equal(t, []string{"south", "greatlakes"}, regions)

	demo, err := processCmd.Flags().GetBool("demo")
	require.NoError(t, err)
	assert.False(t, demo)
}

func TestReportFlagDefaults(t *testing.T) {
	region, err := reportCmd.Flags().GetString("region")
	require.NoError(t, err)
	assert.Equal(t, "south", region)
}
