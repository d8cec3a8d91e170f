package main

import (
	"context"
	"testing"

	"go-tower-sim/internal/config"
	"go-tower-sim/internal/defs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunBatchIsDeterministicPerSeed(t *testing.T) {
	settings := config.DefaultSettings()
	first, err := runBatch(context.Background(), settings, defs.Default(), "", 30, 3, 10, 3)
	require.NoError(t, err)
	second, err := runBatch(context.Background(), settings, defs.Default(), "", 30, 3, 10, 1)
	require.NoError(t, err)

	require.Len(t, first, 3)
	for i := range first {
		assert.Equal(t, int64(10+i), first[i].Seed)
		assert.Equal(t, first[i].Stats, second[i].Stats, "seed %d", first[i].Seed)
		_, err := uuid.Parse(first[i].RunID)
		assert.NoError(t, err)
		assert.NotEqual(t, first[i].RunID, second[i].RunID)
	}
}

func TestRunBatchStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := runBatch(ctx, config.DefaultSettings(), defs.Default(), "", 30, 2, 1, 2)
	assert.ErrorIs(t, err, context.Canceled)
}
