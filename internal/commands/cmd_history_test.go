package commands

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryCommand_ListAndClear(t *testing.T) {
	app, _, store, buf := newTestApp(t)
	ctx := context.Background()
	dir := t.TempDir()

	require.NoError(t, app.Run(ctx, []string{
		"qrforge", "url", "example.com", "-o", filepath.Join(dir, "a.png"),
	}))
	require.NoError(t, app.Run(ctx, []string{
		"qrforge", "text", "hello", "-o", filepath.Join(dir, "b.png"),
	}))

	buf.Reset()
	require.NoError(t, app.Run(ctx, []string{"qrforge", "history"}))

	output := buf.String()
	assert.Contains(t, output, "QR Code Generation History (2 entries):")
	assert.Contains(t, output, "[1]")
	assert.Contains(t, output, "[2]")

	buf.Reset()
	require.NoError(t, app.Run(ctx, []string{"qrforge", "history", "--limit", "1"}))
	assert.NotContains(t, buf.String(), "[2]")

	buf.Reset()
	require.NoError(t, app.Run(ctx, []string{"qrforge", "history", "clear", "--yes"}))
	assert.Contains(t, buf.String(), "Cleared 2 history entries")

	entries, err := store.List(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestHistoryCommand_Empty(t *testing.T) {
	app, _, _, buf := newTestApp(t)

	require.NoError(t, app.Run(context.Background(), []string{"qrforge", "history"}))
	assert.Contains(t, buf.String(), "No history entries found.")
}
