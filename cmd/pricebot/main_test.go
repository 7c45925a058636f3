package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	app := newApp()
	buffer := bytes.NewBufferString("")
	app.Writer = buffer
	err := app.Run(append([]string{"pricebot", "--seed", "1"}, args...))
	return buffer.String(), err
}

func TestPeriodDays(t *testing.T) {
	assert.Equal(t, 14, periodDays(14*24*time.Hour))
	assert.Equal(t, 1, periodDays(36*time.Hour))
	assert.Equal(t, 0, periodDays(time.Hour))
}

func TestCommands(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		output, err := run(t, "list")
		require.NoError(t, err)
		assert.Contains(t, output, "[Catalog] 2 commodities")
	})

	t.Run("info", func(t *testing.T) {
		output, err := run(t, "info", "蘋果")
		require.NoError(t, err)
		assert.Contains(t, output, "[Apple] price overview")
		assert.Contains(t, output, "35.5 TWD/kg")
	})

	t.Run("report period", func(t *testing.T) {
		output, err := run(t, "report", "--period", "2w", "apple")
		require.NoError(t, err)
		assert.Contains(t, output, "last 14 days")
	})

	t.Run("report days", func(t *testing.T) {
		output, err := run(t, "report", "--days", "7", "banana")
		require.NoError(t, err)
		assert.Contains(t, output, "[Banana] price report, last 7 days")
	})

	t.Run("report invalid period", func(t *testing.T) {
		_, err := run(t, "report", "--period", "soon", "apple")
		assert.Error(t, err)
	})

	t.Run("compare", func(t *testing.T) {
		output, err := run(t, "--storage", "sql", "compare", "apple", "banana")
		require.NoError(t, err)
		assert.Contains(t, output, "[Apple vs Banana] price comparison, last 30 days")
	})

	t.Run("compare not found", func(t *testing.T) {
		output, err := run(t, "compare", "apple", "pear")
		require.NoError(t, err)
		assert.Contains(t, output, `"pear"`)
	})

	t.Run("trend", func(t *testing.T) {
		output, err := run(t, "trend", "banana")
		require.NoError(t, err)
		assert.Contains(t, output, "[Banana] trend analysis, 30 days")
	})

	t.Run("missing argument", func(t *testing.T) {
		_, err := run(t, "info")
		assert.Error(t, err)
	})

	t.Run("invalid storage", func(t *testing.T) {
		_, err := run(t, "--storage", "redis", "list")
		assert.Error(t, err)
	})

	t.Run("telegram without token", func(t *testing.T) {
		t.Setenv("PRICEBOT_TELEGRAM_TOKEN", "")
		_, err := run(t, "telegram")
		assert.Error(t, err)
	})
}

func TestCatalogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
commodities:
  - id: pear
    name: Pear
    base_price: 60
    aliases: [梨]
`), 0o600))

	output, err := run(t, "--catalog", path, "info", "梨")
	require.NoError(t, err)
	assert.Contains(t, output, "[Pear] price overview")
	assert.Contains(t, output, "60.0 TWD/kg")
}
