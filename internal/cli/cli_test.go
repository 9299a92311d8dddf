package cli

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/imgajeed76/gridsheet/internal/config"
	"github.com/imgajeed76/gridsheet/internal/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the root command with an isolated config and log file.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	full := append([]string{"--config", cfgPath, "--log-file", filepath.Join(dir, "test.log"), "--no-color"}, args...)
	rootCmd.SetArgs(full)
	defer func() { app.closeLog() }()
	return cfgPath, rootCmd.ExecuteContext(t.Context())
}

func TestConfigSetPersists(t *testing.T) {
	path, err := run(t, "config", "ui.title", "Ops / Orders")
	require.NoError(t, err)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Ops / Orders", cfg.UI.Title)
}

func TestConfigRejectsUnknownKey(t *testing.T) {
	_, err := run(t, "config", "ui.nope")
	assert.True(t, errors.Is(err, util.ErrUnknownConfigKey))

	_, err = run(t, "config", "sql.timeout", "0")
	assert.Error(t, err, "below the minimum")
}

func TestSQLRefusals(t *testing.T) {
	t.Setenv("GRIDSHEET_SQL_URL", "")

	_, err := run(t, "sql", "--url", "", "select 1")
	assert.True(t, errors.Is(err, util.ErrNoDatabaseURL))

	_, err = run(t, "sql", "--url", "postgres://nobody@127.0.0.1:1/none", "drop table orders")
	assert.True(t, errors.Is(err, util.ErrWriteQuery))

	for _, timeout := range []string{"0", "-5"} {
		_, err = run(t, "sql", "--url", "postgres://nobody@127.0.0.1:1/none", "--timeout="+timeout, "select 1")
		assert.True(t, errors.Is(err, util.ErrInvalidTimeout), "timeout %s", timeout)
	}
}

func TestOpenMissingFile(t *testing.T) {
	_, err := run(t, "open", filepath.Join(t.TempDir(), "missing.toml"), "--raw")
	var sheetErr *util.SheetError
	assert.True(t, errors.As(err, &sheetErr))
}
