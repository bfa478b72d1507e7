package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/morningmoney/internal/apperrors"
)

func run(t *testing.T, dbPath string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(append([]string{"morningmoney", "--db", dbPath, "--log-level", "error"}, args...))
	return out.String(), err
}

func TestParseID(t *testing.T) {
	id, err := parseID(" 12 ")
	require.NoError(t, err)
	assert.Equal(t, int64(12), id)

	for _, bad := range []string{"", "0", "-3", "abc", "1.5"} {
		_, err := parseID(bad)
		assert.ErrorIs(t, err, apperrors.ErrInvalidID, bad)
	}
}

func TestApp_LedgerCommands(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "finance.db")

	out, err := run(t, dbPath, "migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "schema version 0 -> 2")

	for _, args := range [][]string{
		{"tx", "add", "--date", "2025-03-01", "--category", "Salary", "--amount", "R500.00", "--tags", "work"},
		{"tx", "add", "--date", "2025-03-02", "--category", "Groceries", "--amount", "-200", "--tags", "food"},
		{"tx", "add", "--date", "2025-03-03", "--category", "Refund", "--amount", "$50", "--tags", "food"},
	} {
		out, err = run(t, dbPath, args...)
		require.NoError(t, err)
		assert.Contains(t, out, "added transaction")
	}

	out, err = run(t, dbPath, "balance")
	require.NoError(t, err)
	assert.Equal(t, "R350.00\n", out)

	out, err = run(t, dbPath, "tx", "list")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[1], "Refund")
	assert.Contains(t, lines[1], "R350.00")
	assert.Contains(t, lines[3], "R500.00")

	out, err = run(t, dbPath, "tx", "update", "2", "--amount", "-250")
	require.NoError(t, err)
	assert.Contains(t, out, "updated transaction 2")

	out, err = run(t, dbPath, "tx", "update", "99", "--amount", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "not found")

	out, err = run(t, dbPath, "summary", "tags")
	require.NoError(t, err)
	assert.Contains(t, out, "-R200.00")
	assert.Contains(t, out, "R500.00")

	_, err = run(t, dbPath, "tx", "add", "--amount", "lots")
	assert.ErrorIs(t, err, apperrors.ErrInvalidNumber)

	_, err = run(t, dbPath, "tx", "list", "--from", "2025-03-05", "--to", "2025-03-01")
	assert.ErrorIs(t, err, apperrors.ErrInvalidDateRange)
}

func TestApp_InvestmentCommands(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "finance.db")

	_, err := run(t, dbPath, "invest", "save", "--name", "RA", "--value", "R100,000")
	require.NoError(t, err)
	_, err = run(t, dbPath, "invest", "save", "--name", "RA", "--value", "R136,479.00", "--monthly", "399", "--return", "8%")
	require.NoError(t, err)

	out, err := run(t, dbPath, "invest", "list")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3, "header, one investment, total")
	assert.Contains(t, lines[1], "R136,479.00")
	assert.Contains(t, lines[1], "8.00%")

	_, err = run(t, dbPath, "invest", "save", "--name", "RA", "--value", "1", "--target-year", "never")
	assert.ErrorIs(t, err, apperrors.ErrInvalidYear)

	out, err = run(t, dbPath, "invest", "wealth", "--target-year", "1999")
	require.NoError(t, err)
	assert.Equal(t, "R0.00\n", out)

	out, err = run(t, dbPath, "daily")
	require.NoError(t, err)
	assert.Contains(t, out, "Projected wealth")
}

func TestApp_ImportDiary(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "finance.db")
	diaryPath := filepath.Join(dir, "finance_diary.json")
	require.NoError(t, os.WriteFile(diaryPath, []byte(`[
		{"date": "2024-01-05", "income": 100, "expense": 0, "notes": "pay"},
		{"date": "not a date", "income": 100}
	]`), 0o600))

	out, err := run(t, dbPath, "import-diary", diaryPath)
	require.NoError(t, err)
	assert.Equal(t, "imported 1 transactions\n", out)

	out, err = run(t, dbPath, "balance")
	require.NoError(t, err)
	assert.Equal(t, "R100.00\n", out)
}
