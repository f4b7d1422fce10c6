package commands

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rental-manager/internal/config"
	"rental-manager/internal/logger"
	"rental-manager/internal/menu"
)

func testConfig(report bool) *config.Config {
	return &config.Config{
		Owner:  config.OwnerConfig{Name: "John Doe"},
		Logger: config.LoggerConfig{Level: "warn", Format: "text"},
		Ledger: config.LedgerConfig{Report: report},
	}
}

func TestRootCmd(t *testing.T) {
	cmd := NewRootCmd()
	assert.Equal(t, "rental-manager", cmd.Use)
	assert.Equal(t, "Rental House Management System", cmd.Short)

	flags := cmd.Flags()
	assert.NotNil(t, flags.Lookup("owner"))
	assert.NotNil(t, flags.Lookup("log-level"))
	assert.NotNil(t, flags.Lookup("ledger"))

	sub, _, err := cmd.Find([]string{"menu"})
	require.NoError(t, err)
	assert.Equal(t, "menu", sub.Use)
}

func TestMenuCmd(t *testing.T) {
	cmd := MenuCmd()
	assert.Equal(t, "menu", cmd.Use)
	assert.Equal(t, "Start the interactive rental management menu", cmd.Short)

	flags := cmd.Flags()
	assert.NotNil(t, flags.Lookup("owner"))
	assert.NotNil(t, flags.Lookup("log-level"))
	assert.NotNil(t, flags.Lookup("ledger"))
}

func TestRootCmd_RunsMenu(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")
	t.Setenv("LEDGER_REPORT", "")

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetIn(strings.NewReader("1\nA\n1000\n2\nA\nAlice\n7\n8\n"))
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--owner", "Jane Roe", "--ledger"})

	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "Financial Report for Jane Roe\n")
	assert.Contains(t, out.String(), "Exiting...\n")
	assert.Contains(t, out.String(), "Lease Events\n")
}

func TestRootCmd_InvalidLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")

	cmd := NewRootCmd()
	cmd.SetIn(strings.NewReader("8\n"))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"menu", "--log-level", "loud"})

	assert.Error(t, cmd.Execute())
}

func TestSession_LedgerReport(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("1\n123 Main St\n1000\n2\n123 Main St\nAlice\n3\n123 Main St\n8\n")

	err := Session(testConfig(true), in, &out, logger.Discard())
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Alice has paid a total amount of: Rs 1000.00\n")
	assert.Contains(t, out.String(), "Payments\n")
	assert.Contains(t, out.String(), "Rs 1000.00")
}

func TestSession_NoLedgerReport(t *testing.T) {
	var out bytes.Buffer

	err := Session(testConfig(false), strings.NewReader("8\n"), &out, logger.Discard())
	require.NoError(t, err)

	assert.NotContains(t, out.String(), "No ledger entries")
}

func TestSession_MalformedInput(t *testing.T) {
	var out bytes.Buffer

	err := Session(testConfig(false), strings.NewReader("x\n"), &out, logger.Discard())

	require.Error(t, err)
	assert.True(t, errors.Is(err, menu.ErrMalformedInput))
}
