package cli_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/tap-billing/internal/cli"
	"github.com/pkordes/tap-billing/testutil"
)

func setupEnv(t *testing.T) {
	t.Helper()
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("LOG_FORMAT", "")
	t.Setenv("MAX_BODY_BYTES", "")
	t.Setenv("FARE_TABLE_PATH", "")
}

func TestRun_WritesReport(t *testing.T) {
	setupEnv(t)
	src := testutil.WriteFile(t, "taps.json", testutil.TapDocument(t,
		testutil.Tap(10, 1, "A"), testutil.Tap(12, 1, "B"), testutil.Tap(15, 1, "G"),
	))
	dest := filepath.Join(t.TempDir(), "report.json")
	var stdout, stderr bytes.Buffer

	code := cli.Run(context.Background(), []string{"-s", src, "-d", dest}, &stdout, &stderr)

	require.Equal(t, cli.ExitOK, code, stderr.String())
	got, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"summaries": [{
			"customerId": 1,
			"totalCostInCents": 240,
			"trips": [{
				"stationStart": "A", "stationEnd": "B", "startedJourneyAt": 10,
				"costInCents": 240, "zoneFrom": 1, "zoneTo": 2
			}]
		}]
	}`, string(got))
}

func TestRun_SameInputSameOutput(t *testing.T) {
	setupEnv(t)
	src := testutil.WriteFile(t, "taps.json", testutil.TapDocument(t,
		testutil.Tap(10, 2, "A"), testutil.Tap(11, 1, "C"), testutil.Tap(12, 2, "D"),
		testutil.Tap(13, 1, "I"), testutil.Tap(15, 1, "F"), testutil.Tap(19, 1, "A"),
	))
	dir := t.TempDir()
	first := filepath.Join(dir, "first.json")
	second := filepath.Join(dir, "second.json")

	require.Equal(t, cli.ExitOK, cli.Run(context.Background(), []string{"-s", src, "-d", first}, &bytes.Buffer{}, &bytes.Buffer{}))
	require.Equal(t, cli.ExitOK, cli.Run(context.Background(), []string{"-s", src, "-d", second}, &bytes.Buffer{}, &bytes.Buffer{}))

	a, err := os.ReadFile(first)
	require.NoError(t, err)
	b, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRun_Help_NoProcessing(t *testing.T) {
	setupEnv(t)
	var stdout, stderr bytes.Buffer

	code := cli.Run(context.Background(), []string{"-h"}, &stdout, &stderr)

	assert.Equal(t, cli.ExitOK, code)
	assert.Contains(t, stdout.String(), "usage: billing")
	assert.Empty(t, stderr.String())
}

func TestRun_SyntaxError_NoOutput(t *testing.T) {
	setupEnv(t)
	dest := filepath.Join(t.TempDir(), "report.json")
	var stdout, stderr bytes.Buffer

	code := cli.Run(context.Background(), []string{"-d", dest}, &stdout, &stderr)

	assert.Equal(t, cli.ExitUsage, code)
	assert.Contains(t, stderr.String(), "Syntax error. missing required options: s")
	assert.Contains(t, stderr.String(), "usage: billing")
	_, err := os.Stat(dest)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRun_UnreadableInput_NoOutput(t *testing.T) {
	setupEnv(t)
	dir := t.TempDir()
	dest := filepath.Join(dir, "report.json")

	code := cli.Run(context.Background(),
		[]string{"-s", filepath.Join(dir, "missing.json"), "-d", dest},
		&bytes.Buffer{}, &bytes.Buffer{})

	assert.Equal(t, cli.ExitFailed, code)
	_, err := os.Stat(dest)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRun_MalformedInput_NoOutput(t *testing.T) {
	setupEnv(t)
	src := testutil.WriteFile(t, "taps.json", []byte(`{"taps": [`))
	dest := filepath.Join(t.TempDir(), "report.json")

	code := cli.Run(context.Background(), []string{"-s", src, "-d", dest}, &bytes.Buffer{}, &bytes.Buffer{})

	assert.Equal(t, cli.ExitFailed, code)
	_, err := os.Stat(dest)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRun_CustomFareTable(t *testing.T) {
	setupEnv(t)
	t.Setenv("FARE_TABLE_PATH", testutil.WriteFile(t, "fares.yaml", []byte(
		"stations:\n  X: [1]\n  Y: [1]\nprices:\n  - {zoneFrom: 1, zoneTo: 1, costInCents: 90}\n",
	)))
	src := testutil.WriteFile(t, "taps.json", testutil.TapDocument(t,
		testutil.Tap(1, 1, "X"), testutil.Tap(2, 1, "Y"),
	))
	dest := filepath.Join(t.TempDir(), "report.json")

	code := cli.Run(context.Background(), []string{"-s", src, "-d", dest}, &bytes.Buffer{}, &bytes.Buffer{})

	require.Equal(t, cli.ExitOK, code)
	got, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(got), `"totalCostInCents": 90`)
}
