package main

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"sync/atomic"
	"testing"

	"github.com/Veraticus/transfers/internal/clipboard"
	"github.com/Veraticus/transfers/internal/common"
	"github.com/Veraticus/transfers/internal/tui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const transfersBody = `{
  "FT1": {"id": "FT1", "amount": 125000, "unique_code": 341, "status": "SUCCESS", "sender_bank": "bni", "account_number": "1234567890", "beneficiary_name": "Zara Putri", "beneficiary_bank": "bca", "remark": "sewa", "created_at": "2024-02-01 09:00:00", "fee": 0},
  "FT2": {"id": "FT2", "amount": 50000, "unique_code": 12, "status": "PENDING", "sender_bank": "mandiri", "account_number": "555", "beneficiary_name": "Amir Hakim", "beneficiary_bank": "bri", "remark": "", "created_at": "2024-01-01 09:00:00", "fee": 0},
  "FT3": {"id": "FT3", "amount": 7500, "unique_code": 7, "status": "SUCCESS", "sender_bank": "bca", "account_number": "777", "beneficiary_name": "Budi Santoso", "beneficiary_bank": "bni", "remark": "kopi", "created_at": "2024-03-15 12:30:00", "fee": 0}
}`

var ansi = regexp.MustCompile(`\x1b\[[0-9;?]*[a-zA-Z]`)

// isolate keeps tests away from the user's config, .env and logger.
func isolate(t *testing.T) {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("HOME", dir)

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })
}

func newServer(t *testing.T, status int, body string) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	hits := &atomic.Int32{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, hits
}

func execute(t *testing.T, a *app, args ...string) (string, string, error) {
	t.Helper()

	cmd := newRootCmd(a)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return ansi.ReplaceAllString(out.String(), ""), errOut.String(), err
}

func TestVersion(t *testing.T) {
	isolate(t)

	out, _, err := execute(t, &app{}, "version")
	require.NoError(t, err)
	assert.Equal(t, "transfers dev\n", out)
}

func TestList_Table(t *testing.T) {
	isolate(t)
	srv, hits := newServer(t, http.StatusOK, transfersBody)

	out, _, err := execute(t, &app{}, "list", "--endpoint", srv.URL, "--icons", "ascii", "--sort", "name-asc")
	require.NoError(t, err)

	assert.Equal(t, int32(1), hits.Load())
	assert.Regexp(t, `(?s)Amir Hakim.*Budi Santoso.*Zara Putri`, out)
	assert.Contains(t, out, "MANDIRI -> BRI")
	assert.Contains(t, out, "Rp125.000")
	assert.Contains(t, out, "3 dari 3 transaksi")
}

func TestList_Query(t *testing.T) {
	isolate(t)
	srv, _ := newServer(t, http.StatusOK, transfersBody)

	out, _, err := execute(t, &app{}, "list", "--endpoint", srv.URL, "--query", "bca")
	require.NoError(t, err)

	assert.Contains(t, out, "Zara Putri")
	assert.Contains(t, out, "Budi Santoso")
	assert.NotContains(t, out, "Amir Hakim")
	assert.Contains(t, out, "2 dari 3 transaksi")
}

func TestList_JSON(t *testing.T) {
	isolate(t)
	srv, _ := newServer(t, http.StatusOK, transfersBody)

	out, _, err := execute(t, &app{}, "list", "--endpoint", srv.URL, "--format", "json", "--sort", "date-desc")
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded, 3)
	assert.Equal(t, "FT3", decoded[0]["id"])
	assert.Equal(t, "FT1", decoded[1]["id"])
	assert.Equal(t, "FT2", decoded[2]["id"])
}

func TestList_SortFromConfig(t *testing.T) {
	isolate(t)
	srv, _ := newServer(t, http.StatusOK, transfersBody)
	t.Setenv("TRANSFERS_UI_DEFAULT_SORT", "date-asc")

	out, _, err := execute(t, &app{}, "list", "--endpoint", srv.URL, "--format", "json")
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded, 3)
	assert.Equal(t, "FT2", decoded[0]["id"])
}

func TestList_FetchFailure(t *testing.T) {
	isolate(t)
	srv, _ := newServer(t, http.StatusInternalServerError, `{"error":"boom"}`)

	_, _, err := execute(t, &app{}, "list", "--endpoint", srv.URL)
	require.Error(t, err)

	var userErr *common.UserError
	require.ErrorAs(t, err, &userErr)
	assert.Equal(t, tui.ErrorMessage, common.UserMessage(err))
}

func TestList_InvalidFlags(t *testing.T) {
	isolate(t)
	srv, hits := newServer(t, http.StatusOK, transfersBody)

	_, _, err := execute(t, &app{}, "list", "--endpoint", srv.URL, "--sort", "amount")
	assert.ErrorContains(t, err, "unknown sort mode")
	assert.Equal(t, int32(0), hits.Load())

	_, _, err = execute(t, &app{}, "list", "--endpoint", srv.URL, "--format", "xml")
	assert.ErrorContains(t, err, "unknown output format")
}

func TestShow(t *testing.T) {
	isolate(t)
	srv, _ := newServer(t, http.StatusOK, transfersBody)
	board := &clipboard.Memory{}

	out, errOut, err := execute(t, &app{clipboard: board}, "show", "FT3", "--endpoint", srv.URL, "--copy")
	require.NoError(t, err)

	assert.Contains(t, out, "ID TRANSAKSI: #FT3")
	assert.Contains(t, out, "BUDI SANTOSO")
	assert.Contains(t, out, "kopi")
	assert.Equal(t, "FT3", board.Content())
	assert.Contains(t, errOut, "Copied to Clipboard")
}

func TestShow_WithoutCopy(t *testing.T) {
	isolate(t)
	srv, _ := newServer(t, http.StatusOK, transfersBody)
	board := &clipboard.Memory{}

	_, _, err := execute(t, &app{clipboard: board}, "show", "FT1", "--endpoint", srv.URL)
	require.NoError(t, err)
	assert.Zero(t, board.Writes())
}

func TestShow_NotFound(t *testing.T) {
	isolate(t)
	srv, _ := newServer(t, http.StatusOK, transfersBody)

	_, _, err := execute(t, &app{}, "show", "FT404", "--endpoint", srv.URL)
	assert.ErrorIs(t, err, common.ErrNotFound)
	assert.Equal(t, "Transaksi #FT404 tidak ditemukan", common.UserMessage(err))
}

func TestShow_CopyFailure(t *testing.T) {
	isolate(t)
	srv, _ := newServer(t, http.StatusOK, transfersBody)
	board := &clipboard.Memory{Err: clipboard.ErrUnsupported}

	_, _, err := execute(t, &app{clipboard: board}, "show", "FT1", "--endpoint", srv.URL, "--copy")
	assert.ErrorIs(t, err, clipboard.ErrUnsupported)
	assert.Equal(t, "Gagal menyalin", common.UserMessage(err))
}

func TestInvalidConfig(t *testing.T) {
	isolate(t)
	t.Setenv("TRANSFERS_UI_ICONS", "emoji")

	_, _, err := execute(t, &app{}, "version")
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
}

func TestMissingConfigFile(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	_, _, err := execute(t, &app{}, "--config", filepath.Join(dir, "absent.yaml"), "version")
	assert.ErrorIs(t, err, common.ErrMissingConfig)

	_, _, err = execute(t, &app{}, "--env-file", filepath.Join(dir, "absent.env"), "version")
	assert.ErrorIs(t, err, common.ErrMissingConfig)
}

func TestConfigFileAndLogFile(t *testing.T) {
	isolate(t)
	srv, _ := newServer(t, http.StatusOK, transfersBody)

	dir := t.TempDir()
	logPath := filepath.Join(dir, "transfers.log")
	cfgPath := filepath.Join(dir, "config.yaml")
	cfg := "api:\n  endpoint: " + srv.URL + "\nlogging:\n  level: debug\n  format: json\n  file: " + logPath + "\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0600))

	_, errOut, err := execute(t, &app{}, "list", "--config", cfgPath)
	require.NoError(t, err)
	assert.NotContains(t, errOut, "Fetch succeeded")

	logs, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(logs), `"msg":"Fetch succeeded"`)
	assert.Contains(t, string(logs), `"count":3`)
}

func TestEnvFile(t *testing.T) {
	isolate(t)
	srv, hits := newServer(t, http.StatusOK, transfersBody)

	envPath := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(envPath, []byte("TRANSFERS_API_ENDPOINT="+srv.URL+"\n"), 0600))
	t.Setenv("TRANSFERS_API_ENDPOINT", "")
	require.NoError(t, os.Unsetenv("TRANSFERS_API_ENDPOINT"))

	_, _, err := execute(t, &app{}, "list", "--env-file", envPath)
	require.NoError(t, err)
	assert.Equal(t, int32(1), hits.Load())
}

func TestIsInteractive(t *testing.T) {
	root := newRootCmd(&app{clipboard: &clipboard.Memory{}})
	assert.True(t, isInteractive(root))

	for _, sub := range root.Commands() {
		assert.Equal(t, sub.Name() == "browse", isInteractive(sub), sub.Name())
	}
}
