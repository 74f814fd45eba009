package cmd

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/possize/config"
	"github.com/rustyeddy/possize/format"
	"github.com/rustyeddy/possize/risk"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	sizeText.account, sizeText.risk, sizeText.entry, sizeText.stop = "", "", "", ""
	batchInput, batchXLSX = "", ""
	cfgFile, logLevel = "", ""
	envFile = filepath.Join(t.TempDir(), "none.env")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestSizeCommand(t *testing.T) {
	out, err := run(t, "size", "--account", "10000", "--risk", "1", "--entry", "62500", "--stop", "60000")
	require.NoError(t, err)
	assert.Contains(t, out, "LONG")
	assert.Contains(t, out, "0.04")
}

func TestSizeCommand_Violations(t *testing.T) {
	out, err := run(t, "size", "--account", "-5", "--risk", "1", "--entry", "100", "--stop", "100")
	require.Error(t, err)
	assert.ErrorIs(t, err, risk.ErrInvalidInput)
	assert.Contains(t, out, risk.MsgAccountSize)
	assert.Contains(t, out, risk.MsgEntryEqualsStop)
}

func TestSizeCommand_UsesConfigDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "possize.yaml")
	require.NoError(t, os.WriteFile(path, []byte("account:\n  currency: USD\n  size: 5000\ndefaults:\n  risk_percent: 2\n"), 0644))

	out, err := run(t, "-c", path, "size", "--entry", "100", "--stop", "105")
	require.NoError(t, err)
	assert.Contains(t, out, "SHORT")
	assert.Contains(t, out, "2,000.00")
}

func TestBatchCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "setups.csv")
	xlsx := filepath.Join(dir, "sized.xlsx")
	require.NoError(t, os.WriteFile(in, []byte("label,account_size,risk_percent,entry_price,stop_loss\na,5000,2,100,105\nb,5000,2,100,100\n"), 0644))

	out, err := run(t, "batch", "-f", in, "--xlsx", xlsx)
	require.NoError(t, err)

	recs, err := csv.NewReader(bytes.NewBufferString(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Equal(t, "SHORT", recs[1][6])
	assert.Equal(t, risk.MsgEntryEqualsStop, recs[2][12])

	_, err = os.Stat(xlsx)
	assert.NoError(t, err)
}

func TestConfigInitAndValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "possize.yaml")

	out, err := run(t, "config", "init", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Created default configuration")

	out, err = run(t, "config", "validate", "-f", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration valid")
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, version)
}

func TestSizeCommand_ReadsLocaleNumbers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "possize.yaml")
	require.NoError(t, os.WriteFile(path, []byte("account:\n  currency: EUR\ndisplay:\n  locale: de-DE\n"), 0644))

	out, err := run(t, "-c", path, "size", "--account", "10.000", "--risk", "1,5", "--entry", "100", "--stop", "95")
	require.NoError(t, err)

	f, err := format.New("de-DE", "EUR")
	require.NoError(t, err)
	assert.Contains(t, out, f.Money(150))
	assert.Contains(t, out, f.Money(3000))
}

func TestBadEnvOnlyBreaksSizingCommands(t *testing.T) {
	t.Setenv(config.EnvAccountSize, "lots")

	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, version)

	_, err = run(t, "config", "init", "-o", filepath.Join(t.TempDir(), "possize.yaml"))
	require.NoError(t, err)

	_, err = run(t, "size", "--account", "1000", "--entry", "100", "--stop", "95")
	assert.ErrorContains(t, err, config.EnvAccountSize)
}
