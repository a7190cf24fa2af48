package configpkg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-petr/pet-ledger/pkg/currencypkg"
	"github.com/go-petr/pet-ledger/pkg/randompkg"
)

func writeEnv(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "app.env"), []byte(content), 0o600)
	require.NoError(t, err)

	return dir
}

func TestLoad(t *testing.T) {
	dir := writeEnv(t, "GO_ENV=development\nCURRENCY=USD\nUNIQUE_ACCOUNT_NUMBERS=true\n")

	c, err := Load(dir)
	require.NoError(t, err)

	require.Equal(t, "development", c.Environment)
	require.Equal(t, currencypkg.USD, c.Currency)
	require.True(t, c.UniqueAccountNumbers)
	require.Equal(t, "Choose: ", c.Prompt)
}

func TestLoadDefaults(t *testing.T) {
	c, err := Load(t.TempDir())
	require.NoError(t, err)

	require.Equal(t, "production", c.Environment)
	require.Equal(t, currencypkg.BRL, c.Currency)
	require.False(t, c.UniqueAccountNumbers)
}

func TestLoadEnvOverride(t *testing.T) {
	dir := writeEnv(t, "CURRENCY=USD\n")
	t.Setenv("CURRENCY", "EUR")

	c, err := Load(dir)
	require.NoError(t, err)
	require.Equal(t, currencypkg.EUR, c.Currency)
}

func TestLoadSupportedCurrency(t *testing.T) {
	currency := randompkg.Currency()
	dir := writeEnv(t, "CURRENCY="+currency+"\n")

	c, err := Load(dir)
	require.NoError(t, err)
	require.Equal(t, currency, c.Currency)
}

func TestLoadUnsupportedCurrency(t *testing.T) {
	dir := writeEnv(t, "CURRENCY=RUB\n")

	_, err := Load(dir)
	require.Error(t, err)
}
