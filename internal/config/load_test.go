package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir moves into a fresh temp dir so a stray calc.yaml or .env cannot leak in.
func chdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })
	return dir
}

func TestLoad(t *testing.T) {
	defer viper.Reset()

	t.Run("Defaults Without File", func(t *testing.T) {
		viper.Reset()
		dir := chdir(t)

		require.NoError(t, Load(""))

		s := FromViper()
		assert.Equal(t, DefaultPrecision, s.Precision)
		assert.Equal(t, OutputText, s.Output)
		assert.Equal(t, ColorAuto, s.Color)
		assert.False(t, s.Verbose)
		assert.Empty(t, s.LogFile)
		assert.Empty(t, s.MetricsFile)

		// Loading never writes a config file.
		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("Load From Env", func(t *testing.T) {
		viper.Reset()
		chdir(t)
		t.Setenv("CALC_PRECISION", "3")
		t.Setenv("CALC_OUTPUT", "json")

		require.NoError(t, Load(""))
		s := FromViper()
		assert.Equal(t, 3, s.Precision)
		assert.Equal(t, OutputJSON, s.Output)
	})

	t.Run("Load From Working Directory File", func(t *testing.T) {
		viper.Reset()
		dir := chdir(t)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "calc.yaml"), []byte("precision: 2\ncolor: never\n"), 0644))

		require.NoError(t, Load(""))
		s := FromViper()
		assert.Equal(t, 2, s.Precision)
		assert.Equal(t, ColorNever, s.Color)
	})

	t.Run("Explicit File", func(t *testing.T) {
		viper.Reset()
		dir := chdir(t)
		path := filepath.Join(dir, "custom.yaml")
		require.NoError(t, os.WriteFile(path, []byte("output: json\nmetrics_file: /tmp/calc.prom\n"), 0644))

		require.NoError(t, Load(path))
		s := FromViper()
		assert.Equal(t, OutputJSON, s.Output)
		assert.Equal(t, "/tmp/calc.prom", s.MetricsFile)
	})

	t.Run("Missing Explicit File", func(t *testing.T) {
		viper.Reset()
		dir := chdir(t)

		err := Load(filepath.Join(dir, "absent.yaml"))
		assert.ErrorIs(t, err, ErrInvalid)
		assert.Contains(t, err.Error(), "absent.yaml")
	})

	t.Run("Malformed File", func(t *testing.T) {
		viper.Reset()
		dir := chdir(t)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "calc.yaml"), []byte("precision: [\n"), 0644))

		err := Load("")
		assert.ErrorIs(t, err, ErrInvalid)
	})
}
