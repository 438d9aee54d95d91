package cmd

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "cargo-clean-recursive", configBaseName)
	assert.Equal(t, "cargo-clean-recursive.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "exclude-dirs", excludeDirsFlagName)
	assert.Equal(t, "exclude_dirs", legacyExcludeDirsFlagName)
	assert.Equal(t, "scan.depth", depthConfigKey)
	assert.Equal(t, "scan.exclude_dirs", excludeDirsConfigKey)
	assert.Equal(t, "clean.doc", docConfigKey)
	assert.Equal(t, "clean.release", releaseConfigKey)
	assert.Equal(t, "tool.program", programConfigKey)
	assert.Equal(t, "CARGO_CLEAN_RECURSIVE", envPrefix)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{" WARN ", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"-4", slog.LevelDebug},
		{"nonsense", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelInfo))
		})
	}
}

func TestConfigureLogger(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	logPath := filepath.Join(t.TempDir(), "run.log")
	configureLogger(logPath, true)

	require.NotNil(t, globalLogger)
	assert.Same(t, globalLogger, slog.Default())
	assert.True(t, globalLogger.Enabled(context.Background(), slog.LevelDebug))
}

func TestDefaultLogFilename(t *testing.T) {
	assert.NotEmpty(t, defaultLogFilename())
}

func chdirTemp(t *testing.T) string {
	t.Helper()

	tempDir := t.TempDir()
	originalWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tempDir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(originalWD)) })

	return tempDir
}

func TestLoadConfig_MissingFileIsNotAnError(t *testing.T) {
	chdirTemp(t)

	v := viper.New()
	require.NoError(t, loadConfig(v))
	assert.Equal(t, configFileName, v.ConfigFileUsed())
}

func TestLoadConfig_ReadsFileFromWorkingDirectory(t *testing.T) {
	dir := chdirTemp(t)
	content := "scan:\n  depth: 3\n  exclude_dirs:\n    - node_modules\nclean:\n  doc: true\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), []byte(content), 0o600))

	v := viper.New()
	require.NoError(t, loadConfig(v))

	assert.Equal(t, 3, v.GetInt(depthConfigKey))
	assert.Equal(t, []string{"node_modules"}, v.GetStringSlice(excludeDirsConfigKey))
	assert.True(t, v.GetBool(docConfigKey))
}

func TestLoadConfig_IgnoresOtherConfigExtensions(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, configBaseName+".json"), []byte(`{"scan":{"depth":3}}`), 0o600))

	v := viper.New()
	require.NoError(t, loadConfig(v))
	assert.False(t, v.IsSet(depthConfigKey))
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), []byte("scan: [unclosed\n"), 0o600))

	err := loadConfig(viper.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file "+configFileName)
}
