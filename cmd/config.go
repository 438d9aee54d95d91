package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"cleanrec.dev/pkg/cleanrec/internal/adapter"
	"cleanrec.dev/pkg/cleanrec/internal/domain"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "cargo-clean-recursive"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	docFlagName         = "doc"
	releaseFlagName     = "release"
	depthFlagName       = "depth"
	pathFlagName        = "path"
	excludeDirsFlagName = "exclude-dirs"
	strictFlagName      = "strict"
	dryRunFlagName      = "dry-run"
	programFlagName     = "program"
	logFileFlagName     = "log-file"
	verboseFlagName     = "verbose"

	// legacyExcludeDirsFlagName is the spelling used by earlier releases.
	legacyExcludeDirsFlagName = "exclude_dirs"

	docConfigKey         = "clean.doc"
	releaseConfigKey     = "clean.release"
	strictConfigKey      = "clean.strict"
	dryRunConfigKey      = "clean.dry_run"
	depthConfigKey       = "scan.depth"
	pathConfigKey        = "scan.path"
	excludeDirsConfigKey = "scan.exclude_dirs"
	programConfigKey     = "tool.program"

	envPrefix = "CARGO_CLEAN_RECURSIVE"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	fallbackLogFilename  = ".cargo-clean-recursive.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

// configLoadErr holds a config file that exists but could not be read. It is
// reported when a command runs rather than at package init.
var configLoadErr error

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(docConfigKey, false)
	viper.SetDefault(releaseConfigKey, false)
	viper.SetDefault(strictConfigKey, false)
	viper.SetDefault(dryRunConfigKey, false)
	viper.SetDefault(depthConfigKey, domain.DefaultDepth)
	viper.SetDefault(pathConfigKey, "")
	viper.SetDefault(excludeDirsConfigKey, []string{})
	viper.SetDefault(programConfigKey, adapter.DefaultProgram)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename())
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	configLoadErr = loadConfig(viper.GetViper())
}

// loadConfig reads cargo-clean-recursive.yaml from the working directory into
// v. A missing file is not an error.
func loadConfig(v *viper.Viper) error {
	v.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}

		return fmt.Errorf("reading config file %s: %w", configFileName, err)
	}

	return nil
}

// defaultLogFilename places the log under the user cache directory so runs
// from arbitrary working directories do not litter them.
func defaultLogFilename() string {
	cacheDir, err := os.UserCacheDir()
	if err != nil || cacheDir == "" {
		return fallbackLogFilename
	}

	return filepath.Join(cacheDir, configBaseName, "run.log")
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = fallbackLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
