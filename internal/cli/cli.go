package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/vk/pixelgridgo/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// envConfig holds the environment-variable overrides. Flags take precedence
// over the environment, which takes precedence over built-in defaults.
type envConfig struct {
	LogLevel  string `env:"PIXELGRIDGO_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"PIXELGRIDGO_LOG_FORMAT" envDefault:"json"`
	LockPath  string `env:"PIXELGRIDGO_LOCK"`
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	var envCfg envConfig
	if err := env.Parse(&envCfg); err != nil {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("parse env: %v", err)}
	}

	flagSet := flag.NewFlagSet("pixelgridgo", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
PixelGridGo - Parameter schema toolkit for the pixel generator effect suite.

Usage:
  pixelgridgo [options] [EFFECT]

Arguments:
  EFFECT
    Type name of a single effect to describe. Omit to describe all effects.

Options:
`)
		flagSet.PrintDefaults()
	}

	presetFlag := flagSet.String("preset", "", "Path to a preset file or directory to validate against the schemas.")
	lockFlag := flagSet.String("lock", envCfg.LockPath, "Path to the schema lock file guarding shipped parameter IDs.")
	writeLockFlag := flagSet.Bool("write-lock", false, "Write the lock file from the current schemas instead of checking it.")
	outputFlag := flagSet.String("output", "text", "Describe output format. Options: 'text' or 'json'.")
	logFormatFlag := flagSet.String("log-format", envCfg.LogFormat, "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", envCfg.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	effect := ""
	if flagSet.NArg() > 0 {
		effect = flagSet.Arg(0)
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: "at most one EFFECT argument is accepted"}
	}

	outputFormat := strings.ToLower(*outputFlag)
	if outputFormat != "text" && outputFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid output: must be 'text' or 'json'"}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	if *writeLockFlag && *lockFlag == "" {
		return nil, false, &ExitError{Code: 2, Message: "-write-lock requires -lock (or PIXELGRIDGO_LOCK) to name the file"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		Effect:     effect,
		PresetPath: *presetFlag,
		LockPath:   *lockFlag,
		WriteLock:  *writeLockFlag,
		Output:     outputFormat,
		LogFormat:  logFormat,
		LogLevel:   logLevel,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
