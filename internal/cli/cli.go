package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/specialistvlad/randscenario/internal/app"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitUsage    = 2
	ExitScenario = 3
	ExitOutput   = 4
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
	// Err is the classified cause, if any.
	Err error
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Unwrap returns the classified cause.
func (e *ExitError) Unwrap() error {
	return e.Err
}

const usageText = `
randscenario - generate random realizations of a declarative scenario.

Usage:
  randscenario [options] <scenario_path> <output_dir> <file_count>

Arguments:
  scenario_path
    Scenario file (.hcl, .toml, .yaml, .yml or .json).
  output_dir
    Destination directory. It must not exist yet.
  file_count
    Number of realizations to write, one file each.

Options:
`

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("randscenario", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, usageText)
		flagSet.PrintDefaults()
	}

	var seed *uint64
	flagSet.Func("seed", "Base seed (unsigned 64-bit). Defaults to the scenario's seed, then a random one.", func(s string) error {
		v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return errors.New("must be an unsigned 64-bit integer")
		}
		seed = &v
		return nil
	})
	workersFlag := flagSet.Int("workers", app.DefaultWorkers, "Number of realizations generated concurrently.")
	formatFlag := flagSet.String("format", app.DefaultFormat, "Output format. Options: 'csv', 'json', 'toml', 'yaml', 'hcl'.")
	prefixFlag := flagSet.String("prefix", "", "Output file name prefix. Defaults to the scenario file name without extension.")
	metricsFlag := flagSet.String("metrics-file", "", "Write run metrics in Prometheus text format to this file.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error(), Err: err}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() != 3 {
		flagSet.Usage()
		return nil, false, &ExitError{
			Code:    ExitUsage,
			Message: fmt.Sprintf("expected 3 arguments (scenario_path, output_dir, file_count), got %d", flagSet.NArg()),
		}
	}

	count, err := strconv.Atoi(flagSet.Arg(2))
	if err != nil || count < 0 {
		return nil, false, &ExitError{
			Code:    ExitUsage,
			Message: fmt.Sprintf("invalid file_count %q: must be a non-negative integer", flagSet.Arg(2)),
		}
	}
	if *workersFlag < 1 {
		return nil, false, &ExitError{Code: ExitUsage, Message: "invalid workers: must be at least 1"}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: ExitUsage, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, &ExitError{Code: ExitUsage, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		ScenarioPath: flagSet.Arg(0),
		OutputDir:    flagSet.Arg(1),
		Count:        count,
		Seed:         seed,
		Workers:      *workersFlag,
		Format:       strings.ToLower(*formatFlag),
		Prefix:       *prefixFlag,
		MetricsFile:  *metricsFlag,
		LogFormat:    logFormat,
		LogLevel:     logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error(), Err: err}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
