package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/crmdeck/internal/app"
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

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
// Values from the --config YAML file are applied first; explicitly set flags
// override them.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("crmdeck", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
crmdeck - The component engine behind the CRM dashboard.

Usage:
  crmdeck [options] [MANIFESTS_PATH]

Arguments:
  MANIFESTS_PATH
    Path to a single .hcl manifest file or a directory containing .hcl files.

Options:
`)
		flagSet.PrintDefaults()
	}

	manifestsFlag := flagSet.String("manifests", "", "Path to the component manifests file or directory.")
	mFlag := flagSet.String("m", "", "Path to the component manifests file or directory (shorthand).")
	configFlag := flagSet.String("config", "", "Path to a YAML config file.")
	portFlag := flagSet.Int("port", 0, "Port for the dashboard HTTP server. 0 uses the default.")
	catalogFlag := flagSet.String("catalog-url", "", "Base URL of the remote component catalog. Empty disables remote loading.")
	logFormatFlag := flagSet.String("log-format", "json", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	devFlag := flagSet.Bool("dev", false, "Enable the manifest watcher and the reload websocket.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	var base app.Config
	if *configFlag != "" {
		fileCfg, err := app.LoadConfigFile(*configFlag)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		base = *fileCfg
	}

	path := base.ManifestsPath
	if *manifestsFlag != "" {
		path = *manifestsFlag
	} else if *mFlag != "" {
		path = *mFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Manifests path determined.", "path", path)

	if path == "" {
		slog.Debug("No manifests path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}
	base.ManifestsPath = path

	// Explicitly set flags win over the config file.
	set := make(map[string]bool)
	flagSet.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if set["port"] {
		base.ListenPort = *portFlag
	}
	if set["catalog-url"] {
		base.CatalogURL = *catalogFlag
	}
	if set["dev"] {
		base.Dev = *devFlag
	}
	if set["log-format"] || base.LogFormat == "" {
		base.LogFormat = *logFormatFlag
	}
	if set["log-level"] || base.LogLevel == "" {
		base.LogLevel = *logLevelFlag
	}

	logFormat := strings.ToLower(base.LogFormat)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}
	base.LogFormat = logFormat

	logLevel := strings.ToLower(base.LogLevel)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	base.LogLevel = logLevel
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(base)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
