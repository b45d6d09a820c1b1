package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/kinetic/internal/catalog"
	"github.com/alexisbeaulieu97/kinetic/internal/clip"
	"github.com/alexisbeaulieu97/kinetic/internal/config"
	"github.com/alexisbeaulieu97/kinetic/internal/logger"
)

// newClipboard is replaced in tests.
var newClipboard = func() clip.Clipboard {
	return clip.NewSystem()
}

// AppContext bundles what every command needs once flags are parsed.
type AppContext struct {
	Settings  config.Settings
	Catalog   *catalog.Catalog
	Clipboard clip.Clipboard
	Logger    *logger.Logger

	rootLog *logger.Logger
}

type rootFlags struct {
	configPath string
	verbose    bool
	logFile    string
}

// ownsTerminal marks commands whose stdout belongs to a TUI or a protocol.
const ownsTerminal = "owns-terminal"

// load reads settings and opens the logger for cmd.
func (app *AppContext) load(cmd *cobra.Command, flags *rootFlags) error {
	path := flags.configPath
	if path == "" {
		defaultPath, err := config.DefaultPath()
		if err != nil {
			return newCommandError("start", "determining settings path", err, "Ensure your HOME directory is set correctly or pass --config.")
		}
		path = defaultPath
	}

	settings, err := config.Load(path)
	if err != nil {
		return newCommandError("start", "loading settings from "+path, err, "Fix the settings file or pass --config pointing at another one.")
	}
	app.Settings = settings

	log, err := openLogger(cmd, flags, settings.Log)
	if err != nil {
		return newCommandError("start", "opening log", err, "Check --log-file and the log section of your settings.")
	}
	app.rootLog = log
	app.Logger = log.WithFields(map[string]any{
		"command":        cmd.Name(),
		"correlation_id": logger.NewCorrelationID(),
	})

	cat, err := catalog.Default()
	if err != nil {
		return newCommandError("start", "loading the component catalog", err, "This is a bug in kinetic; please report it.")
	}
	app.Catalog = cat
	app.Clipboard = newClipboard()
	return nil
}

// openLogger writes to the log file when one is configured. Commands that
// own the terminal log nowhere otherwise, everything else logs to stderr.
func openLogger(cmd *cobra.Command, flags *rootFlags, settings config.LogSettings) (*logger.Logger, error) {
	level := settings.Level
	if flags.verbose {
		level = "debug"
	}

	file := flags.logFile
	if file == "" {
		file = settings.File
	}

	if file == "" {
		if _, owns := cmd.Annotations[ownsTerminal]; owns {
			return logger.Nop(), nil
		}
		if !flags.verbose {
			level = "warn"
		}
		return logger.New(logger.Options{Level: level, HumanReadable: true, Writer: cmd.ErrOrStderr()})
	}

	return logger.New(logger.Options{Level: level, HumanReadable: settings.HumanReadable, File: file})
}

func (app *AppContext) close() {
	_ = app.rootLog.Close()
}
