// Package cli provides the command-line interface for clipper
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AbdouB/clipper/internal/clipwriter"
	"github.com/AbdouB/clipper/internal/config"
	"github.com/AbdouB/clipper/internal/db"
	"github.com/AbdouB/clipper/internal/dispatch"
	"github.com/AbdouB/clipper/internal/logging"
	"github.com/AbdouB/clipper/internal/models"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Version is set at build time
var Version = "dev"

var (
	cfgFile    string
	outputText bool // --text flag for human-readable output (default is JSON for the host)

	settings *viper.Viper
	store    *db.Store
	service  *dispatch.Service
	logger   = zap.NewNop()

	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "clipper",
	Short: "Named text and image clips for launcher search",
	Long: `Clipper - a small registry of named text and image clips

The launcher calls clipper once per keystroke or action.

Quick Start:
  clipper search ""                  # "Add text" / "Add image" entries
  clipper search "robot"             # copy entries for matching clips
  clipper search "e robot"           # edit forms for matching clips
  clipper search "d robot"           # delete entries for matching clips
  clipper run add-text --field name=Greeting --field text=hello
  clipper run delete-text-clip 0
  clipper request < request.json     # full host request on stdin`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip setup for help commands
		if cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}
		return setup()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		teardown()
	},
}

// Execute runs the CLI. Errors have already been reported to the host
// when it returns.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		outputError(err)
		teardown()
	}
	return err
}

func init() {
	settings = config.NewViper()

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "Path to configuration file")
	flags.BoolVar(&outputText, "text", false, "Human-readable text output (default is JSON for the host)")
	flags.String("storage-dir", settings.GetString("storage.dir"), "Directory holding the clipboard")
	flags.String("backend", settings.GetString("storage.backend"), "Storage backend (file, sqlite)")
	flags.String("icons-dir", settings.GetString("icons.dir"), "Directory holding result icons")
	flags.String("log-level", settings.GetString("log.level"), "Log level (debug, info, warn, error)")

	bindFlag("storage.dir", "storage-dir")
	bindFlag("storage.backend", "backend")
	bindFlag("icons.dir", "icons-dir")
	bindFlag("log.level", "log-level")

	rootCmd.AddCommand(versionCmd)
}

func bindFlag(key, flag string) {
	if err := settings.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(err)
	}
}

// setup loads configuration and wires the store and dispatcher
func setup() error {
	if cfgFile != "" {
		settings.SetConfigFile(cfgFile)
		if err := settings.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg, err := config.Load(settings)
	if err != nil {
		return err
	}

	logger = logging.NewLogger(cfg.LogLevel, stderr).With(zap.String("invocation", uuid.NewString()))

	store, err = db.Open(cfg, logger.Named("store"))
	if err != nil {
		return fmt.Errorf("failed to open clipboard store: %w", err)
	}

	writer := clipwriter.NewCommandWriter(cfg.ClipboardCommand, logger.Named("clipwriter"))
	service = dispatch.NewService(cfg, store, writer, logger.Named("dispatch"))

	logger.Debug("clipper ready",
		zap.String("storage", store.Location()),
		zap.String("backend", cfg.StorageBackend),
	)
	return nil
}

func teardown() {
	if store != nil {
		store.Close()
		store = nil
	}
	logger.Sync()
}

// outputResult outputs the result in the appropriate format
// Default is JSON (for the host), use --text for human-readable
func outputResult(results []models.Result) {
	if outputText {
		for _, r := range results {
			if r.Description != "" {
				fmt.Fprintf(stdout, "%s\t%s\n", r.Title, r.Description)
			} else {
				fmt.Fprintln(stdout, r.Title)
			}
		}
		return
	}
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	enc.Encode(results)
}

// outputError outputs an error in the appropriate format.
// Validation errors carry a notification for the host to surface.
func outputError(err error) {
	if outputText {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return
	}

	result := map[string]interface{}{
		"status": "error",
		"error":  err.Error(),
	}
	if errors.Is(err, dispatch.ErrValidation) {
		result["notify"] = models.Notification{
			Title:   "Clipboard",
			Message: capitalize(err.Error()),
		}
	}
	enc := json.NewEncoder(stderr)
	enc.Encode(result)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// readInputJSON reads JSON from stdin ("-") or a file
func readInputJSON(input string, v interface{}) error {
	var data []byte
	var err error
	if input == "-" {
		data, err = io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		if len(data) == 0 {
			return fmt.Errorf("%w: no input provided on stdin", dispatch.ErrMalformedArgument)
		}
	} else {
		data, err = os.ReadFile(input)
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: failed to parse JSON: %v", dispatch.ErrMalformedArgument, err)
	}
	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(stdout, "clipper version %s\n", Version)
	},
}
