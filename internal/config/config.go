// Package config loads runtime configuration for clipper
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

const (
	envPrefix               = "CLIPPER"
	defaultAppID            = "clipper"
	defaultStorageFile      = "clipboard.json"
	defaultStorageBackend   = BackendFile
	defaultClipboardCommand = "wl-copy"
	defaultLogLevel         = "warn"
)

// Storage backends
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Config captures everything the store and dispatcher need.
// It is passed explicitly instead of living in package globals.
type Config struct {
	// AppID is the extension id the host routes commands back to
	AppID string

	StorageDir     string
	StorageFile    string
	StorageBackend string

	// IconDir holds the <name>.svg icons referenced by results
	IconDir string

	// ClipboardCommand receives image bytes on stdin for copy-image
	ClipboardCommand string
	// HostCopiesImages makes default-mode image results carry a copy_image
	// action instead of a copy-image command round trip
	HostCopiesImages bool

	LogLevel string
}

// StoragePath returns the full path of the persisted clipboard
func (c Config) StoragePath() string {
	return filepath.Join(c.StorageDir, c.StorageFile)
}

// Icon returns the path of a named result icon
func (c Config) Icon(name string) string {
	return filepath.Join(c.IconDir, name+".svg")
}

// NewViper returns a viper instance with defaults and env bindings configured.
func NewViper() *viper.Viper {
	v := viper.New()
	ApplyDefaults(v)
	return v
}

// ApplyDefaults configures defaults and env bindings on the provided viper instance.
func ApplyDefaults(v *viper.Viper) {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	storageDir := filepath.Join(xdg.DataHome, defaultAppID)

	v.SetDefault("app.id", defaultAppID)
	v.SetDefault("storage.dir", storageDir)
	v.SetDefault("storage.file", defaultStorageFile)
	v.SetDefault("storage.backend", defaultStorageBackend)
	v.SetDefault("icons.dir", filepath.Join(storageDir, "icons"))
	v.SetDefault("clipboard.command", defaultClipboardCommand)
	v.SetDefault("clipboard.host_copy", false)
	v.SetDefault("log.level", defaultLogLevel)
}

// Load parses runtime configuration from viper.
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		AppID:            v.GetString("app.id"),
		StorageDir:       v.GetString("storage.dir"),
		StorageFile:      v.GetString("storage.file"),
		StorageBackend:   strings.ToLower(strings.TrimSpace(v.GetString("storage.backend"))),
		IconDir:          v.GetString("icons.dir"),
		ClipboardCommand: v.GetString("clipboard.command"),
		HostCopiesImages: v.GetBool("clipboard.host_copy"),
		LogLevel:         v.GetString("log.level"),
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	if strings.TrimSpace(c.AppID) == "" {
		return fmt.Errorf("app.id is required")
	}
	if strings.TrimSpace(c.StorageDir) == "" {
		return fmt.Errorf("storage.dir is required")
	}
	if strings.TrimSpace(c.StorageFile) == "" {
		return fmt.Errorf("storage.file is required")
	}
	switch c.StorageBackend {
	case BackendFile, BackendSQLite:
	default:
		return fmt.Errorf("storage.backend must be %q or %q, got %q", BackendFile, BackendSQLite, c.StorageBackend)
	}
	return nil
}
