// handles the demoserve.yaml config file and command-line flags
package config

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// ConfigFile is looked up in the current directory at startup.
// Missing file means defaults.
const ConfigFile = "demoserve.yaml"

type Config struct {
	Host             string        `yaml:"host"`             // Interface to bind (default: all interfaces)
	Port             int           `yaml:"port"`             // TCP port (default: 8000)
	RootDir          string        `yaml:"rootDir"`          // Directory to serve files from
	LiveReload       bool          `yaml:"liveReload"`       // Enable the /events auto-reload endpoint
	DebounceDuration time.Duration `yaml:"debounceDuration"` // File watcher debounce (default: 300ms)
	ShutdownTimeout  time.Duration `yaml:"shutdownTimeout"`  // Graceful shutdown timeout (default: 5s)
}

// Default returns the built-in configuration. RootDir defaults to the
// directory containing the running executable, falling back to the
// current directory when that can't be resolved (e.g. under `go run`).
func Default() *Config {
	root := "."
	if exe, err := os.Executable(); err == nil {
		root = filepath.Dir(exe)
	}

	return &Config{
		Host:             "",
		Port:             8000,
		RootDir:          root,
		LiveReload:       true,
		DebounceDuration: 300 * time.Millisecond,
		ShutdownTimeout:  5 * time.Second,
	}
}

// Load builds the effective configuration: defaults, then demoserve.yaml
// if present, then command-line flags on top.
func Load(args []string) *Config {
	cfg := Default()

	if data, err := os.ReadFile(ConfigFile); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			log.Printf("Failed to parse %s, using defaults: %v", ConfigFile, err)
			cfg = Default()
		}
	}

	fs := flag.NewFlagSet("demoserve", flag.ExitOnError)
	host := fs.String("host", cfg.Host, "The host/IP to bind to (empty for all interfaces)")
	port := fs.Int("port", cfg.Port, "The port to listen on")
	dir := fs.String("dir", cfg.RootDir, "Directory to serve")
	noReload := fs.Bool("no-reload", !cfg.LiveReload, "Disable live reload")
	_ = fs.Parse(args)

	cfg.Host = *host
	cfg.Port = *port
	cfg.RootDir = *dir
	cfg.LiveReload = !*noReload

	cfg.validate()
	return cfg
}

// validate clamps values to usable ranges.
func (c *Config) validate() {
	if c.Port < 1 || c.Port > 65535 {
		c.Port = 8000
	}
	if c.RootDir == "" {
		c.RootDir = "."
	}
	if c.DebounceDuration <= 0 {
		c.DebounceDuration = 300 * time.Millisecond
	}
	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = 5 * time.Second
	}
}
