package config

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Output modes.
const (
	// ModeStream emits one summary row per applied transaction,
	// in input order.
	ModeStream = "stream"
	// ModeAccounts emits the final state of every account,
	// ordered by client id.
	ModeAccounts = "accounts"
)

type (
	// Config represents an application configuration.
	Config struct {
		// Path to the transactions CSV file.
		// Taken from the first positional argument.
		Input string `yaml:"input" env:"INPUT_FILE"`
		// Where to write the summary CSV. Empty means stdout.
		Output string `yaml:"output" env:"OUTPUT_FILE"`
		// Output mode: "stream" or "accounts".
		Mode string `yaml:"mode" env:"OUTPUT_MODE"`
		// Render an account table to stderr after the run.
		Report bool `yaml:"report" env:"REPORT"`
		// Subconfig.
		Logger Logger `yaml:"logger"`
	}
	// Config for application's logger.
	Logger struct {
		// Path to store log files. Empty disables the file sink.
		Path string `yaml:"path" env:"LOG_PATH"`
		// Application logging level.
		Level string `yaml:"level" env:"LOG_LEVEL"`
		// Log files details.
		MaxSizeMB  int `yaml:"max_size_mb"`
		MaxBackups int `yaml:"max_backups"`
		MaxAgeDays int `yaml:"max_age_days"`
	}
)

// MustLoad returns an application configuration which is populated
// from the given configuration file, flags and environment variables.
// It exits the process when the result is not usable.
func MustLoad() *Config {
	var cfg Config

	// Configuration yaml file path. Optional: flags and environment
	// variables cover the whole configuration surface.
	configPath := flag.String("config", "", "path to the config file")

	output := flag.String("output", "", "write the summary CSV to a file instead of stdout")
	mode := flag.String("mode", "", `output mode: "stream" or "accounts"`)
	report := flag.Bool("report", false, "render an account table to stderr after the run")
	flag.Parse()

	// Load from YAML cfg file.
	if *configPath != "" {
		file, err := os.Open(*configPath)
		if err != nil {
			log.Fatalf("failed to open config file: %s", *configPath)
		}
		if err = cleanenv.ParseYAML(file, &cfg); err != nil {
			log.Fatalf("failed to parse config file: %s", *configPath)
		}
		if err = file.Close(); err != nil {
			log.Fatalf("failed to close config file: %s", *configPath)
		}
	}

	// Explicit flags override the file.
	if *output != "" {
		cfg.Output = *output
	}
	if *mode != "" {
		cfg.Mode = *mode
	}
	if *report {
		cfg.Report = true
	}

	// Read environment variables.
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("failed to read environment variables: %v", err)
	}

	if cfg.Input == "" {
		cfg.Input = flag.Arg(0)
	}
	if cfg.Mode == "" {
		cfg.Mode = ModeStream
	}

	if err := cfg.validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	return &cfg
}

func (cfg *Config) validate() error {
	if cfg.Input == "" {
		return errors.New("no transactions file: pass its path as the first argument")
	}
	switch cfg.Mode {
	case ModeStream, ModeAccounts:
	default:
		return fmt.Errorf("unknown output mode %q", cfg.Mode)
	}
	return nil
}
