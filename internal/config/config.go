package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultOutput is where the report is written when nothing overrides it.
const DefaultOutput = "Bainum_Project_Annual_Report.docx"

// EnvOutput overrides the output path.
const EnvOutput = "ANNUALREPORT_OUTPUT"

type Config struct {
	Output  string `yaml:"output"`
	Verbose bool   `yaml:"verbose"`
}

// Default returns the configuration used when no file or environment
// override is present.
func Default() *Config {
	return &Config{Output: DefaultOutput}
}

// LoadConfig builds the configuration from defaults, an optional YAML file
// at path, and the environment. A .env file in the working directory is
// loaded first if present. An empty path skips the YAML file.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env if exists
	_ = godotenv.Load()

	cfg := Default()

	// 2. Load YAML config
	if path != "" {
		file, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(file, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
		if cfg.Output == "" {
			cfg.Output = DefaultOutput
		}
	}

	// 3. Override with Environment Variables if present
	if output := os.Getenv(EnvOutput); output != "" {
		cfg.Output = output
	}

	return cfg, nil
}
