package main

import (
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/dhamidi/taml/parser"
)

const configName = ".taml.yaml"

// Config holds CLI defaults, read from .taml.yaml in the working
// directory or the home directory. Flags override it.
type Config struct {
	MaxDepth int    `yaml:"maxDepth"`
	Format   string `yaml:"format"`
}

func defaultConfig() Config {
	return Config{
		MaxDepth: parser.DefaultMaxDepth,
		Format:   "json",
	}
}

func loadConfig() Config {
	cfg := defaultConfig()
	for _, dir := range configDirs() {
		data, err := os.ReadFile(filepath.Join(dir, configName))
		if err != nil {
			continue
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return defaultConfig()
		}
		break
	}
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = parser.DefaultMaxDepth
	}
	return cfg
}

func configDirs() []string {
	dirs := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, home)
	}
	return dirs
}

// readInput reads the named file, or stdin for "-".
func readInput(filename string) (string, error) {
	if filename == "-" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(filename)
	return string(data), err
}
