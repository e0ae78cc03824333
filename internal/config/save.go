package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileHeader = "# Waterscape configuration.\n# The scene section is reloaded while the demo runs.\n"

// WriteTo encodes the config as commented YAML.
func (c *Config) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString(fileHeader)

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return 0, fmt.Errorf("encoding config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return 0, fmt.Errorf("encoding config: %w", err)
	}
	return buf.WriteTo(w)
}

// SaveTo writes the config to path, creating parent directories.
// A path of "-" writes to standard output.
func (c *Config) SaveTo(path string) error {
	if path == "-" {
		_, err := c.WriteTo(os.Stdout)
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	if _, err := c.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
