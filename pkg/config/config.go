/*-
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package config pkg/config/config.go
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// LoadFile loads a JSON or YAML file (chosen by extension) from path into
// the struct pointed to by dst.
func LoadFile(path string, dst interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file '%s': %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, dst); err != nil {
			return fmt.Errorf("failed to unmarshal YAML from '%s': %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, dst); err != nil {
			return fmt.Errorf("failed to unmarshal JSON from '%s': %w", path, err)
		}
	}

	return nil
}

// ApplyEnv loads envFile (when it exists) into the process environment and
// overlays matching variables onto dst. Variables already set in the
// environment win over the file.
func ApplyEnv(prefix, envFile string, dst interface{}) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load env file '%s': %w", envFile, err)
		}
	}

	if err := envconfig.Process(prefix, dst); err != nil {
		return fmt.Errorf("%w: %w", errEnvOverlay, err)
	}

	return nil
}

// ValidateConfig validates a configuration if it implements Validator.
func ValidateConfig(cfg interface{}) error {
	if v, ok := cfg.(Validator); ok {
		return v.Validate()
	}

	return nil
}

type loadOptions struct {
	envPrefix string
	envFile   string
	useEnv    bool
}

type Option func(*loadOptions)

// WithEnv enables the environment overlay using prefix and an optional
// dotenv file.
func WithEnv(prefix, envFile string) Option {
	return func(o *loadOptions) {
		o.useEnv = true
		o.envPrefix = prefix
		o.envFile = envFile
	}
}

// LoadAndValidate applies defaults, loads the file at path (skipped when
// path is empty), overlays the environment when requested and validates.
func LoadAndValidate(path string, cfg interface{}, opts ...Option) error {
	o := loadOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	if d, ok := cfg.(Defaulter); ok {
		d.SetDefaults()
	}

	if path != "" {
		if err := LoadFile(path, cfg); err != nil {
			return err
		}
	}

	if o.useEnv {
		if err := ApplyEnv(o.envPrefix, o.envFile, cfg); err != nil {
			return err
		}
	}

	return ValidateConfig(cfg)
}
