// Copyright 2026 The Firn Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package frame

import "gopkg.in/yaml.v2"

// EngineConfig holds engine-wide defaults, analogous in shape to
// sqle.Config in the teacher's engine.go (a small struct of toggles
// the host sets once at construction time).
type EngineConfig struct {
	// CSVHasHeaderDefault is carried in the config and YAML only;
	// ReadCsv does not consult it and always takes has_header from its
	// own arguments.
	CSVHasHeaderDefault bool `yaml:"csv_has_header_default"`
	// CSVDelimiter is the field delimiter Engine.RenderCSV uses (its
	// first byte). ReadCsv does not consult it and always splits on ','.
	CSVDelimiter string `yaml:"csv_delimiter"`
	// LogLevel is a logrus level name ("debug", "info", "warn", "error").
	LogLevel string `yaml:"log_level"`
	// MaxDisplayRows caps RenderDisplay's row output before truncating.
	MaxDisplayRows int `yaml:"max_display_rows"`
}

// DefaultEngineConfig matches the behavior spec.md describes when the
// host supplies no overrides.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		CSVHasHeaderDefault: true,
		CSVDelimiter:        ",",
		LogLevel:            "info",
		MaxDisplayRows:      100,
	}
}

// ParseEngineConfig decodes a YAML document into an EngineConfig,
// starting from DefaultEngineConfig so a partial document only
// overrides the fields it names.
func ParseEngineConfig(doc []byte) (EngineConfig, error) {
	cfg := DefaultEngineConfig()
	if err := yaml.Unmarshal(doc, &cfg); err != nil {
		return EngineConfig{}, err
	}
	return cfg, nil
}
