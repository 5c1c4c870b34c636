// Copyright 2023-2024 daviszhen
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package util

import (
	"github.com/BurntSushi/toml"
)

type SortOptions struct {
	Locale         string `toml:"locale"`
	DateFormat     string `toml:"dateFormat"`
	SortEmptyCells bool   `toml:"sortEmptyCells"`
	Schema         string `toml:"schema"`
}

type DebugOptions struct {
	PrintConfig   bool   `toml:"printConfig"`
	PrintRegistry bool   `toml:"printRegistry"`
	LogLevel      string `toml:"logLevel"`
}

type Config struct {
	Sort  SortOptions  `toml:"sort"`
	Debug DebugOptions `toml:"debug"`
}

// DefaultConfig is used when no config file is found.
func DefaultConfig() *Config {
	return &Config{
		Sort: SortOptions{
			Locale: "en",
		},
		Debug: DebugOptions{
			LogLevel: "info",
		},
	}
}

// LoadConfig decodes a toml file on top of DefaultConfig.
func LoadConfig(path string) (*Config, error) {
	conf := DefaultConfig()
	_, err := toml.DecodeFile(path, conf)
	if err != nil {
		return nil, err
	}
	return conf, nil
}
