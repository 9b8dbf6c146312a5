// Copyright 2020-2022 Dolthub, Inc.
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

package main

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v2"
)

// Config selects which reference plugins the demo composes, read from an
// optional sibling TOML manifest. A plain struct populated before
// constructing the engine, no framework — mirroring the teacher's
// server.Config consumed directly by _example/main.go.
type Config struct {
	Plugins []string `toml:"plugins"`
}

// defaultConfig composes all three reference plugins, in the same fixed
// order as plugins.Descriptors. Their kinds do not overlap, so the order
// does not change which handler wins; "eq" dispatch is fixed by the
// registry, not by this list.
func defaultConfig() Config {
	return Config{Plugins: []string{"numeric", "stringx", "boolean"}}
}

// loadConfig reads path as a TOML manifest. A missing file is not an
// error: the caller falls back to defaultConfig().
func loadConfig(path string) (Config, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, false, nil
		}
		return Config{}, false, err
	}
	var cfg Config
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Config{}, false, err
	}
	return cfg, true, nil
}

// overrideManifest is the shape of the alternate YAML override format:
// a "disabled" list of node kinds, used by loadDisabledKinds to let an
// operator temporarily pull misbehaving kinds out of the composed
// interpreter without forking the plugin.
type overrideManifest struct {
	Disabled []string `yaml:"disabled"`
}

// loadDisabledKinds reads path (typically config.yaml sitting next to
// config.toml) for a list of node kinds that should be dropped from the
// composed interpreter after defaults.Defaults has built it. A missing
// file yields an empty, non-error result.
func loadDisabledKinds(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var m overrideManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m.Disabled, nil
}

// siblingPath swaps ext onto path, preserving its directory and base name.
func siblingPath(path, ext string) string {
	trimmed := strings.TrimSuffix(path, ".toml")
	return trimmed + ext
}
