/*
 * Copyright 2026 Hewlett Packard Enterprise Development LP
 * Other additional copyright holders may be indicated within.
 *
 * The entirety of this work is licensed under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 *
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

// Package config describes the switch inventory consumed by the CLI's list
// command: which switchtec device special files exist on this node and what
// they are called.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

const defaultConfig = `
version: v1
metadata:
  name: Default Switchtec Inventory
switches:
  - path: /dev/switchtec0
    metadata:
      name: PAX 0
  - path: /dev/switchtec1
    metadata:
      name: PAX 1
`

// Switch describes one switchtec management endpoint.
type Switch struct {
	Path     string
	Metadata struct {
		Name string
	}
}

// ConfigFile is the top-level structure
type ConfigFile struct {
	Version  string
	Metadata struct {
		Name string
	}
	Switches []Switch
}

// Load reads the switch inventory from path, or the built-in default
// inventory when path is empty.
func Load(path string) (*ConfigFile, error) {
	data := []byte(defaultConfig)

	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, err
		}
	}

	config := new(ConfigFile)
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, err
	}

	if len(config.Switches) == 0 {
		return nil, fmt.Errorf("configuration %q lists no switches", config.Metadata.Name)
	}

	return config, nil
}
