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

package cmd

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/NearNodeFlash/switchtec-user-go/internal/config"
	"github.com/NearNodeFlash/switchtec-user-go/pkg/switchtec"
)

// ListCmd walks the switch inventory and reports the state of each device.
// Switches that cannot be opened are reported and skipped, not fatal.
type ListCmd struct {
	Config string `kong:"optional,type='existingFile',help='Path to a switch inventory file.'"`
}

// Run will execute the List CLI Command
func (cmd *ListCmd) Run() error {
	cfg, err := config.Load(cmd.Config)
	if err != nil {
		return err
	}

	log.Infof("Listing inventory %q", cfg.Metadata.Name)

	for _, sw := range cfg.Switches {
		err := run(sw.Path, func(dev *switchtec.Device) error {
			version, err := dev.FirmwareVersion()
			if err != nil {
				return err
			}

			gen, err := dev.Generation()
			if err != nil {
				return err
			}

			fmt.Printf("%-12s %-20s %-6s FW %s\n", sw.Metadata.Name, sw.Path, gen, version)

			return nil
		})

		if err != nil {
			log.WithError(err).Warnf("Switch %s unavailable", sw.Path)
			fmt.Printf("%-12s %-20s unavailable\n", sw.Metadata.Name, sw.Path)
		}
	}

	return nil
}
