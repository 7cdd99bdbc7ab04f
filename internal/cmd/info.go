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

	"github.com/NearNodeFlash/switchtec-user-go/pkg/switchtec"
)

// InfoCmd defines the Info CLI command and parameters
type InfoCmd struct {
	Device string `kong:"arg,required,type='existingFile',env='SWITCHTEC_DEV',help='The switchtec device.'"`
}

// Run will execute the Info CLI Command
func (cmd *InfoCmd) Run() error {
	return run(cmd.Device, func(dev *switchtec.Device) error {
		name, err := dev.Name()
		if err != nil {
			return err
		}

		version, err := dev.FirmwareVersion()
		if err != nil {
			return err
		}

		phase, err := dev.BootPhase()
		if err != nil {
			return err
		}

		gen, err := dev.Generation()
		if err != nil {
			return err
		}

		partition, err := dev.Partition()
		if err != nil {
			return err
		}

		fmt.Printf("Name:        %s\n", name)
		fmt.Printf("FW Version:  %s\n", version)
		fmt.Printf("Boot Phase:  %s\n", phase)
		fmt.Printf("Generation:  %s\n", gen)
		fmt.Printf("Partition:   %d\n", partition)

		return nil
	})
}
