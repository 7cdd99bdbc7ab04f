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

package main

import (
	"github.com/alecthomas/kong"

	cmd "github.com/NearNodeFlash/switchtec-user-go/internal/cmd"
)

var cli struct {
	Debug   bool `kong:"optional,help='Enable debug'"`
	Verbose int  `kong:"optional,hidden,type='counter',help='Debug verbosity level.'"`

	Info cmd.InfoCmd `kong:"cmd,help='Report identity and firmware information for a device.'"`
	Temp cmd.TempCmd `kong:"cmd,help='Report the die temperature of a device.'"`
	List cmd.ListCmd `kong:"cmd,help='Report the state of every switch in the inventory.'"`
}

func main() {
	c := kong.Parse(&cli)

	cmd.ApplyContext(cmd.Context{
		Debug:   cli.Debug,
		Verbose: cli.Verbose,
	})

	err := c.Run()
	c.FatalIfErrorf(err)
}
