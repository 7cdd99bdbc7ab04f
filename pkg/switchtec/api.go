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

package switchtec

import (
	"github.com/NearNodeFlash/switchtec-user-go/internal/bindings"
)

// api mirrors the switchtec-user call contract at the Go level, keeping the
// C library's signaling conventions: a zero Handle or nil slice stands for a
// NULL pointer, negative numeric results report failure. Having the boundary
// behind an interface lets tests substitute a call-counting stand-in for the
// real library.
type api interface {
	open(path []byte) bindings.Handle
	close(h bindings.Handle)
	lastError() []byte

	name(h bindings.Handle) []byte
	firmwareVersion(h bindings.Handle, buf []byte) int
	bootPhase(h bindings.Handle) int32
	generation(h bindings.Handle) int32
	partition(h bindings.Handle) int32
	dieTemp(h bindings.Handle) float32
}

// lib is the production boundary, backed by the switchtec-user library.
type lib struct{}

func (lib) open(path []byte) bindings.Handle { return bindings.Open(path) }
func (lib) close(h bindings.Handle)          { bindings.Close(h) }
func (lib) lastError() []byte                { return bindings.LastError() }

func (lib) name(h bindings.Handle) []byte                   { return bindings.Name(h) }
func (lib) firmwareVersion(h bindings.Handle, b []byte) int { return bindings.FirmwareVersion(h, b) }
func (lib) bootPhase(h bindings.Handle) int32               { return bindings.BootPhase(h) }
func (lib) generation(h bindings.Handle) int32              { return bindings.Generation(h) }
func (lib) partition(h bindings.Handle) int32               { return bindings.Partition(h) }
func (lib) dieTemp(h bindings.Handle) float32               { return bindings.DieTemp(h) }
