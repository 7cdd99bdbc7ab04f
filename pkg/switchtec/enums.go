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

// BootPhase reports which stage of the switch boot sequence the management
// firmware is executing. Values match enum switchtec_boot_phase.
type BootPhase int32

const (
	BootPhaseBL1 BootPhase = 1
	BootPhaseBL2 BootPhase = 2
	BootPhaseFW  BootPhase = 3

	BootPhaseUnknown BootPhase = 0xffff
)

func bootPhaseFromValue(v int32) BootPhase {
	switch p := BootPhase(v); p {
	case BootPhaseBL1, BootPhaseBL2, BootPhaseFW:
		return p
	}
	return BootPhaseUnknown
}

func (p BootPhase) String() string {
	switch p {
	case BootPhaseBL1:
		return "BL1"
	case BootPhaseBL2:
		return "BL2"
	case BootPhaseFW:
		return "FW"
	}
	return "Unknown"
}

// Generation identifies the Switchtec hardware generation. Values match
// enum switchtec_gen.
type Generation int32

const (
	Gen3 Generation = 0
	Gen4 Generation = 1
	Gen5 Generation = 2

	GenUnknown Generation = 3
)

func generationFromValue(v int32) Generation {
	switch g := Generation(v); g {
	case Gen3, Gen4, Gen5:
		return g
	}
	return GenUnknown
}

func (g Generation) String() string {
	switch g {
	case Gen3:
		return "Gen3"
	case Gen4:
		return "Gen4"
	case Gen5:
		return "Gen5"
	}
	return "Unknown"
}
