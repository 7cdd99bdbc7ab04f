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

//go:build !cgo || !linux

package bindings

// Stubs for builds without the C library. Every open fails, and the
// last-error indicator explains why, so callers see an ordinary NotFound
// instead of a link error.

const notBuilt = "switchtec library not available in this build"

func Open([]byte) Handle { return 0 }

func Close(Handle) {}

func LastError() []byte { return []byte(notBuilt) }

func Name(Handle) []byte { return nil }

func FirmwareVersion(Handle, []byte) int { return -1 }

func BootPhase(Handle) int32 { return -1 }

func Generation(Handle) int32 { return -1 }

func Partition(Handle) int32 { return -1 }

func DieTemp(Handle) float32 { return -1 }
