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

// Package bindings holds the thin cgo surface over the switchtec-user C
// library. It applies no policy of its own: a zero Handle stands for a NULL
// switchtec_dev pointer, a nil byte slice stands for a NULL string pointer,
// and negative lengths pass through untouched. All validation, decoding and
// error translation happen above in pkg/switchtec.
package bindings

// Handle is an opaque reference to one open switchtec_dev session. The zero
// value is NULL.
type Handle uintptr
