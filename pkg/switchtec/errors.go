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
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	// ErrNotFound indicates the device could not be located or accessed.
	ErrNotFound = errors.New("switchtec: device not found")

	// ErrInvalidData indicates text that could not be decoded, either from
	// a device response or from a path containing an embedded NUL byte.
	ErrInvalidData = errors.New("switchtec: invalid data")

	// ErrOperationFailed indicates any other failure reported by the
	// switchtec library.
	ErrOperationFailed = errors.New("switchtec: operation failed")

	// ErrUnknown indicates the library's error indicator itself was
	// unreadable.
	ErrUnknown = errors.New("switchtec: unknown error")
)

// Error wraps a failure with the operation that detected it. Kind is one of
// the sentinel errors above and is reachable through errors.Is.
type Error struct {
	Op   string
	Kind error
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("switchtec %s: %s", e.Op, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func opError(op string, kind error, format string, args ...interface{}) *Error {
	return &Error{Op: op, Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// lastError translates the library's last-error indicator into an Error of
// the given kind. The indicator is process-global and overwritten by the
// next failing library call, so this must run inside the same critical
// section as the call that failed. An unreadable indicator degrades to
// ErrUnknown instead of failing the translation.
func lastError(b api, op string, kind error) *Error {
	raw := b.lastError()
	if len(raw) == 0 || !utf8.Valid(raw) {
		return &Error{Op: op, Kind: ErrUnknown, Msg: "unknown error"}
	}

	return &Error{Op: op, Kind: kind, Msg: string(raw)}
}

func closedError(op string) *Error {
	return &Error{Op: op, Kind: ErrOperationFailed, Msg: "device is closed"}
}
