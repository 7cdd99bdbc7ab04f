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
	"bytes"
	"strings"
	"unicode/utf8"
)

// textFromCString converts the copied bytes of a C string into an owned Go
// string. A NULL pointer arrives here as a nil slice and reads as "": some
// library calls report "no value" that way, so it is not an error.
func textFromCString(op string, b []byte) (string, error) {
	if len(b) == 0 {
		return "", nil
	}

	if !utf8.Valid(b) {
		return "", opError(op, ErrInvalidData, "string is not valid utf-8")
	}

	return string(b), nil
}

// textFromBuffer extracts text from a fixed-size out buffer. The candidate
// ends at the first NUL byte; trailing padding past it is discarded. A
// buffer with no NUL is taken whole.
func textFromBuffer(op string, buf []byte) (string, error) {
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		buf = buf[:i]
	}

	if !utf8.Valid(buf) {
		return "", opError(op, ErrInvalidData, "buffer is not valid utf-8")
	}

	return string(buf), nil
}

// pathBytes encodes a device path for the library's open call. Paths with
// an embedded NUL cannot round-trip through a C string and are rejected
// before any library call is made.
func pathBytes(path string) ([]byte, error) {
	if strings.IndexByte(path, 0) >= 0 {
		return nil, opError("open", ErrInvalidData, "path %q contains an embedded NUL byte", path)
	}

	return []byte(path), nil
}
