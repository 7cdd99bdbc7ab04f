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

//go:build cgo && linux

package bindings

/*
#cgo LDFLAGS: -lswitchtec
#include <stdlib.h>
#include <string.h>
#include <switchtec/switchtec.h>
*/
import "C"
import "unsafe"

func dev(h Handle) *C.struct_switchtec_dev {
	return (*C.struct_switchtec_dev)(unsafe.Pointer(uintptr(h)))
}

// cstringBytes copies a NUL-terminated C string into Go memory without
// decoding it. NULL maps to nil.
func cstringBytes(p *C.char) []byte {
	if p == nil {
		return nil
	}
	return C.GoBytes(unsafe.Pointer(p), C.int(C.strlen(p)))
}

// Open calls switchtec_open. The caller has already rejected paths with
// embedded NUL bytes.
func Open(path []byte) Handle {
	cpath := C.CString(string(path))
	defer C.free(unsafe.Pointer(cpath))

	return Handle(uintptr(unsafe.Pointer(C.switchtec_open(cpath))))
}

// Close calls switchtec_close. The handle must not be used afterwards.
func Close(h Handle) {
	C.switchtec_close(dev(h))
}

// LastError reads switchtec_strerror. The indicator is process-global and
// valid only until the next failing library call.
func LastError() []byte {
	return cstringBytes(C.switchtec_strerror())
}

func Name(h Handle) []byte {
	return cstringBytes(C.switchtec_name(dev(h)))
}

// FirmwareVersion fills buf from switchtec_get_fw_version and returns the
// reported byte length, negative on failure.
func FirmwareVersion(h Handle, buf []byte) int {
	return int(C.switchtec_get_fw_version(dev(h), (*C.char)(unsafe.Pointer(&buf[0])), C.size_t(len(buf))))
}

func BootPhase(h Handle) int32 {
	return int32(C.switchtec_boot_phase(dev(h)))
}

func Generation(h Handle) int32 {
	return int32(C.switchtec_gen(dev(h)))
}

func Partition(h Handle) int32 {
	return int32(C.switchtec_partition(dev(h)))
}

// DieTemp returns the die temperature from switchtec_die_temp in hundredths
// of a degree Celsius, negative on failure.
func DieTemp(h Handle) float32 {
	return float32(C.switchtec_die_temp(dev(h)))
}
