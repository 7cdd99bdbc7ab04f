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

// Package switchtec provides safe access to Microchip Switchtec PCIe switch
// devices through the switchtec-user library. A Device owns exactly one open
// session on the switch management endpoint; callers open it, read from it,
// and release it with Close, typically deferred:
//
//	dev, err := switchtec.Open("/dev/switchtec0")
//	if err != nil {
//		return err
//	}
//	defer dev.Close()
//
// Failures reported by the library surface as *Error values classified under
// ErrNotFound, ErrInvalidData, ErrOperationFailed or ErrUnknown.
package switchtec

import (
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/NearNodeFlash/switchtec-user-go/internal/bindings"
)

// mu serializes every library call together with its immediate last-error
// read. The error indicator is process-global, so the critical section is
// shared across all Devices, not held per Device.
var mu sync.Mutex

// Device is an exclusive owner of one open switchtec session. It must not
// be copied; the session is released by the first Close and the Device is
// dead afterwards. A Device grants raw access to a single underlying file
// descriptor and is not safe for concurrent use without external locking.
type Device struct {
	b    api
	h    bindings.Handle
	path string

	log *log.Entry
}

// Open binds a session on the switchtec device special file at path. The
// returned Device is valid until Close. A path that cannot be represented
// as a C string fails with ErrInvalidData before the library is consulted;
// a device that cannot be located or accessed fails with ErrNotFound.
func Open(path string) (*Device, error) {
	return open(lib{}, path)
}

func open(b api, path string) (*Device, error) {
	p, err := pathBytes(path)
	if err != nil {
		return nil, err
	}

	mu.Lock()
	defer mu.Unlock()

	h := b.open(p)
	if h == 0 {
		return nil, lastError(b, "open", ErrNotFound)
	}

	dev := &Device{
		b:    b,
		h:    h,
		path: path,
		log:  log.WithField("device", path),
	}

	dev.log.Debug("Device opened")

	return dev, nil
}

// Close releases the device session. Only the first call releases; further
// calls are no-ops, so Close is safe to defer alongside explicit cleanup on
// error paths.
func (d *Device) Close() {
	mu.Lock()
	defer mu.Unlock()

	if d.h == 0 {
		return
	}

	d.b.close(d.h)
	d.h = 0

	d.log.Debug("Device closed")
}

// Path returns the device special file this Device was opened on.
func (d *Device) Path() string { return d.path }

// handle returns the raw session reference for use by accessors. Callers
// must hold mu and must not retain the handle past the call.
func (d *Device) handle() (bindings.Handle, bool) {
	return d.h, d.h != 0
}
