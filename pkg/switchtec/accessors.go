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

// Accessors are pure reads of current device state. Each performs exactly
// one library call under the shared critical section and reports failure
// immediately; there are no retries and nothing is cached.

// fwVersionLen is the out-buffer size for the firmware version string. The
// library NUL-pads unused space, or fills the buffer entirely.
const fwVersionLen = 64

// Name returns the device name reported by the library. A NULL result means
// the library has no name for the device and reads as "".
func (d *Device) Name() (string, error) {
	mu.Lock()
	defer mu.Unlock()

	h, ok := d.handle()
	if !ok {
		return "", closedError("name")
	}

	return textFromCString("name", d.b.name(h))
}

// FirmwareVersion returns the running firmware version, e.g. "3.70 B04F".
func (d *Device) FirmwareVersion() (string, error) {
	mu.Lock()
	defer mu.Unlock()

	h, ok := d.handle()
	if !ok {
		return "", closedError("firmware version")
	}

	buf := make([]byte, fwVersionLen)
	if n := d.b.firmwareVersion(h, buf); n < 0 {
		return "", lastError(d.b, "firmware version", ErrOperationFailed)
	}

	return textFromBuffer("firmware version", buf)
}

// BootPhase returns the boot stage the management firmware is in. Values
// the library does not recognize report as BootPhaseUnknown; the call
// itself has no failure channel.
func (d *Device) BootPhase() (BootPhase, error) {
	mu.Lock()
	defer mu.Unlock()

	h, ok := d.handle()
	if !ok {
		return BootPhaseUnknown, closedError("boot phase")
	}

	return bootPhaseFromValue(d.b.bootPhase(h)), nil
}

// Generation returns the hardware generation of the switch.
func (d *Device) Generation() (Generation, error) {
	mu.Lock()
	defer mu.Unlock()

	h, ok := d.handle()
	if !ok {
		return GenUnknown, closedError("generation")
	}

	return generationFromValue(d.b.generation(h)), nil
}

// Partition returns the switch partition this device instance manages.
func (d *Device) Partition() (int, error) {
	mu.Lock()
	defer mu.Unlock()

	h, ok := d.handle()
	if !ok {
		return -1, closedError("partition")
	}

	p := d.b.partition(h)
	if p < 0 {
		return -1, lastError(d.b, "partition", ErrOperationFailed)
	}

	return int(p), nil
}

// DieTemp returns the switch die temperature in degrees Celsius. The
// hardware reports hundredths of a degree.
func (d *Device) DieTemp() (float32, error) {
	mu.Lock()
	defer mu.Unlock()

	h, ok := d.handle()
	if !ok {
		return 0, closedError("die temp")
	}

	t := d.b.dieTemp(h)
	if t < 0 {
		return 0, lastError(d.b, "die temp", ErrOperationFailed)
	}

	return t / 100.0, nil
}
