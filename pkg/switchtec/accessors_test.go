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
	"testing"

	. "github.com/onsi/gomega"
)

func openFake(t *testing.T, f *fakeLib) *Device {
	t.Helper()

	dev, err := open(f, "/dev/switchtec0")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(dev.Close)

	return dev
}

func TestNameAccessor(t *testing.T) {
	g := NewWithT(t)

	dev := openFake(t, &fakeLib{nameBytes: []byte("switchtec0")})
	g.Expect(dev.Name()).To(Equal("switchtec0"))
}

func TestNameAccessorNoValue(t *testing.T) {
	g := NewWithT(t)

	// A NULL name means the library has no value, not that the call failed.
	dev := openFake(t, &fakeLib{nameBytes: nil})
	g.Expect(dev.Name()).To(Equal(""))
}

func TestNameAccessorInvalid(t *testing.T) {
	g := NewWithT(t)

	dev := openFake(t, &fakeLib{nameBytes: []byte{0xc3, 0x28}})

	_, err := dev.Name()
	g.Expect(err).To(MatchError(ErrInvalidData))
}

func TestFirmwareVersionAccessor(t *testing.T) {
	g := NewWithT(t)

	dev := openFake(t, &fakeLib{fwBytes: []byte("3.70 B04F")})
	g.Expect(dev.FirmwareVersion()).To(Equal("3.70 B04F"))
}

func TestFirmwareVersionFailure(t *testing.T) {
	g := NewWithT(t)

	dev := openFake(t, &fakeLib{fwResult: -1, lastErr: []byte("Interface unsupported")})

	_, err := dev.FirmwareVersion()
	g.Expect(err).To(MatchError(ErrOperationFailed))
	g.Expect(err.Error()).To(ContainSubstring("Interface unsupported"))
}

func TestBootPhaseAccessor(t *testing.T) {
	g := NewWithT(t)

	for value, phase := range map[int32]BootPhase{
		1:      BootPhaseBL1,
		2:      BootPhaseBL2,
		3:      BootPhaseFW,
		0:      BootPhaseUnknown,
		0xffff: BootPhaseUnknown,
	} {
		dev := openFake(t, &fakeLib{phase: value})
		g.Expect(dev.BootPhase()).To(Equal(phase))
	}
}

func TestGenerationAccessor(t *testing.T) {
	g := NewWithT(t)

	for value, gen := range map[int32]Generation{
		0:  Gen3,
		1:  Gen4,
		2:  Gen5,
		3:  GenUnknown,
		-1: GenUnknown,
	} {
		dev := openFake(t, &fakeLib{gen: value})
		g.Expect(dev.Generation()).To(Equal(gen))
	}
}

func TestPartitionAccessor(t *testing.T) {
	g := NewWithT(t)

	dev := openFake(t, &fakeLib{part: 1})
	g.Expect(dev.Partition()).To(Equal(1))
}

func TestPartitionFailure(t *testing.T) {
	g := NewWithT(t)

	dev := openFake(t, &fakeLib{part: -1, lastErr: []byte("Invalid partition")})

	_, err := dev.Partition()
	g.Expect(err).To(MatchError(ErrOperationFailed))
}

func TestDieTempAccessor(t *testing.T) {
	g := NewWithT(t)

	// The hardware reports hundredths of a degree.
	dev := openFake(t, &fakeLib{temp: 2850})
	g.Expect(dev.DieTemp()).To(Equal(float32(28.5)))
}

func TestDieTempFailure(t *testing.T) {
	g := NewWithT(t)

	dev := openFake(t, &fakeLib{temp: -1, lastErr: []byte("Temperature sensor unavailable")})

	_, err := dev.DieTemp()
	g.Expect(err).To(MatchError(ErrOperationFailed))
}

func TestEnumStrings(t *testing.T) {
	g := NewWithT(t)

	g.Expect(BootPhaseBL1.String()).To(Equal("BL1"))
	g.Expect(BootPhaseFW.String()).To(Equal("FW"))
	g.Expect(BootPhaseUnknown.String()).To(Equal("Unknown"))
	g.Expect(Gen4.String()).To(Equal("Gen4"))
	g.Expect(GenUnknown.String()).To(Equal("Unknown"))
}
