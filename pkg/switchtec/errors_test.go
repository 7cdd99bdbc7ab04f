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
	"testing"
)

func TestErrorFormat(t *testing.T) {
	err := opError("open", ErrNotFound, "no device at %q", "/dev/switchtec0")

	expected := `switchtec open: no device at "/dev/switchtec0"`
	if err.Error() != expected {
		t.Errorf("Expected: %s Actual: %s", expected, err.Error())
	}

	if !errors.Is(err, ErrNotFound) {
		t.Error("Kind not reachable through errors.Is")
	}
	if errors.Is(err, ErrOperationFailed) {
		t.Error("Error matches the wrong kind")
	}
}

func TestLastErrorTranslation(t *testing.T) {
	f := &fakeLib{lastErr: []byte("Permission denied")}

	err := lastError(f, "open", ErrNotFound)
	if err.Msg != "Permission denied" {
		t.Errorf("Indicator text not carried: %q", err.Msg)
	}
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound classification: %v", err)
	}
}
