// Copyright 2021 Optakt Labs OÜ
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package failure

import (
	"fmt"
)

// InvalidCurve is the failure for a public key on an unsupported curve.
type InvalidCurve struct {
	Description Description
	CurveType   string
}

func (i InvalidCurve) Error() string {
	return fmt.Sprintf("invalid curve type (curve: %s): %s", i.CurveType, i.Description)
}

// InvalidKey is the failure for hex that is not a valid 33-byte compressed
// secp256k1 point, or for a key that does not match the claimed sender.
type InvalidKey struct {
	Description Description
	Key         string
}

func (i InvalidKey) Error() string {
	return fmt.Sprintf("invalid public key (key: %s): %s", i.Key, i.Description)
}
