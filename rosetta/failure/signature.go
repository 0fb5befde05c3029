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

// InvalidSignature is the failure for a signature that is not 65 bytes of hex.
type InvalidSignature struct {
	Description Description
}

func (i InvalidSignature) Error() string {
	return fmt.Sprintf("invalid signature: %s", i.Description)
}

// UnverifiedSignature is the failure for a signature that does not recover to
// the claimed public key in either byte ordering.
type UnverifiedSignature struct {
	Description Description
}

func (u UnverifiedSignature) Error() string {
	return fmt.Sprintf("signature not verified: %s", u.Description)
}

// UnsupportedSignatureType is the failure for a signature type other than
// ecdsa_recovery in a transaction signing context.
type UnsupportedSignatureType struct {
	Description Description
	Type        string
}

func (u UnsupportedSignatureType) Error() string {
	return fmt.Sprintf("unsupported signature type (type: %s): %s", u.Type, u.Description)
}
