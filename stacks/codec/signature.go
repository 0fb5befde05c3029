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

package codec

import (
	"bytes"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
)

// The compact signature header encodes the recovery ID with an offset of 27,
// plus 4 for a compressed public key.
const compactSigHeader = 27 + 4

// RecoverPublicKey recovers the compressed public key from a wire-order
// recoverable signature over the given digest. The wire order is the recovery
// byte followed by r and s.
func RecoverPublicKey(digest [HashLength]byte, signature [SignatureLength]byte) ([]byte, error) {

	if signature[0] > 1 {
		return nil, fmt.Errorf("invalid recovery byte (have: %#x)", signature[0])
	}

	compact := make([]byte, SignatureLength)
	compact[0] = compactSigHeader + signature[0]
	copy(compact[1:], signature[1:])

	publicKey, _, err := ecdsa.RecoverCompact(compact, digest[:])
	if err != nil {
		return nil, fmt.Errorf("could not recover public key: %w", err)
	}

	return publicKey.SerializeCompressed(), nil
}

// VerifySignature returns true iff the recovered public key of the signature
// over the digest equals the expected compressed key byte-for-byte.
func VerifySignature(digest [HashLength]byte, signature [SignatureLength]byte, expected []byte) bool {
	recovered, err := RecoverPublicKey(digest, signature)
	if err != nil {
		return false
	}
	return bytes.Equal(recovered, expected)
}
