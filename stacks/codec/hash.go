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
	"crypto/sha512"
	"encoding/binary"
)

// HashLength is the length of all transaction digests.
const HashLength = 32

// TxHash computes the transaction identifier: SHA-512/256 over the full
// transaction serialization.
func TxHash(data []byte) [HashLength]byte {
	return sha512.Sum512_256(data)
}

// SigHash computes the structural hash of a transaction: the digest of its
// serialization with the spending condition cleared, meaning zero fee, zero
// nonce, zero-filled signature and compressed key encoding. The hash is
// invariant under signing, which is what lets every endpoint recompute it.
func SigHash(tx *Transaction) [HashLength]byte {
	cleared := *tx
	cleared.Fee = 0
	cleared.Nonce = 0
	cleared.KeyEncoding = KeyEncodingCompressed
	cleared.Signature = [SignatureLength]byte{}
	return TxHash(Serialize(&cleared))
}

// PreSignHash computes the digest a wallet signs: the structural hash bound to
// the authorization type and the big-endian fee and nonce.
func PreSignHash(sigHash [HashLength]byte, authType byte, fee uint64, nonce uint64) [HashLength]byte {

	data := make([]byte, 0, HashLength+1+8+8)
	data = append(data, sigHash[:]...)
	data = append(data, authType)
	data = binary.BigEndian.AppendUint64(data, fee)
	data = binary.BigEndian.AppendUint64(data, nonce)

	return sha512.Sum512_256(data)
}
