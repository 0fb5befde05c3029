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

package transactions

import (
	"github.com/btcsuite/btcd/btcec/v2"

	"github.com/optakt/stacks-rosetta/rosetta/failure"
	"github.com/optakt/stacks-rosetta/rosetta/object"
	"github.com/optakt/stacks-rosetta/stacks/address"
	"github.com/optakt/stacks-rosetta/stacks/codec"
)

// AttachSignature verifies a wallet signature against the unsigned transaction
// and injects it into the authorization slot. The wire order is the recovery
// byte followed by r and s, but many wallets produce r, s, recovery; both
// orderings are accepted by locating the recovery byte and normalizing. When
// neither ordering verifies against the claimed public key, the signature is
// rejected rather than guessed at.
func (p *Parser) AttachSignature(tx *codec.Transaction, signature object.Signature) (*codec.Transaction, error) {

	if signature.SignatureType != "" && signature.SignatureType != object.SignatureEcdsaRecovery {
		return nil, failure.UnsupportedSignatureType{
			Description: failure.NewDescription("transaction signing requires a recoverable signature"),
			Type:        signature.SignatureType,
		}
	}

	raw, err := codec.DecodeHex(signature.HexBytes)
	if err != nil {
		return nil, failure.InvalidSignature{
			Description: failure.NewDescription("could not decode signature hex",
				failure.WithErr(err),
			),
		}
	}
	if len(raw) != codec.SignatureLength {
		return nil, failure.InvalidSignature{
			Description: failure.NewDescription("invalid signature length",
				failure.WithInt("have", len(raw)),
				failure.WithInt("want", codec.SignatureLength),
			),
		}
	}

	publicKey, err := codec.DecodeHex(signature.PublicKey.HexBytes)
	if err != nil {
		return nil, failure.InvalidKey{
			Description: failure.NewDescription("could not decode public key hex",
				failure.WithErr(err),
			),
			Key: signature.PublicKey.HexBytes,
		}
	}
	_, err = btcec.ParsePubKey(publicKey)
	if err != nil {
		return nil, failure.InvalidKey{
			Description: failure.NewDescription("could not parse public key",
				failure.WithErr(err),
			),
			Key: signature.PublicKey.HexBytes,
		}
	}
	if address.Hash160(publicKey) != tx.Signer {
		return nil, failure.InvalidKey{
			Description: failure.NewDescription("public key does not match transaction signer"),
			Key:         signature.PublicKey.HexBytes,
		}
	}

	preHash := codec.PreSignHash(codec.SigHash(tx), tx.AuthType, tx.Fee, tx.Nonce)

	for _, candidate := range orderings(raw) {
		if !codec.VerifySignature(preHash, candidate, publicKey) {
			continue
		}
		signed := *tx
		signed.Signature = candidate
		signed.KeyEncoding = codec.KeyEncodingCompressed
		return &signed, nil
	}

	return nil, failure.UnverifiedSignature{
		Description: failure.NewDescription("signature does not verify against public key",
			failure.WithString("public_key", signature.PublicKey.HexBytes),
		),
	}
}

// orderings returns the wire-order candidates of a 65-byte signature: as-is
// when the leading byte is a valid recovery ID, and rotated to the front when
// the trailing byte is.
func orderings(raw []byte) [][codec.SignatureLength]byte {

	var candidates [][codec.SignatureLength]byte

	if raw[0] <= 1 {
		var vrs [codec.SignatureLength]byte
		copy(vrs[:], raw)
		candidates = append(candidates, vrs)
	}

	if raw[codec.SignatureLength-1] <= 1 {
		var rsv [codec.SignatureLength]byte
		rsv[0] = raw[codec.SignatureLength-1]
		copy(rsv[1:], raw[:codec.SignatureLength-1])
		candidates = append(candidates, rsv)
	}

	return candidates
}
