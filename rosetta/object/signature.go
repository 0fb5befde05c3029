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

package object

import (
	"github.com/optakt/stacks-rosetta/rosetta/identifier"
)

// Curve and signature types supported for transaction signing.
const (
	CurveSecp256k1         = "secp256k1"
	SignatureEcdsaRecovery = "ecdsa_recovery"
	SignatureEcdsa         = "ecdsa"
)

// PublicKey represents a compressed secp256k1 public key.
type PublicKey struct {
	HexBytes  string `json:"hex_bytes"`
	CurveType string `json:"curve_type"`
}

// SigningPayload is the payload a wallet signs, bound to the account that must
// produce the signature.
type SigningPayload struct {
	Address       string              `json:"address,omitempty"`
	AccountID     *identifier.Account `json:"account_identifier,omitempty"`
	HexBytes      string              `json:"hex_bytes"`
	SignatureType string              `json:"signature_type,omitempty"`
}

// Signature contains a signature produced by a wallet over a signing payload.
type Signature struct {
	SigningPayload SigningPayload `json:"signing_payload"`
	PublicKey      PublicKey      `json:"public_key"`
	SignatureType  string         `json:"signature_type"`
	HexBytes       string         `json:"hex_bytes"`
}
