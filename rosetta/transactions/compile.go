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
	"strconv"

	"github.com/optakt/stacks-rosetta/rosetta/failure"
	"github.com/optakt/stacks-rosetta/rosetta/object"
	"github.com/optakt/stacks-rosetta/stacks/address"
	"github.com/optakt/stacks-rosetta/stacks/codec"
)

// CompileTransaction assembles the unsigned transaction for a transfer intent.
// The sender's public key determines the signer bytes of the spending
// condition and must derive to the intent's sender address.
func (p *Parser) CompileTransaction(intent *Intent, metadata object.Metadata, publicKey []byte) (*codec.Transaction, error) {

	derived, err := address.FromPublicKey(publicKey, p.params)
	if err != nil {
		return nil, failure.InvalidKey{
			Description: failure.NewDescription("could not parse public key",
				failure.WithErr(err),
			),
			Key: codec.EncodeHex(publicKey),
		}
	}
	if derived != intent.Sender {
		return nil, failure.InvalidKey{
			Description: failure.NewDescription("public key does not match sender address",
				failure.WithString("derived_address", derived),
				failure.WithString("sender_address", intent.Sender),
			),
			Key: codec.EncodeHex(publicKey),
		}
	}

	fee, err := strconv.ParseUint(metadata.Fee, 10, 64)
	if err != nil {
		return nil, failure.InvalidFee{
			Description: failure.NewDescription("could not parse fee",
				failure.WithErr(err),
			),
			Fee: metadata.Fee,
		}
	}

	nonce := uint64(0)
	if metadata.AccountSequence > 0 {
		nonce = uint64(metadata.AccountSequence)
	}
	if metadata.Nonce != nil {
		nonce = *metadata.Nonce
	}

	recipientVersion, recipientHash, err := address.Decode(intent.Recipient)
	if err != nil {
		return nil, failure.InvalidRecipient{
			Description: failure.NewDescription("could not decode recipient address",
				failure.WithErr(err),
			),
			Address: intent.Recipient,
		}
	}

	tx := codec.Transaction{
		Version:           p.params.TransactionVersion,
		ChainID:           p.params.ChainID,
		AuthType:          codec.AuthTypeStandard,
		HashMode:          codec.HashModeP2PKH,
		Signer:            address.Hash160(publicKey),
		Nonce:             nonce,
		Fee:               fee,
		KeyEncoding:       codec.KeyEncodingCompressed,
		AnchorMode:        codec.AnchorModeAny,
		PostConditionMode: codec.PostConditionModeDeny,
		Payload: codec.TokenTransfer{
			RecipientVersion: recipientVersion,
			RecipientHash:    recipientHash,
			Amount:           intent.Amount,
		},
	}

	return &tx, nil
}
