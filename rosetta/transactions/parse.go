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
	"fmt"
	"strconv"

	"github.com/optakt/stacks-rosetta/models/stacks"
	"github.com/optakt/stacks-rosetta/rosetta/failure"
	"github.com/optakt/stacks-rosetta/rosetta/identifier"
	"github.com/optakt/stacks-rosetta/rosetta/object"
	"github.com/optakt/stacks-rosetta/stacks/address"
	"github.com/optakt/stacks-rosetta/stacks/codec"
)

// ParseTransaction translates a decoded transaction back into the canonical
// operation list: the fee debit at index zero, the transfer debit at index
// one and the transfer credit at index two, with coin changes keyed on the
// transaction hash. For a signed transaction it additionally recovers the
// signer's account from the signature. Statuses stay empty; they only apply
// to mined or pending transactions.
func (p *Parser) ParseTransaction(tx *codec.Transaction, signed bool) ([]object.Operation, []identifier.Account, error) {

	sender := address.Encode(p.params.AddressVersion, tx.Signer)
	recipient := address.Encode(tx.Payload.RecipientVersion, tx.Payload.RecipientHash)

	txHash := codec.TxHash(codec.Serialize(tx))
	hash := codec.EncodeHex(txHash[:])

	operations := Operations(hash, sender, recipient, tx.Payload.Amount, tx.Fee, "")

	if !signed {
		return operations, nil, nil
	}

	preHash := codec.PreSignHash(codec.SigHash(tx), tx.AuthType, tx.Fee, tx.Nonce)
	publicKey, err := codec.RecoverPublicKey(preHash, tx.Signature)
	if err != nil {
		return nil, nil, failure.UnverifiedSignature{
			Description: failure.NewDescription("could not recover signer from signature",
				failure.WithErr(err),
			),
		}
	}

	signerAddress, err := address.FromPublicKey(publicKey, p.params)
	if err != nil {
		return nil, nil, fmt.Errorf("could not derive signer address: %w", err)
	}

	signers := []identifier.Account{
		{Address: signerAddress},
	}

	return operations, signers, nil
}

// Operations renders the canonical operation list of a token transfer. The
// status is left empty in construction contexts and set to the transaction's
// status for indexed and mempool transactions.
func Operations(txHash string, sender string, recipient string, amount uint64, fee uint64, status string) []object.Operation {

	currency := identifier.Currency{
		Symbol:   stacks.Symbol,
		Decimals: stacks.Decimals,
	}

	operations := []object.Operation{
		{
			ID:        identifier.Operation{Index: 0},
			Type:      stacks.OperationFee,
			Status:    status,
			AccountID: identifier.Account{Address: sender},
			Amount: &object.Amount{
				Value:    negative(fee),
				Currency: currency,
			},
		},
		{
			ID:        identifier.Operation{Index: 1},
			Type:      stacks.OperationTransfer,
			Status:    status,
			AccountID: identifier.Account{Address: sender},
			Amount: &object.Amount{
				Value:    negative(amount),
				Currency: currency,
			},
			CoinChange: &object.CoinChange{
				CoinID:     identifier.Coin{Identifier: fmt.Sprintf("%s:1", txHash)},
				CoinAction: object.CoinSpent,
			},
		},
		{
			ID:         identifier.Operation{Index: 2},
			RelatedIDs: []identifier.Operation{{Index: 1}},
			Type:       stacks.OperationTransfer,
			Status:     status,
			AccountID:  identifier.Account{Address: recipient},
			Amount: &object.Amount{
				Value:    strconv.FormatUint(amount, 10),
				Currency: currency,
			},
			CoinChange: &object.CoinChange{
				CoinID:     identifier.Coin{Identifier: fmt.Sprintf("%s:2", txHash)},
				CoinAction: object.CoinCreated,
			},
		},
	}

	return operations
}

func negative(value uint64) string {
	if value == 0 {
		return "0"
	}
	return "-" + strconv.FormatUint(value, 10)
}
