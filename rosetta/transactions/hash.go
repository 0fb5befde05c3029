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
	"github.com/optakt/stacks-rosetta/rosetta/failure"
	"github.com/optakt/stacks-rosetta/rosetta/identifier"
	"github.com/optakt/stacks-rosetta/stacks/codec"
)

// HashTransaction computes the transaction identifier of a signed
// transaction. Unsigned transactions have no identifier on the chain, so they
// are rejected.
func (p *Parser) HashTransaction(tx *codec.Transaction) (identifier.Transaction, error) {

	if !codec.IsSigned(tx) {
		return identifier.Transaction{}, failure.UnsignedTransaction{
			Description: failure.NewDescription("transaction has no valid signature"),
		}
	}

	hash := codec.TxHash(codec.Serialize(tx))

	txID := identifier.Transaction{
		Hash: codec.EncodeHex(hash[:]),
	}

	return txID, nil
}
