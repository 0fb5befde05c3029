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

package rosetta

import (
	"github.com/optakt/stacks-rosetta/rosetta/identifier"
	"github.com/optakt/stacks-rosetta/rosetta/object"
	"github.com/optakt/stacks-rosetta/rosetta/transactions"
	"github.com/optakt/stacks-rosetta/stacks/codec"
)

// Parser is used by the Rosetta Construction API to translate between
// operation lists and wire-format transactions.
type Parser interface {
	DeriveAddress(publicKey []byte) (account identifier.Account, err error)
	DeriveIntent(operations []object.Operation) (intent *transactions.Intent, err error)
	CompileTransaction(intent *transactions.Intent, metadata object.Metadata, publicKey []byte) (tx *codec.Transaction, err error)
	ParseTransaction(tx *codec.Transaction, signed bool) (operations []object.Operation, signers []identifier.Account, err error)
	AttachSignature(tx *codec.Transaction, signature object.Signature) (signed *codec.Transaction, err error)
	HashTransaction(tx *codec.Transaction) (txID identifier.Transaction, err error)
}
