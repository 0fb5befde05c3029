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

// Package transactions binds the abstract Rosetta operations to the concrete
// wire format of the chain. It translates operation lists into transfer
// intents, compiles intents into unsigned transactions, parses transactions
// back into operations and attaches wallet signatures.
package transactions

import (
	"github.com/optakt/stacks-rosetta/models/stacks"
	"github.com/optakt/stacks-rosetta/rosetta/failure"
	"github.com/optakt/stacks-rosetta/rosetta/identifier"
	"github.com/optakt/stacks-rosetta/stacks/address"
)

// Validator validates the accounts and currencies referenced by operations.
type Validator interface {
	Account(account identifier.Account) error
	Currency(currency identifier.Currency) (identifier.Currency, error)
}

// Parser translates between Rosetta operations and wire-format transactions.
// It is stateless; a single instance serves all requests concurrently.
type Parser struct {
	params   stacks.Params
	validate Validator
}

// NewParser creates a parser for the given chain parameters.
func NewParser(params stacks.Params, validate Validator) *Parser {

	p := Parser{
		params:   params,
		validate: validate,
	}

	return &p
}

// DeriveAddress derives the account identifier of a compressed secp256k1
// public key on the configured chain.
func (p *Parser) DeriveAddress(publicKey []byte) (identifier.Account, error) {

	addr, err := address.FromPublicKey(publicKey, p.params)
	if err != nil {
		return identifier.Account{}, failure.InvalidKey{
			Description: failure.NewDescription("could not derive address from public key",
				failure.WithErr(err),
			),
		}
	}

	account := identifier.Account{
		Address: addr,
	}

	return account, nil
}
