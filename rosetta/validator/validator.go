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

// Package validator implements the validation of request shapes and of the
// accounts, currencies and block identifiers they reference.
package validator

import (
	"github.com/go-playground/validator/v10"

	"github.com/optakt/stacks-rosetta/models/stacks"
	"github.com/optakt/stacks-rosetta/rosetta/failure"
	"github.com/optakt/stacks-rosetta/rosetta/identifier"
	"github.com/optakt/stacks-rosetta/stacks/address"
	"github.com/optakt/stacks-rosetta/stacks/codec"

	api "github.com/optakt/stacks-rosetta/api/rosetta"
)

// Validator validates incoming requests against the configured chain.
type Validator struct {
	params   stacks.Params
	validate *validator.Validate
}

// New creates a validator for the given chain parameters.
func New(params stacks.Params) *Validator {

	v := Validator{
		params:   params,
		validate: newRequestValidator(),
	}

	return &v
}

// Account validates the address of an account identifier: it must decode as
// c32check and carry the version byte of the configured chain.
func (v *Validator) Account(account identifier.Account) error {
	return address.Validate(account.Address, v.params)
}

// Currency validates a currency against the native token. An unset decimals
// field is filled in with the canonical value; any deviation is rejected.
func (v *Validator) Currency(currency identifier.Currency) (identifier.Currency, error) {

	if currency.Symbol != stacks.Symbol {
		return identifier.Currency{}, failure.InvalidCurrency{
			Description: failure.NewDescription("currency symbol is not the native token"),
			Symbol:      currency.Symbol,
			Decimals:    currency.Decimals,
		}
	}

	if currency.Decimals != 0 && currency.Decimals != stacks.Decimals {
		return identifier.Currency{}, failure.InvalidCurrency{
			Description: failure.NewDescription("currency decimals do not match native token"),
			Symbol:      currency.Symbol,
			Decimals:    currency.Decimals,
		}
	}

	currency.Decimals = stacks.Decimals

	return currency, nil
}

// Block validates the shape of a block identifier. An empty identifier is
// valid and resolves to the current block; a hash, when given, must be a
// 32-byte hex digest.
func (v *Validator) Block(block identifier.Block) error {

	if block.Hash == "" {
		return nil
	}

	data, err := codec.DecodeHex(block.Hash)
	if err != nil || len(data) != codec.HashLength {
		return api.ErrInvalidBlockHash
	}

	return nil
}
