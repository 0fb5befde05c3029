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
	"errors"

	"github.com/optakt/stacks-rosetta/rosetta/identifier"
)

// Sentinel errors reported by request shape validation. The validator
// implementation reports these; the handlers map them onto catalog entries.
var (
	ErrInvalidValidation = errors.New("invalid validation input")
	ErrTxBodyEmpty       = errors.New("transaction text is empty")
	ErrSignaturesEmpty   = errors.New("signature list is empty")
	ErrAccountEmpty      = errors.New("account identifier is empty")
	ErrInvalidBlockHash  = errors.New("block hash is not a valid hex digest")
)

// Validator validates the shape of incoming requests along with the accounts,
// currencies and block identifiers they reference.
type Validator interface {
	Request(request interface{}) error
	Account(account identifier.Account) error
	Currency(currency identifier.Currency) (identifier.Currency, error)
	Block(block identifier.Block) error
}
