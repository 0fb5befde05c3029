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

package mocks

import (
	"errors"

	"github.com/optakt/stacks-rosetta/rosetta/identifier"
	"github.com/optakt/stacks-rosetta/rosetta/object"
)

// DummyError is used to check error propagation in tests.
var DummyError = errors.New("dummy error")

// Retriever mocks the Data API retriever with function fields.
type Retriever struct {
	OldestFunc              func() (identifier.Block, int64, error)
	CurrentFunc             func() (identifier.Block, int64, error)
	BlockFunc               func(block identifier.Block) (object.Block, error)
	TransactionFunc         func(block identifier.Block, txID identifier.Transaction) (object.Transaction, error)
	BalancesFunc            func(block identifier.Block, account identifier.Account, currencies []identifier.Currency) (identifier.Block, []object.Amount, error)
	MempoolTransactionsFunc func(limit uint, offset uint) ([]identifier.Transaction, error)
	MempoolTransactionFunc  func(txID identifier.Transaction) (object.Transaction, error)
}

func (r *Retriever) Oldest() (identifier.Block, int64, error) {
	return r.OldestFunc()
}

func (r *Retriever) Current() (identifier.Block, int64, error) {
	return r.CurrentFunc()
}

func (r *Retriever) Block(block identifier.Block) (object.Block, error) {
	return r.BlockFunc(block)
}

func (r *Retriever) Transaction(block identifier.Block, txID identifier.Transaction) (object.Transaction, error) {
	return r.TransactionFunc(block, txID)
}

func (r *Retriever) Balances(block identifier.Block, account identifier.Account, currencies []identifier.Currency) (identifier.Block, []object.Amount, error) {
	return r.BalancesFunc(block, account, currencies)
}

func (r *Retriever) MempoolTransactions(limit uint, offset uint) ([]identifier.Transaction, error) {
	return r.MempoolTransactionsFunc(limit, offset)
}

func (r *Retriever) MempoolTransaction(txID identifier.Transaction) (object.Transaction, error) {
	return r.MempoolTransactionFunc(txID)
}
