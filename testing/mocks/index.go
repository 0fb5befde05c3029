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
	"github.com/optakt/stacks-rosetta/models/stacks"
)

// Index mocks the datastore projection with function fields.
type Index struct {
	FirstFunc               func() (stacks.Block, bool, error)
	CurrentFunc             func() (stacks.Block, bool, error)
	BlockByHeightFunc       func(height uint64) (stacks.Block, bool, error)
	BlockByHashFunc         func(hash string) (stacks.Block, bool, error)
	BlockTransactionsFunc   func(blockHash string) ([]stacks.Transaction, error)
	TransactionFunc         func(txID string) (stacks.Transaction, bool, error)
	MempoolTransactionsFunc func(limit uint, offset uint) ([]stacks.Transaction, error)
	MempoolTransactionFunc  func(txID string) (stacks.Transaction, bool, error)
	BalanceFunc             func(address string, height uint64) (uint64, bool, error)
}

func (i *Index) First() (stacks.Block, bool, error) {
	return i.FirstFunc()
}

func (i *Index) Current() (stacks.Block, bool, error) {
	return i.CurrentFunc()
}

func (i *Index) BlockByHeight(height uint64) (stacks.Block, bool, error) {
	return i.BlockByHeightFunc(height)
}

func (i *Index) BlockByHash(hash string) (stacks.Block, bool, error) {
	return i.BlockByHashFunc(hash)
}

func (i *Index) BlockTransactions(blockHash string) ([]stacks.Transaction, error) {
	return i.BlockTransactionsFunc(blockHash)
}

func (i *Index) Transaction(txID string) (stacks.Transaction, bool, error) {
	return i.TransactionFunc(txID)
}

func (i *Index) MempoolTransactions(limit uint, offset uint) ([]stacks.Transaction, error) {
	return i.MempoolTransactionsFunc(limit, offset)
}

func (i *Index) MempoolTransaction(txID string) (stacks.Transaction, bool, error) {
	return i.MempoolTransactionFunc(txID)
}

func (i *Index) Balance(address string, height uint64) (uint64, bool, error) {
	return i.BalanceFunc(address, height)
}
