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
)

// Retriever is used by the Rosetta Data API to read the projections of the
// chain datastore. Timestamps are given in milliseconds since epoch.
type Retriever interface {
	Oldest() (block identifier.Block, timestamp int64, err error)
	Current() (block identifier.Block, timestamp int64, err error)
	Block(block identifier.Block) (result object.Block, err error)
	Transaction(block identifier.Block, txID identifier.Transaction) (result object.Transaction, err error)
	Balances(block identifier.Block, account identifier.Account, currencies []identifier.Currency) (resolved identifier.Block, amounts []object.Amount, err error)
	MempoolTransactions(limit uint, offset uint) (txIDs []identifier.Transaction, err error)
	MempoolTransaction(txID identifier.Transaction) (result object.Transaction, err error)
}
