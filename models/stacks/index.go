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

package stacks

// Block is the projection of an indexed block used by the Rosetta Data API.
type Block struct {
	Height     uint64
	Hash       string
	ParentHash string
	Timestamp  int64
}

// Transaction is the projection of an indexed transaction. For token transfers
// the sender, recipient and amount fields are populated; for other payload
// types only the sender and fee are meaningful.
type Transaction struct {
	TxID        string
	BlockHash   string
	BlockHeight uint64
	Type        string
	Status      string
	Sender      string
	Recipient   string
	Amount      uint64
	Fee         uint64
	Nonce       uint64
}

// Index is the read-only projection of the chain datastore. The indexer owns
// the underlying schema; this service only ever reads from it. Lookups return
// false when the requested entity is not part of the index.
type Index interface {
	First() (Block, bool, error)
	Current() (Block, bool, error)
	BlockByHeight(height uint64) (Block, bool, error)
	BlockByHash(hash string) (Block, bool, error)
	BlockTransactions(blockHash string) ([]Transaction, error)
	Transaction(txID string) (Transaction, bool, error)
	MempoolTransactions(limit uint, offset uint) ([]Transaction, error)
	MempoolTransaction(txID string) (Transaction, bool, error)
	Balance(address string, height uint64) (uint64, bool, error)
}
