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

package postgres

import (
	"github.com/optakt/stacks-rosetta/models/stacks"
)

// Block maps the indexer-owned blocks table. Hashes are stored as lowercase
// hex with `0x` prefix; timestamps are milliseconds since epoch.
type Block struct {
	Height     uint64 `gorm:"column:height;primaryKey"`
	Hash       string `gorm:"column:hash"`
	ParentHash string `gorm:"column:parent_hash"`
	Timestamp  int64  `gorm:"column:timestamp"`
}

func (Block) TableName() string {
	return "blocks"
}

func (b Block) row() stacks.Block {
	return stacks.Block{
		Height:     b.Height,
		Hash:       b.Hash,
		ParentHash: b.ParentHash,
		Timestamp:  b.Timestamp,
	}
}

// Transaction maps the indexer-owned transactions table. Pending transactions
// have no block reference and carry the pending status.
type Transaction struct {
	TxID        string `gorm:"column:tx_id;primaryKey"`
	BlockHash   string `gorm:"column:block_hash"`
	BlockHeight uint64 `gorm:"column:block_height"`
	Type        string `gorm:"column:type"`
	Status      string `gorm:"column:status"`
	Sender      string `gorm:"column:sender_address"`
	Recipient   string `gorm:"column:recipient_address"`
	Amount      uint64 `gorm:"column:amount"`
	Fee         uint64 `gorm:"column:fee"`
	Nonce       uint64 `gorm:"column:nonce"`
	Canonical   bool   `gorm:"column:canonical"`
}

func (Transaction) TableName() string {
	return "transactions"
}

func (t Transaction) row() stacks.Transaction {
	return stacks.Transaction{
		TxID:        t.TxID,
		BlockHash:   t.BlockHash,
		BlockHeight: t.BlockHeight,
		Type:        t.Type,
		Status:      t.Status,
		Sender:      t.Sender,
		Recipient:   t.Recipient,
		Amount:      t.Amount,
		Fee:         t.Fee,
		Nonce:       t.Nonce,
	}
}

// Balance maps the indexer-owned balance snapshot table: one row per account
// per height at which the balance changed.
type Balance struct {
	Address string `gorm:"column:address;primaryKey"`
	Height  uint64 `gorm:"column:height;primaryKey"`
	Balance uint64 `gorm:"column:balance"`
}

func (Balance) TableName() string {
	return "balances"
}
