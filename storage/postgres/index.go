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

// Package postgres implements the read-only index projection on top of the
// indexer-owned Postgres database. This service never writes to the schema.
package postgres

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/optakt/stacks-rosetta/models/stacks"
)

// Index reads the chain projections from Postgres.
type Index struct {
	db *gorm.DB
}

// Open connects to the database behind the given DSN.
func Open(dsn string) (*gorm.DB, error) {

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("could not open database: %w", err)
	}

	return db, nil
}

// NewIndex creates an index on top of the given database handle.
func NewIndex(db *gorm.DB) *Index {

	i := Index{
		db: db,
	}

	return &i
}

// First returns the first indexed block.
func (i *Index) First() (stacks.Block, bool, error) {
	var block Block
	err := i.db.Order("height asc").First(&block).Error
	return result(block, err)
}

// Current returns the latest indexed block.
func (i *Index) Current() (stacks.Block, bool, error) {
	var block Block
	err := i.db.Order("height desc").First(&block).Error
	return result(block, err)
}

// BlockByHeight returns the block at the given height.
func (i *Index) BlockByHeight(height uint64) (stacks.Block, bool, error) {
	var block Block
	err := i.db.Where("height = ?", height).First(&block).Error
	return result(block, err)
}

// BlockByHash returns the block with the given hash.
func (i *Index) BlockByHash(hash string) (stacks.Block, bool, error) {
	var block Block
	err := i.db.Where("hash = ?", strings.ToLower(hash)).First(&block).Error
	return result(block, err)
}

// BlockTransactions returns the canonical transactions of a block.
func (i *Index) BlockTransactions(blockHash string) ([]stacks.Transaction, error) {

	var txs []Transaction
	err := i.db.
		Where("block_hash = ? AND canonical", strings.ToLower(blockHash)).
		Order("tx_id asc").
		Find(&txs).Error
	if err != nil {
		return nil, fmt.Errorf("could not query block transactions: %w", err)
	}

	rows := make([]stacks.Transaction, 0, len(txs))
	for _, tx := range txs {
		rows = append(rows, tx.row())
	}

	return rows, nil
}

// Transaction returns the canonical transaction with the given identifier.
func (i *Index) Transaction(txID string) (stacks.Transaction, bool, error) {

	var tx Transaction
	err := i.db.
		Where("tx_id = ? AND canonical", strings.ToLower(txID)).
		First(&tx).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return stacks.Transaction{}, false, nil
	}
	if err != nil {
		return stacks.Transaction{}, false, fmt.Errorf("could not query transaction: %w", err)
	}

	return tx.row(), true, nil
}

// MempoolTransactions returns a page of pending transactions.
func (i *Index) MempoolTransactions(limit uint, offset uint) ([]stacks.Transaction, error) {

	var txs []Transaction
	err := i.db.
		Where("status = ?", stacks.StatusPending).
		Order("tx_id asc").
		Limit(int(limit)).
		Offset(int(offset)).
		Find(&txs).Error
	if err != nil {
		return nil, fmt.Errorf("could not query mempool transactions: %w", err)
	}

	rows := make([]stacks.Transaction, 0, len(txs))
	for _, tx := range txs {
		rows = append(rows, tx.row())
	}

	return rows, nil
}

// MempoolTransaction returns the pending transaction with the given
// identifier.
func (i *Index) MempoolTransaction(txID string) (stacks.Transaction, bool, error) {

	var tx Transaction
	err := i.db.
		Where("tx_id = ? AND status = ?", strings.ToLower(txID), stacks.StatusPending).
		First(&tx).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return stacks.Transaction{}, false, nil
	}
	if err != nil {
		return stacks.Transaction{}, false, fmt.Errorf("could not query mempool transaction: %w", err)
	}

	return tx.row(), true, nil
}

// Balance returns the balance snapshot of an account at or before the given
// height.
func (i *Index) Balance(address string, height uint64) (uint64, bool, error) {

	var balance Balance
	err := i.db.
		Where("address = ? AND height <= ?", address, height).
		Order("height desc").
		First(&balance).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("could not query balance: %w", err)
	}

	return balance.Balance, true, nil
}

func result(block Block, err error) (stacks.Block, bool, error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return stacks.Block{}, false, nil
	}
	if err != nil {
		return stacks.Block{}, false, fmt.Errorf("could not query block: %w", err)
	}
	return block.row(), true, nil
}
