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

// Package retriever translates the read-only projections of the chain
// datastore into Rosetta objects for the Data API.
package retriever

import (
	"fmt"

	"github.com/optakt/stacks-rosetta/models/stacks"
	"github.com/optakt/stacks-rosetta/rosetta/failure"
	"github.com/optakt/stacks-rosetta/rosetta/identifier"
	"github.com/optakt/stacks-rosetta/rosetta/object"
	"github.com/optakt/stacks-rosetta/rosetta/transactions"
)

// Retriever reads blocks, transactions and balances from the index.
type Retriever struct {
	index stacks.Index
}

// New creates a retriever on top of the given index.
func New(index stacks.Index) *Retriever {

	r := Retriever{
		index: index,
	}

	return &r
}

// Oldest returns the identifier and timestamp of the first indexed block.
func (r *Retriever) Oldest() (identifier.Block, int64, error) {

	block, found, err := r.index.First()
	if err != nil {
		return identifier.Block{}, 0, fmt.Errorf("could not look up first block: %w", err)
	}
	if !found {
		return identifier.Block{}, 0, failure.UnknownBlock{
			Description: failure.NewDescription("index contains no blocks"),
		}
	}

	return blockID(block), block.Timestamp, nil
}

// Current returns the identifier and timestamp of the latest indexed block.
func (r *Retriever) Current() (identifier.Block, int64, error) {

	block, found, err := r.index.Current()
	if err != nil {
		return identifier.Block{}, 0, fmt.Errorf("could not look up current block: %w", err)
	}
	if !found {
		return identifier.Block{}, 0, failure.UnknownBlock{
			Description: failure.NewDescription("index contains no blocks"),
		}
	}

	return blockID(block), block.Timestamp, nil
}

// Block returns the block with the given identifier, including all of its
// transactions. An empty identifier resolves to the current block.
func (r *Retriever) Block(rosBlockID identifier.Block) (object.Block, error) {

	block, err := r.resolve(rosBlockID)
	if err != nil {
		return object.Block{}, err
	}

	rows, err := r.index.BlockTransactions(block.Hash)
	if err != nil {
		return object.Block{}, fmt.Errorf("could not look up block transactions: %w", err)
	}

	txs := make([]object.Transaction, 0, len(rows))
	for _, row := range rows {
		txs = append(txs, convert(row))
	}

	parent := identifier.Block{
		Hash: block.ParentHash,
	}
	if block.Height > 0 {
		height := block.Height - 1
		parent.Index = &height
	} else {
		// The genesis block is its own parent, per Rosetta convention.
		parent = blockID(block)
	}

	result := object.Block{
		ID:           blockID(block),
		ParentID:     parent,
		Timestamp:    block.Timestamp,
		Transactions: txs,
	}

	return result, nil
}

// Transaction returns the transaction with the given identifier within the
// given block.
func (r *Retriever) Transaction(rosBlockID identifier.Block, txID identifier.Transaction) (object.Transaction, error) {

	row, found, err := r.index.Transaction(txID.Hash)
	if err != nil {
		return object.Transaction{}, fmt.Errorf("could not look up transaction: %w", err)
	}
	if !found {
		return object.Transaction{}, failure.UnknownTransaction{
			Description: failure.NewDescription("transaction is not part of the index"),
			Hash:        txID.Hash,
		}
	}

	if rosBlockID.Hash != "" && rosBlockID.Hash != row.BlockHash {
		return object.Transaction{}, failure.UnknownTransaction{
			Description: failure.NewDescription("transaction is not part of the given block",
				failure.WithString("block_hash", rosBlockID.Hash),
			),
			Hash: txID.Hash,
		}
	}
	if rosBlockID.Index != nil && *rosBlockID.Index != row.BlockHeight {
		return object.Transaction{}, failure.UnknownTransaction{
			Description: failure.NewDescription("transaction is not part of the given block",
				failure.WithUint64("block_index", *rosBlockID.Index),
			),
			Hash: txID.Hash,
		}
	}

	return convert(row), nil
}

// Balances returns the balances of the given account at the given block, one
// amount per requested currency. An empty block identifier resolves to the
// current block; an account without activity up to the block has a zero
// balance.
func (r *Retriever) Balances(rosBlockID identifier.Block, account identifier.Account, currencies []identifier.Currency) (identifier.Block, []object.Amount, error) {

	block, err := r.resolve(rosBlockID)
	if err != nil {
		return identifier.Block{}, nil, err
	}

	balance, found, err := r.index.Balance(account.Address, block.Height)
	if err != nil {
		return identifier.Block{}, nil, fmt.Errorf("could not look up balance: %w", err)
	}
	if !found {
		balance = 0
	}

	if len(currencies) == 0 {
		currencies = []identifier.Currency{
			{Symbol: stacks.Symbol, Decimals: stacks.Decimals},
		}
	}

	amounts := make([]object.Amount, 0, len(currencies))
	for _, currency := range currencies {
		amounts = append(amounts, object.Amount{
			Value:    fmt.Sprint(balance),
			Currency: currency,
		})
	}

	return blockID(block), amounts, nil
}

// MempoolTransactions returns a page of pending transaction identifiers.
func (r *Retriever) MempoolTransactions(limit uint, offset uint) ([]identifier.Transaction, error) {

	rows, err := r.index.MempoolTransactions(limit, offset)
	if err != nil {
		return nil, fmt.Errorf("could not look up mempool transactions: %w", err)
	}

	txIDs := make([]identifier.Transaction, 0, len(rows))
	for _, row := range rows {
		txIDs = append(txIDs, identifier.Transaction{Hash: row.TxID})
	}

	return txIDs, nil
}

// MempoolTransaction returns a pending transaction, with its operations in
// pending status.
func (r *Retriever) MempoolTransaction(txID identifier.Transaction) (object.Transaction, error) {

	row, found, err := r.index.MempoolTransaction(txID.Hash)
	if err != nil {
		return object.Transaction{}, fmt.Errorf("could not look up mempool transaction: %w", err)
	}
	if !found {
		return object.Transaction{}, failure.UnknownTransaction{
			Description: failure.NewDescription("transaction is not part of the mempool"),
			Hash:        txID.Hash,
		}
	}

	row.Status = stacks.StatusPending

	return convert(row), nil
}

// resolve looks up the block row for a Rosetta block identifier, resolving an
// empty identifier to the current block.
func (r *Retriever) resolve(rosBlockID identifier.Block) (stacks.Block, error) {

	switch {
	case rosBlockID.Hash != "":
		block, found, err := r.index.BlockByHash(rosBlockID.Hash)
		if err != nil {
			return stacks.Block{}, fmt.Errorf("could not look up block by hash: %w", err)
		}
		if !found {
			return stacks.Block{}, unknownBlock(rosBlockID)
		}
		if rosBlockID.Index != nil && *rosBlockID.Index != block.Height {
			return stacks.Block{}, failure.UnknownBlock{
				Description: failure.NewDescription("block hash and index do not match",
					failure.WithString("hash", rosBlockID.Hash),
				),
				Index: *rosBlockID.Index,
				Hash:  rosBlockID.Hash,
			}
		}
		return block, nil

	case rosBlockID.Index != nil:
		block, found, err := r.index.BlockByHeight(*rosBlockID.Index)
		if err != nil {
			return stacks.Block{}, fmt.Errorf("could not look up block by height: %w", err)
		}
		if !found {
			return stacks.Block{}, unknownBlock(rosBlockID)
		}
		return block, nil

	default:
		block, found, err := r.index.Current()
		if err != nil {
			return stacks.Block{}, fmt.Errorf("could not look up current block: %w", err)
		}
		if !found {
			return stacks.Block{}, failure.UnknownBlock{
				Description: failure.NewDescription("index contains no blocks"),
			}
		}
		return block, nil
	}
}

// convert renders an indexed transaction row as a Rosetta transaction. Token
// transfers render the canonical three-operation list; other recognized types
// render the fee operation and a typed operation without amounts.
func convert(row stacks.Transaction) object.Transaction {

	var operations []object.Operation
	if row.Type == stacks.OperationTransfer {
		operations = transactions.Operations(row.TxID, row.Sender, row.Recipient, row.Amount, row.Fee, row.Status)
	} else {
		currency := identifier.Currency{
			Symbol:   stacks.Symbol,
			Decimals: stacks.Decimals,
		}
		fee := "0"
		if row.Fee > 0 {
			fee = fmt.Sprintf("-%d", row.Fee)
		}
		operations = []object.Operation{
			{
				ID:        identifier.Operation{Index: 0},
				Type:      stacks.OperationFee,
				Status:    row.Status,
				AccountID: identifier.Account{Address: row.Sender},
				Amount: &object.Amount{
					Value:    fee,
					Currency: currency,
				},
			},
			{
				ID:        identifier.Operation{Index: 1},
				Type:      row.Type,
				Status:    row.Status,
				AccountID: identifier.Account{Address: row.Sender},
			},
		}
	}

	result := object.Transaction{
		ID:         identifier.Transaction{Hash: row.TxID},
		Operations: operations,
	}

	return result
}

func blockID(block stacks.Block) identifier.Block {
	height := block.Height
	return identifier.Block{
		Index: &height,
		Hash:  block.Hash,
	}
}

func unknownBlock(rosBlockID identifier.Block) failure.UnknownBlock {
	fail := failure.UnknownBlock{
		Description: failure.NewDescription("block is not part of the index"),
		Hash:        rosBlockID.Hash,
	}
	if rosBlockID.Index != nil {
		fail.Index = *rosBlockID.Index
	}
	return fail
}
