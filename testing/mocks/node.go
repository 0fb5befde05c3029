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
	"context"

	"github.com/optakt/stacks-rosetta/rosetta/identifier"
)

// Node mocks the upstream node client with function fields.
type Node struct {
	AccountFunc           func(ctx context.Context, address string) (uint64, uint64, error)
	FeeRateFunc           func(ctx context.Context) (uint64, error)
	SubmitTransactionFunc func(ctx context.Context, tx []byte) (identifier.Transaction, error)
}

func (n *Node) Account(ctx context.Context, address string) (uint64, uint64, error) {
	return n.AccountFunc(ctx, address)
}

func (n *Node) FeeRate(ctx context.Context) (uint64, error) {
	return n.FeeRateFunc(ctx)
}

func (n *Node) SubmitTransaction(ctx context.Context, tx []byte) (identifier.Transaction, error) {
	return n.SubmitTransactionFunc(ctx, tx)
}
