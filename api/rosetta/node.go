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
	"context"

	"github.com/optakt/stacks-rosetta/rosetta/identifier"
)

// NodeClient is the upstream node RPC used by the Construction API: the
// account state for nonce lookup, the current fee rate for fee suggestions
// and the broadcast of signed transactions. Metadata and submit, the two
// endpoints that use it, are the only ones with side channels; everything
// else in the construction flow is pure.
type NodeClient interface {
	Account(ctx context.Context, address string) (nonce uint64, balance uint64, err error)
	FeeRate(ctx context.Context) (rate uint64, err error)
	SubmitTransaction(ctx context.Context, tx []byte) (txID identifier.Transaction, err error)
}
