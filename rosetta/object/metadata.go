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

package object

// Metadata carries the chain information needed to assemble a transaction from
// /construction/metadata to /construction/payloads. The account sequence is the
// sender's next nonce; an explicit nonce, when present, takes precedence.
type Metadata struct {
	AccountSequence int64   `json:"account_sequence"`
	RecentBlockHash string  `json:"recent_block_hash,omitempty"`
	Fee             string  `json:"fee,omitempty"`
	Nonce           *uint64 `json:"nonce,omitempty"`
}
