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

package failure

import (
	"fmt"
)

// UnknownBlock is the failure for a block that is not part of the index. It is
// retriable, as the block may simply not have propagated yet.
type UnknownBlock struct {
	Description Description
	Index       uint64
	Hash        string
}

func (u UnknownBlock) Error() string {
	return fmt.Sprintf("unknown block (index: %d, hash: %s): %s", u.Index, u.Hash, u.Description)
}

// UnknownTransaction is the failure for a transaction that is not part of the
// index or the mempool.
type UnknownTransaction struct {
	Description Description
	Hash        string
}

func (u UnknownTransaction) Error() string {
	return fmt.Sprintf("unknown transaction (hash: %s): %s", u.Hash, u.Description)
}
