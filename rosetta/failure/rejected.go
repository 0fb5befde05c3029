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

// RejectedTransaction is the failure for a broadcast the node refused. The
// reason is the node's own rejection category.
type RejectedTransaction struct {
	Description Description
	Reason      string
}

func (r RejectedTransaction) Error() string {
	return fmt.Sprintf("transaction rejected (reason: %s): %s", r.Reason, r.Description)
}

// InsufficientFunds is the failure for a broadcast the node refused because
// the sender cannot cover the transfer amount plus fee.
type InsufficientFunds struct {
	Description Description
	Address     string
}

func (i InsufficientFunds) Error() string {
	return fmt.Sprintf("insufficient funds (address: %s): %s", i.Address, i.Description)
}
