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

// InvalidTransaction is the failure for a transaction blob that cannot be
// decoded, including odd hex length, truncated buffers, unknown version bytes
// and unrecognized payload tags.
type InvalidTransaction struct {
	Description Description
}

func (i InvalidTransaction) Error() string {
	return fmt.Sprintf("invalid transaction: %s", i.Description)
}

// UnsignedTransaction is the failure for an unsigned transaction handed to an
// endpoint that requires a signature.
type UnsignedTransaction struct {
	Description Description
}

func (u UnsignedTransaction) Error() string {
	return fmt.Sprintf("transaction not signed: %s", u.Description)
}

// InvalidFee is the failure for a fee value that cannot be parsed as an
// unsigned integer amount of microSTX.
type InvalidFee struct {
	Description Description
	Fee         string
}

func (i InvalidFee) Error() string {
	return fmt.Sprintf("invalid fee (fee: %s): %s", i.Fee, i.Description)
}
