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

// InvalidAccount is the failure for an address that does not decode, has a bad
// checksum or carries the version byte of a different network.
type InvalidAccount struct {
	Description Description
	Address     string
}

func (i InvalidAccount) Error() string {
	return fmt.Sprintf("invalid account (address: %s): %s", i.Address, i.Description)
}

// InvalidSender marks an invalid sender address in a construction context.
type InvalidSender struct {
	Description Description
	Address     string
}

func (i InvalidSender) Error() string {
	return fmt.Sprintf("invalid sender (address: %s): %s", i.Address, i.Description)
}

// InvalidRecipient marks an invalid recipient address in a construction context.
type InvalidRecipient struct {
	Description Description
	Address     string
}

func (i InvalidRecipient) Error() string {
	return fmt.Sprintf("invalid recipient (address: %s): %s", i.Address, i.Description)
}
