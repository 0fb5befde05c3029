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

// EmptyNetwork is the failure for a request without a network identifier.
type EmptyNetwork struct {
	Description Description
}

func (e EmptyNetwork) Error() string {
	return fmt.Sprintf("network identifier empty: %s", e.Description)
}

// InvalidBlockchain is the failure for a blockchain field that does not match
// the Stacks blockchain constant.
type InvalidBlockchain struct {
	Description Description
	Have        string
	Want        string
}

func (i InvalidBlockchain) Error() string {
	return fmt.Sprintf("invalid blockchain (have: %s, want: %s): %s", i.Have, i.Want, i.Description)
}

// InvalidNetwork is the failure for a network field that does not match the
// chain the process was configured for.
type InvalidNetwork struct {
	Description Description
	Have        string
	Want        string
}

func (i InvalidNetwork) Error() string {
	return fmt.Sprintf("invalid network (have: %s, want: %s): %s", i.Have, i.Want, i.Description)
}
