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

// InvalidOperations is the failure for an operation list that cannot form a
// token transfer, such as a wrong operation count.
type InvalidOperations struct {
	Description Description
	Count       int
}

func (i InvalidOperations) Error() string {
	return fmt.Sprintf("invalid operations (count: %d): %s", i.Count, i.Description)
}

// InvalidIntent is the failure for an operation pair whose amounts, types or
// currencies do not describe a balanced transfer.
type InvalidIntent struct {
	Description Description
	Sender      string
	Receiver    string
}

func (i InvalidIntent) Error() string {
	return fmt.Sprintf("invalid intent (sender: %s, receiver: %s): %s", i.Sender, i.Receiver, i.Description)
}
