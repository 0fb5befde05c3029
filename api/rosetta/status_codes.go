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
	"net/http"
)

// Validation errors map to a 400, internal and upstream errors to a 500; the
// body always carries the structured catalog error either way. The variables
// exist so the mapping can be changed in one place.
var (
	statusOK                  = http.StatusOK
	statusBadRequest          = http.StatusBadRequest
	statusInternalServerError = http.StatusInternalServerError
)
