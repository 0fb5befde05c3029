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
	"github.com/labstack/echo/v4"

	"github.com/optakt/stacks-rosetta/rosetta/identifier"
)

// NetworksRequest implements the request schema for /network/list.
// See https://www.rosetta-api.org/docs/NetworkApi.html#request
type NetworksRequest struct {
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// NetworksResponse implements the response schema for /network/list.
// See https://www.rosetta-api.org/docs/NetworkApi.html#response
type NetworksResponse struct {
	NetworkIDs []identifier.Network `json:"network_identifiers"`
}

// Networks implements the /network/list endpoint of the Rosetta Data API.
// Each deployment serves exactly one network, fixed at startup.
// See https://www.rosetta-api.org/docs/NetworkApi.html#networklist
func (d *Data) Networks(ctx echo.Context) error {

	var req NetworksRequest
	err := ctx.Bind(&req)
	if err != nil {
		return echo.NewHTTPError(statusBadRequest, invalidEncoding("request does not contain valid JSON", err))
	}

	res := NetworksResponse{
		NetworkIDs: []identifier.Network{d.config.Network()},
	}

	return ctx.JSON(statusOK, res)
}
