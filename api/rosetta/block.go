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
	"github.com/optakt/stacks-rosetta/rosetta/object"
)

// BlockRequest implements the request schema for /block.
// See https://www.rosetta-api.org/docs/BlockApi.html#request
type BlockRequest struct {
	NetworkID identifier.Network `json:"network_identifier"`
	BlockID   identifier.Block   `json:"block_identifier"`
}

// BlockResponse implements the response schema for /block.
// See https://www.rosetta-api.org/docs/BlockApi.html#response
type BlockResponse struct {
	Block object.Block `json:"block"`
}

// Block implements the /block endpoint of the Rosetta Data API. An empty
// block identifier resolves to the current block.
// See https://www.rosetta-api.org/docs/BlockApi.html#block
func (d *Data) Block(ctx echo.Context) error {

	var req BlockRequest
	err := ctx.Bind(&req)
	if err != nil {
		return echo.NewHTTPError(statusBadRequest, invalidEncoding("request does not contain valid JSON", err))
	}

	err = d.config.Check(req.NetworkID)
	if err != nil {
		return networkError(err)
	}

	err = d.validate.Block(req.BlockID)
	if err != nil {
		return formatError(err)
	}

	block, err := d.retrieve.Block(req.BlockID)
	if err != nil {
		return retrievalError(err, "could not retrieve block")
	}

	res := BlockResponse{
		Block: block,
	}

	return ctx.JSON(statusOK, res)
}
