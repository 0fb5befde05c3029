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

	"github.com/optakt/stacks-rosetta/rosetta/failure"
	"github.com/optakt/stacks-rosetta/rosetta/identifier"
	"github.com/optakt/stacks-rosetta/rosetta/object"
	"github.com/optakt/stacks-rosetta/stacks/codec"
)

// ParseRequest implements the request schema for /construction/parse.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#request-5
type ParseRequest struct {
	NetworkID   identifier.Network `json:"network_identifier"`
	Signed      bool               `json:"signed"`
	Transaction string             `json:"transaction"`
}

// ParseResponse implements the response schema for /construction/parse.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#response-5
type ParseResponse struct {
	Operations []object.Operation   `json:"operations"`
	SignerIDs  []identifier.Account `json:"account_identifier_signers,omitempty"`
}

// Parse implements the /construction/parse endpoint of the Rosetta
// Construction API. It translates a transaction blob back into its operation
// list, so wallets can confirm the correctness of an unsigned or signed
// transaction before proceeding. For a signed transaction, the signer account
// is recovered from the signature itself.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#constructionparse
func (c *Construction) Parse(ctx echo.Context) error {

	var req ParseRequest
	err := ctx.Bind(&req)
	if err != nil {
		return echo.NewHTTPError(statusBadRequest, invalidEncoding("request does not contain valid JSON", err))
	}

	err = c.config.Check(req.NetworkID)
	if err != nil {
		return networkError(err)
	}

	err = c.validate.Request(req)
	if err != nil {
		return formatError(err)
	}

	tx, err := decodeTransaction(req.Transaction)
	if err != nil {
		return constructionError(err, "could not decode transaction")
	}

	if req.Signed && !codec.IsSigned(tx) {
		return constructionError(failure.UnsignedTransaction{
			Description: failure.NewDescription("transaction has no valid signature"),
		}, "")
	}

	operations, signers, err := c.transact.ParseTransaction(tx, req.Signed)
	if err != nil {
		return constructionError(err, "could not parse transaction")
	}

	res := ParseResponse{
		Operations: operations,
		SignerIDs:  signers,
	}

	return ctx.JSON(statusOK, res)
}
