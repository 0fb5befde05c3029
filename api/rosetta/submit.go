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
	"github.com/optakt/stacks-rosetta/stacks/codec"
)

// SubmitRequest implements the request schema for /construction/submit.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#request-7
type SubmitRequest struct {
	NetworkID         identifier.Network `json:"network_identifier"`
	SignedTransaction string             `json:"signed_transaction"`
}

// SubmitResponse implements the response schema for /construction/submit.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#response-7
type SubmitResponse struct {
	TransactionID identifier.Transaction `json:"transaction_identifier"`
}

// Submit implements the /construction/submit endpoint of the Rosetta
// Construction API. It broadcasts the fully signed transaction to the
// network through the node. Broadcasting is atomic at the node boundary, so
// an abandoned request leaves no partial side effects.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#constructionsubmit
func (c *Construction) Submit(ctx echo.Context) error {

	var req SubmitRequest
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

	tx, err := decodeTransaction(req.SignedTransaction)
	if err != nil {
		return constructionError(err, "could not decode signed transaction")
	}

	if !codec.IsSigned(tx) {
		return constructionError(failure.UnsignedTransaction{
			Description: failure.NewDescription("transaction has no valid signature"),
		}, "")
	}

	txID, err := c.node.SubmitTransaction(ctx.Request().Context(), codec.Serialize(tx))
	if err != nil {
		return constructionError(err, "could not submit transaction to node")
	}

	res := SubmitResponse{
		TransactionID: txID,
	}

	return ctx.JSON(statusOK, res)
}
