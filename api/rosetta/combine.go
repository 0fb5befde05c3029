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

	"github.com/optakt/stacks-rosetta/rosetta/configuration"
	"github.com/optakt/stacks-rosetta/rosetta/failure"
	"github.com/optakt/stacks-rosetta/rosetta/identifier"
	"github.com/optakt/stacks-rosetta/rosetta/object"
	"github.com/optakt/stacks-rosetta/stacks/codec"
)

// CombineRequest implements the request schema for /construction/combine.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#request-1
type CombineRequest struct {
	NetworkID           identifier.Network `json:"network_identifier"`
	UnsignedTransaction string             `json:"unsigned_transaction"`
	Signatures          []object.Signature `json:"signatures"`
}

// CombineResponse implements the response schema for /construction/combine.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#response-1
type CombineResponse struct {
	SignedTransaction string `json:"signed_transaction"`
}

// Combine implements the /construction/combine endpoint of the Rosetta
// Construction API. It verifies the wallet's signature against the unsigned
// transaction and injects it into the authorization slot. Single-signature
// standard transactions take exactly one signature.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#constructioncombine
func (c *Construction) Combine(ctx echo.Context) error {

	var req CombineRequest
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

	if len(req.Signatures) != 1 {
		return echo.NewHTTPError(statusBadRequest, rosettaError(
			configuration.ErrorNeedOnlyOneSignature,
			failure.NewDescription("single-signature transactions need exactly one signature",
				failure.WithInt("have", len(req.Signatures)),
			),
		))
	}

	tx, err := decodeTransaction(req.UnsignedTransaction)
	if err != nil {
		return constructionError(err, "could not decode unsigned transaction")
	}

	signed, err := c.transact.AttachSignature(tx, req.Signatures[0])
	if err != nil {
		return constructionError(err, "could not attach signature")
	}

	res := CombineResponse{
		SignedTransaction: codec.EncodeHex(codec.Serialize(signed)),
	}

	return ctx.JSON(statusOK, res)
}
