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

// DeriveRequest implements the request schema for /construction/derive.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#request
type DeriveRequest struct {
	NetworkID identifier.Network `json:"network_identifier"`
	PublicKey object.PublicKey   `json:"public_key"`
}

// DeriveResponse implements the response schema for /construction/derive.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#response
type DeriveResponse struct {
	AccountID identifier.Account `json:"account_identifier"`
}

// Derive implements the /construction/derive endpoint of the Rosetta
// Construction API. It derives the account identifier of a compressed
// secp256k1 public key on the configured chain.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#constructionderive
func (c *Construction) Derive(ctx echo.Context) error {

	var req DeriveRequest
	err := ctx.Bind(&req)
	if err != nil {
		return echo.NewHTTPError(statusBadRequest, invalidEncoding("request does not contain valid JSON", err))
	}

	err = c.config.Check(req.NetworkID)
	if err != nil {
		return networkError(err)
	}

	if req.PublicKey.HexBytes == "" {
		return echo.NewHTTPError(statusBadRequest, rosettaError(
			configuration.ErrorEmptyPublicKey,
			failure.NewDescription("public key hex is empty"),
		))
	}
	if req.PublicKey.CurveType != object.CurveSecp256k1 {
		return constructionError(failure.InvalidCurve{
			Description: failure.NewDescription("only the secp256k1 curve is supported"),
			CurveType:   req.PublicKey.CurveType,
		}, "")
	}

	publicKey, err := codec.DecodeHex(req.PublicKey.HexBytes)
	if err != nil {
		return constructionError(failure.InvalidKey{
			Description: failure.NewDescription("could not decode public key hex",
				failure.WithErr(err),
			),
			Key: req.PublicKey.HexBytes,
		}, "")
	}

	account, err := c.transact.DeriveAddress(publicKey)
	if err != nil {
		return constructionError(err, "could not derive address")
	}

	res := DeriveResponse{
		AccountID: account,
	}

	return ctx.JSON(statusOK, res)
}
