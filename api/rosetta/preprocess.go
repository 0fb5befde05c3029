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
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/optakt/stacks-rosetta/models/stacks"
	"github.com/optakt/stacks-rosetta/rosetta/configuration"
	"github.com/optakt/stacks-rosetta/rosetta/failure"
	"github.com/optakt/stacks-rosetta/rosetta/identifier"
	"github.com/optakt/stacks-rosetta/rosetta/object"
	"github.com/optakt/stacks-rosetta/stacks/codec"
)

// PreprocessRequest implements the request schema for
// /construction/preprocess.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#request-4
type PreprocessRequest struct {
	NetworkID              identifier.Network `json:"network_identifier"`
	Operations             []object.Operation `json:"operations"`
	MaxFee                 []object.Amount    `json:"max_fee,omitempty"`
	SuggestedFeeMultiplier *float64           `json:"suggested_fee_multiplier,omitempty"`
}

// PreprocessResponse implements the response schema for
// /construction/preprocess.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#response-4
type PreprocessResponse struct {
	Options        object.Options       `json:"options"`
	RequiredKeyIDs []identifier.Account `json:"required_public_keys"`
}

// Preprocess implements the /construction/preprocess endpoint of the Rosetta
// Construction API. It derives the transfer intent from the given operations
// and echoes it back as the options object for /construction/metadata, along
// with the sender as the only account that must provide a public key.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#constructionpreprocess
func (c *Construction) Preprocess(ctx echo.Context) error {

	var req PreprocessRequest
	err := ctx.Bind(&req)
	if err != nil {
		return echo.NewHTTPError(statusBadRequest, invalidEncoding("request does not contain valid JSON", err))
	}

	err = c.config.Check(req.NetworkID)
	if err != nil {
		return networkError(err)
	}

	if len(req.Operations) == 0 {
		return echo.NewHTTPError(statusBadRequest, rosettaError(
			configuration.ErrorEmptyOperations,
			failure.NewDescription("operation list is empty"),
		))
	}

	intent, err := c.transact.DeriveIntent(req.Operations)
	if err != nil {
		return constructionError(err, "could not derive transfer intent")
	}

	options := object.Options{
		SenderAddress:          intent.Sender,
		Type:                   stacks.OperationTransfer,
		RecipientAddress:       intent.Recipient,
		Amount:                 strconv.FormatUint(intent.Amount, 10),
		Symbol:                 stacks.Symbol,
		Decimals:               stacks.Decimals,
		Size:                   codec.TransferSize,
		SuggestedFeeMultiplier: req.SuggestedFeeMultiplier,
	}

	// The max fee is given as an amount list; only the scalar value of the
	// first entry carries over into the options.
	if len(req.MaxFee) > 0 {
		maxFee := req.MaxFee[0]
		_, err := c.validate.Currency(maxFee.Currency)
		if err != nil {
			return constructionError(err, "could not validate max fee currency")
		}
		_, err = strconv.ParseUint(maxFee.Value, 10, 64)
		if err != nil {
			return constructionError(failure.InvalidFee{
				Description: failure.NewDescription("could not parse max fee",
					failure.WithErr(err),
				),
				Fee: maxFee.Value,
			}, "")
		}
		options.MaxFee = maxFee.Value
	}

	res := PreprocessResponse{
		Options: options,
		RequiredKeyIDs: []identifier.Account{
			{Address: intent.Sender},
		},
	}

	return ctx.JSON(statusOK, res)
}
