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
	"math/big"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/optakt/stacks-rosetta/models/stacks"
	"github.com/optakt/stacks-rosetta/rosetta/configuration"
	"github.com/optakt/stacks-rosetta/rosetta/failure"
	"github.com/optakt/stacks-rosetta/rosetta/identifier"
	"github.com/optakt/stacks-rosetta/rosetta/object"
	"github.com/optakt/stacks-rosetta/stacks/codec"
)

// MetadataRequest implements the request schema for /construction/metadata.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#request-2
type MetadataRequest struct {
	NetworkID  identifier.Network `json:"network_identifier"`
	Options    object.Options     `json:"options"`
	PublicKeys []object.PublicKey `json:"public_keys,omitempty"`
}

// MetadataResponse implements the response schema for /construction/metadata.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#response-2
type MetadataResponse struct {
	Metadata     object.Metadata `json:"metadata"`
	SuggestedFee []object.Amount `json:"suggested_fee"`
}

// Metadata implements the /construction/metadata endpoint of the Rosetta
// Construction API. It looks up the sender's next nonce and the chain's
// current fee rate on the node, and suggests a fee of rate times estimated
// size, scaled by the fee multiplier and bounded by the max fee.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#constructionmetadata
func (c *Construction) Metadata(ctx echo.Context) error {

	var req MetadataRequest
	err := ctx.Bind(&req)
	if err != nil {
		return echo.NewHTTPError(statusBadRequest, invalidEncoding("request does not contain valid JSON", err))
	}

	err = c.config.Check(req.NetworkID)
	if err != nil {
		return networkError(err)
	}

	if req.Options.Type != stacks.OperationTransfer {
		return echo.NewHTTPError(statusBadRequest, rosettaError(
			configuration.ErrorInvalidTransactionType,
			failure.NewDescription("only token transfers can be constructed",
				failure.WithString("type", req.Options.Type),
			),
		))
	}

	err = c.validate.Account(identifier.Account{Address: req.Options.SenderAddress})
	if err != nil {
		return constructionError(failure.InvalidSender{
			Description: failure.NewDescription("invalid sender account",
				failure.WithErr(err),
			),
			Address: req.Options.SenderAddress,
		}, "")
	}
	err = c.validate.Account(identifier.Account{Address: req.Options.RecipientAddress})
	if err != nil {
		return constructionError(failure.InvalidRecipient{
			Description: failure.NewDescription("invalid recipient account",
				failure.WithErr(err),
			),
			Address: req.Options.RecipientAddress,
		}, "")
	}

	if req.Options.Size == 0 {
		return echo.NewHTTPError(statusBadRequest, rosettaError(
			configuration.ErrorMissingSize,
			failure.NewDescription("options are missing the transaction size estimate"),
		))
	}

	// When public keys are given, the sender's key must derive to the sender
	// address, so that signing failures surface before payload creation.
	if len(req.PublicKeys) > 0 {
		key := req.PublicKeys[0]
		if key.CurveType != object.CurveSecp256k1 {
			return constructionError(failure.InvalidCurve{
				Description: failure.NewDescription("only the secp256k1 curve is supported"),
				CurveType:   key.CurveType,
			}, "")
		}
		data, err := decodeKey(key)
		if err != nil {
			return constructionError(err, "")
		}
		account, err := c.transact.DeriveAddress(data)
		if err != nil {
			return constructionError(err, "could not derive address")
		}
		if account.Address != req.Options.SenderAddress {
			return constructionError(failure.InvalidKey{
				Description: failure.NewDescription("public key does not match sender address",
					failure.WithString("derived_address", account.Address),
					failure.WithString("sender_address", req.Options.SenderAddress),
				),
				Key: key.HexBytes,
			}, "")
		}
	}

	rctx := ctx.Request().Context()

	nonce, _, err := c.node.Account(rctx, req.Options.SenderAddress)
	if err != nil {
		return echo.NewHTTPError(statusInternalServerError, internal("could not retrieve account from node", err))
	}

	rate, err := c.node.FeeRate(rctx)
	if err != nil {
		return echo.NewHTTPError(statusInternalServerError, rosettaError(
			configuration.ErrorFeeEstimationFailed,
			failure.NewDescription("could not retrieve fee rate from node",
				failure.WithErr(err),
			),
		))
	}

	fee, err := suggestedFee(rate, req.Options)
	if err != nil {
		return constructionError(err, "could not compute suggested fee")
	}

	current, _, err := c.retrieve.Current()
	if err != nil {
		return echo.NewHTTPError(statusInternalServerError, internal("could not retrieve current block", err))
	}

	res := MetadataResponse{
		Metadata: object.Metadata{
			AccountSequence: int64(nonce),
			RecentBlockHash: current.Hash,
			Fee:             fee.String(),
		},
		SuggestedFee: []object.Amount{
			{
				Value: fee.String(),
				Currency: identifier.Currency{
					Symbol:   stacks.Symbol,
					Decimals: stacks.Decimals,
				},
			},
		},
	}

	return ctx.JSON(statusOK, res)
}

// suggestedFee computes rate times size, scaled by the fee multiplier treated
// as a rational of at least one with the result rounded up, and bounded above
// by the max fee when one is set.
func suggestedFee(rate uint64, options object.Options) (*big.Int, error) {

	fee := new(big.Rat).SetUint64(rate * options.Size)

	if options.SuggestedFeeMultiplier != nil {
		multiplier := new(big.Rat).SetFloat64(*options.SuggestedFeeMultiplier)
		if multiplier == nil || multiplier.Cmp(new(big.Rat).SetUint64(1)) < 0 {
			multiplier = new(big.Rat).SetUint64(1)
		}
		fee.Mul(fee, multiplier)
	}

	// Ceiling division of the rational fee.
	result := new(big.Int).Add(fee.Num(), new(big.Int).Sub(fee.Denom(), big.NewInt(1)))
	result.Div(result, fee.Denom())

	if options.MaxFee != "" {
		maxFee, err := strconv.ParseUint(options.MaxFee, 10, 64)
		if err != nil {
			return nil, failure.InvalidFee{
				Description: failure.NewDescription("could not parse max fee",
					failure.WithErr(err),
				),
				Fee: options.MaxFee,
			}
		}
		bound := new(big.Int).SetUint64(maxFee)
		if result.Cmp(bound) > 0 {
			result = bound
		}
	}

	return result, nil
}

// decodeKey decodes the hex bytes of a public key object.
func decodeKey(key object.PublicKey) ([]byte, error) {

	data, err := codec.DecodeHex(key.HexBytes)
	if err != nil {
		return nil, failure.InvalidKey{
			Description: failure.NewDescription("could not decode public key hex",
				failure.WithErr(err),
			),
			Key: key.HexBytes,
		}
	}

	return data, nil
}
