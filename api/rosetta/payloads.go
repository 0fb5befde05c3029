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

// PayloadsRequest implements the request schema for /construction/payloads.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#request-3
type PayloadsRequest struct {
	NetworkID  identifier.Network `json:"network_identifier"`
	Operations []object.Operation `json:"operations"`
	Metadata   object.Metadata    `json:"metadata"`
	PublicKeys []object.PublicKey `json:"public_keys"`
}

// PayloadsResponse implements the response schema for /construction/payloads.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#response-3
type PayloadsResponse struct {
	Transaction string                  `json:"unsigned_transaction"`
	Payloads    []object.SigningPayload `json:"payloads"`
}

// Payloads implements the /construction/payloads endpoint of the Rosetta
// Construction API. It assembles the unsigned transaction from the operations
// and metadata, and returns the pre-sign hash the sender's wallet must sign.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#constructionpayloads
func (c *Construction) Payloads(ctx echo.Context) error {

	var req PayloadsRequest
	err := ctx.Bind(&req)
	if err != nil {
		return echo.NewHTTPError(statusBadRequest, invalidEncoding("request does not contain valid JSON", err))
	}

	err = c.config.Check(req.NetworkID)
	if err != nil {
		return networkError(err)
	}

	if len(req.PublicKeys) == 0 {
		return echo.NewHTTPError(statusBadRequest, rosettaError(
			configuration.ErrorEmptyPublicKey,
			failure.NewDescription("no public key given for transaction sender"),
		))
	}
	if len(req.PublicKeys) != 1 {
		return echo.NewHTTPError(statusBadRequest, rosettaError(
			configuration.ErrorNeedOnePublicKey,
			failure.NewDescription("single-signature transactions need exactly one public key",
				failure.WithInt("have", len(req.PublicKeys)),
			),
		))
	}

	key := req.PublicKeys[0]
	if key.CurveType != object.CurveSecp256k1 {
		return constructionError(failure.InvalidCurve{
			Description: failure.NewDescription("only the secp256k1 curve is supported"),
			CurveType:   key.CurveType,
		}, "")
	}
	publicKey, err := decodeKey(key)
	if err != nil {
		return constructionError(err, "")
	}

	intent, err := c.transact.DeriveIntent(req.Operations)
	if err != nil {
		return constructionError(err, "could not derive transfer intent")
	}

	tx, err := c.transact.CompileTransaction(intent, req.Metadata, publicKey)
	if err != nil {
		return constructionError(err, "could not compile transaction")
	}

	unsigned := codec.Serialize(tx)
	preHash := codec.PreSignHash(codec.SigHash(tx), tx.AuthType, tx.Fee, tx.Nonce)

	sender := identifier.Account{
		Address: intent.Sender,
	}

	res := PayloadsResponse{
		Transaction: codec.EncodeHex(unsigned),
		Payloads: []object.SigningPayload{
			{
				Address:       intent.Sender,
				AccountID:     &sender,
				HexBytes:      codec.EncodeHex(preHash[:]),
				SignatureType: object.SignatureEcdsaRecovery,
			},
		},
	}

	return ctx.JSON(statusOK, res)
}
