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

// BalanceRequest implements the request schema for /account/balance.
// See https://www.rosetta-api.org/docs/AccountApi.html#request
type BalanceRequest struct {
	NetworkID  identifier.Network    `json:"network_identifier"`
	AccountID  identifier.Account    `json:"account_identifier"`
	BlockID    identifier.Block      `json:"block_identifier"`
	Currencies []identifier.Currency `json:"currencies,omitempty"`
}

// BalanceResponse implements the response schema for /account/balance.
// See https://www.rosetta-api.org/docs/AccountApi.html#response
type BalanceResponse struct {
	BlockID  identifier.Block `json:"block_identifier"`
	Balances []object.Amount  `json:"balances"`
}

// Balance implements the /account/balance endpoint of the Rosetta Data API.
// An empty block identifier resolves to the current block; a historical block
// resolves the balance snapshot recorded at that height.
// See https://www.rosetta-api.org/docs/AccountApi.html#accountbalance
func (d *Data) Balance(ctx echo.Context) error {

	var req BalanceRequest
	err := ctx.Bind(&req)
	if err != nil {
		return echo.NewHTTPError(statusBadRequest, invalidEncoding("request does not contain valid JSON", err))
	}

	err = d.config.Check(req.NetworkID)
	if err != nil {
		return networkError(err)
	}

	err = d.validate.Request(req)
	if err != nil {
		return formatError(err)
	}

	err = d.validate.Block(req.BlockID)
	if err != nil {
		return formatError(err)
	}

	err = d.validate.Account(req.AccountID)
	if err != nil {
		return retrievalError(err, "could not validate account")
	}

	currencies := req.Currencies
	for i, currency := range currencies {
		currencies[i], err = d.validate.Currency(currency)
		if err != nil {
			return retrievalError(err, "could not validate currency")
		}
	}

	block, balances, err := d.retrieve.Balances(req.BlockID, req.AccountID, currencies)
	if err != nil {
		return retrievalError(err, "could not retrieve balances")
	}

	res := BalanceResponse{
		BlockID:  block,
		Balances: balances,
	}

	return ctx.JSON(statusOK, res)
}
