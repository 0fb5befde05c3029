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
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/optakt/stacks-rosetta/rosetta/failure"
	"github.com/optakt/stacks-rosetta/rosetta/identifier"
)

// StatusRequest implements the request schema for /network/status.
// See https://www.rosetta-api.org/docs/NetworkApi.html#request-2
type StatusRequest struct {
	NetworkID identifier.Network `json:"network_identifier"`
}

// StatusResponse implements the response schema for /network/status.
// See https://www.rosetta-api.org/docs/NetworkApi.html#response-2
type StatusResponse struct {
	CurrentBlockID        identifier.Block `json:"current_block_identifier"`
	CurrentBlockTimestamp int64            `json:"current_block_timestamp"`
	OldestBlockID         identifier.Block `json:"oldest_block_identifier"`
	GenesisBlockID        identifier.Block `json:"genesis_block_identifier"`
}

// Status implements the /network/status endpoint of the Rosetta Data API.
// See https://www.rosetta-api.org/docs/NetworkApi.html#networkstatus
func (d *Data) Status(ctx echo.Context) error {

	var req StatusRequest
	err := ctx.Bind(&req)
	if err != nil {
		return echo.NewHTTPError(statusBadRequest, invalidEncoding("request does not contain valid JSON", err))
	}

	err = d.config.Check(req.NetworkID)
	if err != nil {
		return networkError(err)
	}

	oldest, _, err := d.retrieve.Oldest()
	if err != nil {
		return retrievalError(err, "could not retrieve oldest block")
	}
	current, timestamp, err := d.retrieve.Current()
	if err != nil {
		return retrievalError(err, "could not retrieve current block")
	}

	res := StatusResponse{
		CurrentBlockID:        current,
		CurrentBlockTimestamp: timestamp,
		OldestBlockID:         oldest,
		GenesisBlockID:        oldest,
	}

	return ctx.JSON(statusOK, res)
}

// retrievalError maps index lookup failures onto their catalog entries.
func retrievalError(err error, description string) error {

	var ubErr failure.UnknownBlock
	if errors.As(err, &ubErr) {
		return echo.NewHTTPError(statusBadRequest, unknownBlock(ubErr))
	}
	var utErr failure.UnknownTransaction
	if errors.As(err, &utErr) {
		return echo.NewHTTPError(statusBadRequest, unknownTransaction(utErr))
	}
	var iaErr failure.InvalidAccount
	if errors.As(err, &iaErr) {
		return echo.NewHTTPError(statusBadRequest, invalidAccount(iaErr))
	}
	var icErr failure.InvalidCurrency
	if errors.As(err, &icErr) {
		return echo.NewHTTPError(statusBadRequest, invalidCurrency(icErr))
	}

	return echo.NewHTTPError(statusInternalServerError, internal(description, err))
}
