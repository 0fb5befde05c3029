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

// The default and maximum page sizes for mempool listings.
const (
	mempoolDefaultLimit = 200
	mempoolMaxLimit     = 1000
)

// MempoolRequest implements the request schema for /mempool, with optional
// paging carried in the metadata.
// See https://www.rosetta-api.org/docs/MempoolApi.html#request
type MempoolRequest struct {
	NetworkID identifier.Network `json:"network_identifier"`
	Metadata  struct {
		Limit  *uint `json:"limit,omitempty"`
		Offset *uint `json:"offset,omitempty"`
	} `json:"metadata,omitempty"`
}

// MempoolResponse implements the response schema for /mempool.
// See https://www.rosetta-api.org/docs/MempoolApi.html#response
type MempoolResponse struct {
	TransactionIDs []identifier.Transaction `json:"transaction_identifiers"`
}

// Mempool implements the /mempool endpoint of the Rosetta Data API.
// See https://www.rosetta-api.org/docs/MempoolApi.html#mempool
func (d *Data) Mempool(ctx echo.Context) error {

	var req MempoolRequest
	err := ctx.Bind(&req)
	if err != nil {
		return echo.NewHTTPError(statusBadRequest, invalidEncoding("request does not contain valid JSON", err))
	}

	err = d.config.Check(req.NetworkID)
	if err != nil {
		return networkError(err)
	}

	limit := uint(mempoolDefaultLimit)
	if req.Metadata.Limit != nil && *req.Metadata.Limit > 0 {
		limit = *req.Metadata.Limit
	}
	if limit > mempoolMaxLimit {
		limit = mempoolMaxLimit
	}
	offset := uint(0)
	if req.Metadata.Offset != nil {
		offset = *req.Metadata.Offset
	}

	txIDs, err := d.retrieve.MempoolTransactions(limit, offset)
	if err != nil {
		return retrievalError(err, "could not retrieve mempool transactions")
	}

	res := MempoolResponse{
		TransactionIDs: txIDs,
	}

	return ctx.JSON(statusOK, res)
}

// MempoolTransactionRequest implements the request schema for
// /mempool/transaction.
// See https://www.rosetta-api.org/docs/MempoolApi.html#request-1
type MempoolTransactionRequest struct {
	NetworkID     identifier.Network     `json:"network_identifier"`
	TransactionID identifier.Transaction `json:"transaction_identifier"`
}

// MempoolTransactionResponse implements the response schema for
// /mempool/transaction.
// See https://www.rosetta-api.org/docs/MempoolApi.html#response-1
type MempoolTransactionResponse struct {
	Transaction object.Transaction `json:"transaction"`
}

// MempoolTransaction implements the /mempool/transaction endpoint of the
// Rosetta Data API. Pending transactions render their operations with the
// pending status.
// See https://www.rosetta-api.org/docs/MempoolApi.html#mempooltransaction
func (d *Data) MempoolTransaction(ctx echo.Context) error {

	var req MempoolTransactionRequest
	err := ctx.Bind(&req)
	if err != nil {
		return echo.NewHTTPError(statusBadRequest, invalidEncoding("request does not contain valid JSON", err))
	}

	err = d.config.Check(req.NetworkID)
	if err != nil {
		return networkError(err)
	}

	transaction, err := d.retrieve.MempoolTransaction(req.TransactionID)
	if err != nil {
		return retrievalError(err, "could not retrieve mempool transaction")
	}

	res := MempoolTransactionResponse{
		Transaction: transaction,
	}

	return ctx.JSON(statusOK, res)
}
