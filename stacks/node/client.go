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

// Package node implements the RPC client for the upstream Stacks node. It is
// used by the construction flow for account nonce lookups, fee estimation and
// transaction broadcast; everything else is served from the index.
package node

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/optakt/stacks-rosetta/rosetta/failure"
	"github.com/optakt/stacks-rosetta/rosetta/identifier"
)

const (
	defaultTimeout = 10 * time.Second
	readRetries    = 3
)

// The rejection reason the node gives when the sender cannot cover the
// transfer plus fee.
const reasonNotEnoughFunds = "NotEnoughFunds"

// Client talks to the RPC API of a Stacks node.
type Client struct {
	log    zerolog.Logger
	client *resty.Client
}

// New creates a node client for the given API base URL.
func New(log zerolog.Logger, apiURL string) *Client {

	client := resty.New().
		SetBaseURL(apiURL).
		SetTimeout(defaultTimeout)

	c := Client{
		log:    log.With().Str("component", "node_client").Logger(),
		client: client,
	}

	return &c
}

type accountResponse struct {
	Balance string `json:"balance"`
	Nonce   uint64 `json:"nonce"`
}

// Account returns the next nonce and the current balance of the given
// account. Reads are retried with exponential backoff, as they are idempotent.
func (c *Client) Account(ctx context.Context, address string) (uint64, uint64, error) {

	var res accountResponse
	call := func() error {
		rsp, err := c.client.R().
			SetContext(ctx).
			SetQueryParam("proof", "0").
			SetResult(&res).
			Get("/v2/accounts/" + address)
		if err != nil {
			return fmt.Errorf("could not execute account request: %w", err)
		}
		if rsp.IsError() {
			return fmt.Errorf("account request failed (status: %d)", rsp.StatusCode())
		}
		return nil
	}

	err := backoff.Retry(call, c.retryPolicy(ctx))
	if err != nil {
		return 0, 0, err
	}

	// The node renders the balance as a hex quantity.
	balance, err := strconv.ParseUint(strings.TrimPrefix(res.Balance, "0x"), 16, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("could not parse account balance (balance: %s): %w", res.Balance, err)
	}

	return res.Nonce, balance, nil
}

// FeeRate returns the current transfer fee rate in microSTX per byte.
func (c *Client) FeeRate(ctx context.Context) (uint64, error) {

	var rate uint64
	call := func() error {
		rsp, err := c.client.R().
			SetContext(ctx).
			SetResult(&rate).
			Get("/v2/fees/transfer")
		if err != nil {
			return fmt.Errorf("could not execute fee rate request: %w", err)
		}
		if rsp.IsError() {
			return fmt.Errorf("fee rate request failed (status: %d)", rsp.StatusCode())
		}
		return nil
	}

	err := backoff.Retry(call, c.retryPolicy(ctx))
	if err != nil {
		return 0, err
	}

	return rate, nil
}

type rejectionResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason"`
}

// SubmitTransaction broadcasts a signed transaction and returns the
// transaction identifier the node assigns. Broadcast is not retried; the
// caller decides whether a retriable failure warrants a re-send.
func (c *Client) SubmitTransaction(ctx context.Context, tx []byte) (identifier.Transaction, error) {

	var txID string
	var rejection rejectionResponse
	rsp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/octet-stream").
		SetBody(tx).
		SetResult(&txID).
		SetError(&rejection).
		Post("/v2/transactions")
	if err != nil {
		return identifier.Transaction{}, fmt.Errorf("could not execute broadcast request: %w", err)
	}

	if rsp.IsError() {
		c.log.Debug().
			Int("status", rsp.StatusCode()).
			Str("reason", rejection.Reason).
			Msg("node rejected transaction")

		if rejection.Reason == reasonNotEnoughFunds {
			return identifier.Transaction{}, failure.InsufficientFunds{
				Description: failure.NewDescription("node rejected transaction for insufficient funds"),
			}
		}
		reason := rejection.Reason
		if reason == "" {
			reason = rejection.Error
		}
		return identifier.Transaction{}, failure.RejectedTransaction{
			Description: failure.NewDescription("node rejected transaction",
				failure.WithString("error", rejection.Error),
			),
			Reason: reason,
		}
	}

	if !strings.HasPrefix(txID, "0x") {
		txID = "0x" + txID
	}

	return identifier.Transaction{Hash: txID}, nil
}

func (c *Client) retryPolicy(ctx context.Context) backoff.BackOff {
	policy := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), readRetries)
	return backoff.WithContext(policy, ctx)
}
