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
	"github.com/optakt/stacks-rosetta/stacks/codec"
)

// Construction implements the Rosetta Construction API specification: the
// stateless flow of preprocess, metadata, payloads, combine, hash and submit,
// plus derive and parse. Only metadata and submit touch the node; every other
// endpoint is a pure function of its request.
// See https://www.rosetta-api.org/docs/construction_api_introduction.html
type Construction struct {
	config   Configuration
	validate Validator
	transact Parser
	retrieve Retriever
	node     NodeClient
}

// NewConstruction creates a new instance of the Construction API using the
// given configuration to handle transaction construction requests.
func NewConstruction(config Configuration, validate Validator, transact Parser, retrieve Retriever, node NodeClient) *Construction {

	c := Construction{
		config:   config,
		validate: validate,
		transact: transact,
		retrieve: retrieve,
		node:     node,
	}

	return &c
}

// decodeTransaction decodes and structurally parses a hex-encoded transaction
// blob, with or without `0x` prefix.
func decodeTransaction(text string) (*codec.Transaction, error) {

	data, err := codec.DecodeHex(text)
	if err != nil {
		return nil, failure.InvalidTransaction{
			Description: failure.NewDescription("could not decode transaction hex",
				failure.WithErr(err),
			),
		}
	}

	tx, err := codec.Deserialize(data)
	if err != nil {
		return nil, failure.InvalidTransaction{
			Description: failure.NewDescription("could not deserialize transaction",
				failure.WithErr(err),
			),
		}
	}

	return tx, nil
}

// constructionError maps the typed failures of the construction flow onto
// their catalog entries, falling back to an internal error for anything that
// is not a known failure.
func constructionError(err error, description string) error {

	var opsErr failure.InvalidOperations
	if errors.As(err, &opsErr) {
		return echo.NewHTTPError(statusBadRequest, invalidOperations(opsErr))
	}
	var intErr failure.InvalidIntent
	if errors.As(err, &intErr) {
		return echo.NewHTTPError(statusBadRequest, invalidIntent(intErr))
	}
	var curErr failure.InvalidCurrency
	if errors.As(err, &curErr) {
		return echo.NewHTTPError(statusBadRequest, invalidCurrency(curErr))
	}
	var sndErr failure.InvalidSender
	if errors.As(err, &sndErr) {
		return echo.NewHTTPError(statusBadRequest, invalidSender(sndErr))
	}
	var rcpErr failure.InvalidRecipient
	if errors.As(err, &rcpErr) {
		return echo.NewHTTPError(statusBadRequest, invalidRecipient(rcpErr))
	}
	var accErr failure.InvalidAccount
	if errors.As(err, &accErr) {
		return echo.NewHTTPError(statusBadRequest, invalidAccount(accErr))
	}
	var crvErr failure.InvalidCurve
	if errors.As(err, &crvErr) {
		return echo.NewHTTPError(statusBadRequest, invalidCurve(crvErr))
	}
	var keyErr failure.InvalidKey
	if errors.As(err, &keyErr) {
		return echo.NewHTTPError(statusBadRequest, invalidKey(keyErr))
	}
	var txErr failure.InvalidTransaction
	if errors.As(err, &txErr) {
		return echo.NewHTTPError(statusBadRequest, invalidTransaction(txErr))
	}
	var unsErr failure.UnsignedTransaction
	if errors.As(err, &unsErr) {
		return echo.NewHTTPError(statusBadRequest, notSigned(unsErr))
	}
	var sigErr failure.InvalidSignature
	if errors.As(err, &sigErr) {
		return echo.NewHTTPError(statusBadRequest, invalidSignature(sigErr))
	}
	var uvsErr failure.UnverifiedSignature
	if errors.As(err, &uvsErr) {
		return echo.NewHTTPError(statusBadRequest, unverifiedSignature(uvsErr))
	}
	var sttErr failure.UnsupportedSignatureType
	if errors.As(err, &sttErr) {
		return echo.NewHTTPError(statusBadRequest, unsupportedSignatureType(sttErr))
	}
	var feeErr failure.InvalidFee
	if errors.As(err, &feeErr) {
		return echo.NewHTTPError(statusBadRequest, invalidFee(feeErr))
	}
	var rejErr failure.RejectedTransaction
	if errors.As(err, &rejErr) {
		return echo.NewHTTPError(statusBadRequest, rejectedTransaction(rejErr))
	}
	var insErr failure.InsufficientFunds
	if errors.As(err, &insErr) {
		return echo.NewHTTPError(statusBadRequest, insufficientFunds(insErr))
	}

	return echo.NewHTTPError(statusInternalServerError, internal(description, err))
}
