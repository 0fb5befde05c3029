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

	"github.com/optakt/stacks-rosetta/rosetta/configuration"
	"github.com/optakt/stacks-rosetta/rosetta/failure"
	"github.com/optakt/stacks-rosetta/rosetta/meta"
)

// Error implements the error object of the Rosetta API specification. It
// embeds a definition from the static catalog, whose code, message and
// retriable flag never change, and adds a details map with more granular
// information about the concrete occurrence.
type Error struct {
	meta.ErrorDefinition
	Details map[string]interface{} `json:"details,omitempty"`
}

// rosettaError is the single rendering path from a catalog definition and a
// failure description to a response body; error construction should never be
// distributed across the handlers.
func rosettaError(definition meta.ErrorDefinition, description failure.Description) Error {

	details := make(map[string]interface{})
	if description.Text != "" {
		details["message"] = description.Text
	}
	description.Fields.Iterate(func(key string, val interface{}) {
		details[key] = val
	})
	if len(details) == 0 {
		details = nil
	}

	e := Error{
		ErrorDefinition: definition,
		Details:         details,
	}

	return e
}

func internal(description string, err error) Error {
	return rosettaError(
		configuration.ErrorUnknown,
		failure.NewDescription(description, failure.WithErr(err)),
	)
}

func invalidEncoding(description string, err error) Error {
	return rosettaError(
		configuration.ErrorInvalidParams,
		failure.NewDescription(description, failure.WithErr(err)),
	)
}

func invalidFormat(description string, fields ...failure.FieldFunc) Error {
	return rosettaError(
		configuration.ErrorInvalidParams,
		failure.NewDescription(description, fields...),
	)
}

func emptyNetwork(fail failure.EmptyNetwork) Error {
	return rosettaError(configuration.ErrorEmptyNetworkIdentifier, fail.Description)
}

func invalidBlockchain(fail failure.InvalidBlockchain) Error {
	return rosettaError(configuration.ErrorInvalidBlockchain, failure.NewDescription(
		fail.Description.Text,
		failure.WithString("blockchain", fail.Have),
		failure.WithString("blockchain_want", fail.Want),
	))
}

func invalidNetwork(fail failure.InvalidNetwork) Error {
	return rosettaError(configuration.ErrorInvalidNetwork, failure.NewDescription(
		fail.Description.Text,
		failure.WithString("network", fail.Have),
		failure.WithString("network_want", fail.Want),
	))
}

func invalidAccount(fail failure.InvalidAccount) Error {
	return rosettaError(configuration.ErrorInvalidAccount, failure.NewDescription(
		fail.Description.Text,
		append([]failure.FieldFunc{failure.WithString("address", fail.Address)}, fieldFuncs(fail.Description.Fields)...)...,
	))
}

func invalidSender(fail failure.InvalidSender) Error {
	return rosettaError(configuration.ErrorInvalidSender, failure.NewDescription(
		fail.Description.Text,
		failure.WithString("address", fail.Address),
	))
}

func invalidRecipient(fail failure.InvalidRecipient) Error {
	return rosettaError(configuration.ErrorInvalidRecipient, failure.NewDescription(
		fail.Description.Text,
		failure.WithString("address", fail.Address),
	))
}

func invalidCurrency(fail failure.InvalidCurrency) Error {
	return rosettaError(configuration.ErrorInvalidCurrency, failure.NewDescription(
		fail.Description.Text,
		failure.WithString("symbol", fail.Symbol),
		failure.WithInt("decimals", int(fail.Decimals)),
	))
}

func invalidCurve(fail failure.InvalidCurve) Error {
	return rosettaError(configuration.ErrorInvalidCurveType, failure.NewDescription(
		fail.Description.Text,
		failure.WithString("curve_type", fail.CurveType),
	))
}

func invalidKey(fail failure.InvalidKey) Error {
	return rosettaError(configuration.ErrorInvalidPublicKey, fail.Description)
}

func invalidOperations(fail failure.InvalidOperations) Error {
	return rosettaError(configuration.ErrorInvalidOperation, failure.NewDescription(
		fail.Description.Text,
		failure.WithInt("count", fail.Count),
	))
}

func invalidIntent(fail failure.InvalidIntent) Error {
	return rosettaError(configuration.ErrorInvalidOperation, failure.NewDescription(
		fail.Description.Text,
		append([]failure.FieldFunc{
			failure.WithString("sender", fail.Sender),
			failure.WithString("receiver", fail.Receiver),
		}, fieldFuncs(fail.Description.Fields)...)...,
	))
}

func invalidTransaction(fail failure.InvalidTransaction) Error {
	return rosettaError(configuration.ErrorInvalidTransaction, fail.Description)
}

func notSigned(fail failure.UnsignedTransaction) Error {
	return rosettaError(configuration.ErrorNotSigned, fail.Description)
}

func invalidSignature(fail failure.InvalidSignature) Error {
	return rosettaError(configuration.ErrorInvalidSignature, fail.Description)
}

func unverifiedSignature(fail failure.UnverifiedSignature) Error {
	return rosettaError(configuration.ErrorSignatureNotVerified, fail.Description)
}

func unsupportedSignatureType(fail failure.UnsupportedSignatureType) Error {
	return rosettaError(configuration.ErrorSignatureType, failure.NewDescription(
		fail.Description.Text,
		failure.WithString("signature_type", fail.Type),
	))
}

func invalidFee(fail failure.InvalidFee) Error {
	return rosettaError(configuration.ErrorInvalidFee, failure.NewDescription(
		fail.Description.Text,
		failure.WithString("fee", fail.Fee),
	))
}

func unknownBlock(fail failure.UnknownBlock) Error {
	return rosettaError(configuration.ErrorBlockNotFound, failure.NewDescription(
		fail.Description.Text,
		failure.WithUint64("index", fail.Index),
		failure.WithString("hash", fail.Hash),
	))
}

func unknownTransaction(fail failure.UnknownTransaction) Error {
	return rosettaError(configuration.ErrorTransactionNotFound, failure.NewDescription(
		fail.Description.Text,
		failure.WithString("hash", fail.Hash),
	))
}

func rejectedTransaction(fail failure.RejectedTransaction) Error {
	return rosettaError(configuration.ErrorInvalidTransaction, failure.NewDescription(
		fail.Description.Text,
		failure.WithString("reason", fail.Reason),
	))
}

func insufficientFunds(fail failure.InsufficientFunds) Error {
	return rosettaError(configuration.ErrorInsufficientFunds, failure.NewDescription(
		fail.Description.Text,
		failure.WithString("address", fail.Address),
	))
}

// fieldFuncs re-wraps already-materialized fields so they can be appended to
// a new description.
func fieldFuncs(fields failure.Fields) []failure.FieldFunc {
	funcs := make([]failure.FieldFunc, 0, len(fields))
	fields.Iterate(func(key string, val interface{}) {
		funcs = append(funcs, func(f *failure.Fields) {
			*f = append(*f, failure.Field{Key: key, Val: val})
		})
	})
	return funcs
}

// formatError maps the sentinel errors of request shape validation onto their
// catalog entries.
func formatError(err error) error {

	switch {
	case errors.Is(err, ErrTxBodyEmpty):
		return echo.NewHTTPError(statusBadRequest, rosettaError(
			configuration.ErrorInvalidTransaction,
			failure.NewDescription(ErrTxBodyEmpty.Error()),
		))
	case errors.Is(err, ErrSignaturesEmpty):
		return echo.NewHTTPError(statusBadRequest, rosettaError(
			configuration.ErrorEmptySignatures,
			failure.NewDescription(ErrSignaturesEmpty.Error()),
		))
	case errors.Is(err, ErrAccountEmpty):
		return echo.NewHTTPError(statusBadRequest, rosettaError(
			configuration.ErrorEmptyAccountIdentifier,
			failure.NewDescription(ErrAccountEmpty.Error()),
		))
	case errors.Is(err, ErrInvalidBlockHash):
		return echo.NewHTTPError(statusBadRequest, rosettaError(
			configuration.ErrorInvalidBlockHash,
			failure.NewDescription(ErrInvalidBlockHash.Error()),
		))
	}

	return echo.NewHTTPError(statusBadRequest, invalidFormat("request validation failed", failure.WithErr(err)))
}

// networkError maps the failures of the network guard onto their catalog
// entries. Every endpoint runs this before any other logic.
func networkError(err error) error {

	var neErr failure.EmptyNetwork
	if errors.As(err, &neErr) {
		return echo.NewHTTPError(statusBadRequest, emptyNetwork(neErr))
	}
	var ibErr failure.InvalidBlockchain
	if errors.As(err, &ibErr) {
		return echo.NewHTTPError(statusBadRequest, invalidBlockchain(ibErr))
	}
	var inErr failure.InvalidNetwork
	if errors.As(err, &inErr) {
		return echo.NewHTTPError(statusBadRequest, invalidNetwork(inErr))
	}

	return echo.NewHTTPError(statusInternalServerError, internal("could not validate network identifier", err))
}
