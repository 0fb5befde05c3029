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

package validator

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"

	api "github.com/optakt/stacks-rosetta/api/rosetta"
)

// Validation tags reported by the struct-level validators. The Request method
// maps them back onto the API's sentinel errors.
const (
	tagTxEmpty         = "tx_empty"
	tagSignaturesEmpty = "signatures_empty"
	tagAccountEmpty    = "account_empty"
)

// newRequestValidator registers struct-level validators for the balance,
// parse, combine, hash and submit requests; the network identifier is left to
// the network guard. Other request types have no struct-level validator.
func newRequestValidator() *validator.Validate {

	v := validator.New()

	v.RegisterStructValidation(balanceValidator, api.BalanceRequest{})
	v.RegisterStructValidation(parseValidator, api.ParseRequest{})
	v.RegisterStructValidation(combineValidator, api.CombineRequest{})
	v.RegisterStructValidation(hashValidator, api.HashRequest{})
	v.RegisterStructValidation(submitValidator, api.SubmitRequest{})

	return v
}

// Request validates the shape of a request object. All shape violations are
// aggregated, so a client sees every problem at once.
func (v *Validator) Request(request interface{}) error {

	err := v.validate.Struct(request)
	if err == nil {
		return nil
	}

	// InvalidValidationError is returned by the validation library in cases
	// of invalid usage, i.e. passing a non-struct to Struct().
	var invErr *validator.InvalidValidationError
	if errors.As(err, &invErr) {
		return api.ErrInvalidValidation
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	var result *multierror.Error
	for _, fieldErr := range fieldErrs {
		switch fieldErr.Tag() {
		case tagTxEmpty:
			result = multierror.Append(result, api.ErrTxBodyEmpty)
		case tagSignaturesEmpty:
			result = multierror.Append(result, api.ErrSignaturesEmpty)
		case tagAccountEmpty:
			result = multierror.Append(result, api.ErrAccountEmpty)
		default:
			result = multierror.Append(result, fmt.Errorf("invalid request field (field: %s, tag: %s)", fieldErr.Field(), fieldErr.Tag()))
		}
	}

	return result.ErrorOrNil()
}

func balanceValidator(sl validator.StructLevel) {
	req := sl.Current().Interface().(api.BalanceRequest)
	if req.AccountID.Address == "" {
		sl.ReportError(req.AccountID.Address, "account_identifier", "AccountID", tagAccountEmpty, "")
	}
}

func parseValidator(sl validator.StructLevel) {
	req := sl.Current().Interface().(api.ParseRequest)
	if req.Transaction == "" {
		sl.ReportError(req.Transaction, "transaction", "Transaction", tagTxEmpty, "")
	}
}

func combineValidator(sl validator.StructLevel) {
	req := sl.Current().Interface().(api.CombineRequest)
	if req.UnsignedTransaction == "" {
		sl.ReportError(req.UnsignedTransaction, "unsigned_transaction", "UnsignedTransaction", tagTxEmpty, "")
	}
	if len(req.Signatures) == 0 {
		sl.ReportError(req.Signatures, "signatures", "Signatures", tagSignaturesEmpty, "")
	}
}

func hashValidator(sl validator.StructLevel) {
	req := sl.Current().Interface().(api.HashRequest)
	if req.SignedTransaction == "" {
		sl.ReportError(req.SignedTransaction, "signed_transaction", "SignedTransaction", tagTxEmpty, "")
	}
}

func submitValidator(sl validator.StructLevel) {
	req := sl.Current().Interface().(api.SubmitRequest)
	if req.SignedTransaction == "" {
		sl.ReportError(req.SignedTransaction, "signed_transaction", "SignedTransaction", tagTxEmpty, "")
	}
}
