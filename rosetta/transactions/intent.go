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

package transactions

import (
	"sort"
	"strconv"
	"strings"

	"github.com/optakt/stacks-rosetta/models/stacks"
	"github.com/optakt/stacks-rosetta/rosetta/failure"
	"github.com/optakt/stacks-rosetta/rosetta/object"
)

// Intent describes the semantic content of a balanced operation pair: who
// sends how many microSTX to whom.
type Intent struct {
	Sender    string
	Recipient string
	Amount    uint64
}

// DeriveIntent derives the transfer intent from two operations given as
// input. The operations must be symmetrical: a debit and a credit of the same
// amount between two accounts, both typed as token transfers with a valid
// currency.
func (p *Parser) DeriveIntent(operations []object.Operation) (*Intent, error) {

	if len(operations) != 2 {
		return nil, failure.InvalidOperations{
			Description: failure.NewDescription("invalid number of operations"),
			Count:       len(operations),
		}
	}

	// Sort the operations so that the debit (negative amount) comes first.
	ops := make([]object.Operation, len(operations))
	copy(ops, operations)
	for _, op := range ops {
		if op.Amount == nil {
			return nil, failure.InvalidIntent{
				Description: failure.NewDescription("operation is missing an amount"),
				Sender:      ops[0].AccountID.Address,
				Receiver:    ops[1].AccountID.Address,
			}
		}
	}
	sort.Slice(ops, func(i int, j int) bool {
		return ops[i].Amount.Value < ops[j].Amount.Value
	})

	debit := ops[0]
	credit := ops[1]

	if !strings.HasPrefix(debit.Amount.Value, "-") ||
		strings.HasPrefix(credit.Amount.Value, "-") {
		return nil, failure.InvalidIntent{
			Description: failure.NewDescription("invalid amounts for transfer",
				failure.WithString("debit_amount", debit.Amount.Value),
				failure.WithString("credit_amount", credit.Amount.Value),
			),
			Sender:   debit.AccountID.Address,
			Receiver: credit.AccountID.Address,
		}
	}

	// Validate the currencies of both operations and make sure they match.
	var err error
	debit.Amount.Currency, err = p.validate.Currency(debit.Amount.Currency)
	if err != nil {
		return nil, err
	}
	credit.Amount.Currency, err = p.validate.Currency(credit.Amount.Currency)
	if err != nil {
		return nil, err
	}
	if debit.Amount.Currency != credit.Amount.Currency {
		return nil, failure.InvalidIntent{
			Description: failure.NewDescription("debit and credit currencies do not match"),
			Sender:      debit.AccountID.Address,
			Receiver:    credit.AccountID.Address,
		}
	}

	debitValue, err := strconv.ParseUint(strings.TrimPrefix(debit.Amount.Value, "-"), 10, 64)
	if err != nil {
		return nil, failure.InvalidIntent{
			Description: failure.NewDescription("could not parse debit amount",
				failure.WithString("debit_amount", debit.Amount.Value),
				failure.WithErr(err),
			),
			Sender:   debit.AccountID.Address,
			Receiver: credit.AccountID.Address,
		}
	}
	creditValue, err := strconv.ParseUint(credit.Amount.Value, 10, 64)
	if err != nil {
		return nil, failure.InvalidIntent{
			Description: failure.NewDescription("could not parse credit amount",
				failure.WithString("credit_amount", credit.Amount.Value),
				failure.WithErr(err),
			),
			Sender:   debit.AccountID.Address,
			Receiver: credit.AccountID.Address,
		}
	}
	if debitValue != creditValue {
		return nil, failure.InvalidIntent{
			Description: failure.NewDescription("debit and credit amounts do not match",
				failure.WithString("debit_amount", debit.Amount.Value),
				failure.WithString("credit_amount", credit.Amount.Value),
			),
			Sender:   debit.AccountID.Address,
			Receiver: credit.AccountID.Address,
		}
	}

	// Validate the sender and recipient accounts in their construction roles.
	err = p.validate.Account(debit.AccountID)
	if err != nil {
		return nil, failure.InvalidSender{
			Description: failure.NewDescription("invalid sender account",
				failure.WithErr(err),
			),
			Address: debit.AccountID.Address,
		}
	}
	err = p.validate.Account(credit.AccountID)
	if err != nil {
		return nil, failure.InvalidRecipient{
			Description: failure.NewDescription("invalid recipient account",
				failure.WithErr(err),
			),
			Address: credit.AccountID.Address,
		}
	}

	if debit.Type != stacks.OperationTransfer || credit.Type != stacks.OperationTransfer {
		return nil, failure.InvalidIntent{
			Description: failure.NewDescription("only token transfer operations are supported",
				failure.WithString("debit_type", debit.Type),
				failure.WithString("credit_type", credit.Type),
			),
			Sender:   debit.AccountID.Address,
			Receiver: credit.AccountID.Address,
		}
	}

	intent := Intent{
		Sender:    debit.AccountID.Address,
		Recipient: credit.AccountID.Address,
		Amount:    debitValue,
	}

	return &intent, nil
}
