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

package configuration

import (
	"github.com/optakt/stacks-rosetta/rosetta/meta"
)

// The static error catalog. Codes and messages are part of the wire contract
// and must never change; new errors are appended at the end of the range.
// Lookup failures are retriable, every validation error is not.
var (
	ErrorInvalidAccount         = meta.ErrorDefinition{Code: 601, Message: "invalid account", Retriable: false}
	ErrorInsufficientFunds      = meta.ErrorDefinition{Code: 602, Message: "insufficient funds", Retriable: false}
	ErrorAccountEmpty           = meta.ErrorDefinition{Code: 603, Message: "account is empty", Retriable: false}
	ErrorInvalidBlockIndex      = meta.ErrorDefinition{Code: 604, Message: "invalid block index", Retriable: false}
	ErrorBlockNotFound          = meta.ErrorDefinition{Code: 605, Message: "block not found", Retriable: true}
	ErrorInvalidBlockHash       = meta.ErrorDefinition{Code: 606, Message: "invalid block hash", Retriable: false}
	ErrorTransactionNotFound    = meta.ErrorDefinition{Code: 607, Message: "transaction not found", Retriable: true}
	ErrorInvalidTransactionHash = meta.ErrorDefinition{Code: 608, Message: "invalid transaction hash", Retriable: false}
	ErrorInvalidParams          = meta.ErrorDefinition{Code: 609, Message: "invalid params", Retriable: false}
	ErrorInvalidNetwork         = meta.ErrorDefinition{Code: 610, Message: "invalid network", Retriable: false}
	ErrorInvalidBlockchain      = meta.ErrorDefinition{Code: 611, Message: "invalid blockchain", Retriable: false}
	ErrorUnknown                = meta.ErrorDefinition{Code: 612, Message: "unknown error", Retriable: true}
	ErrorEmptyNetworkIdentifier = meta.ErrorDefinition{Code: 613, Message: "network identifier is empty", Retriable: false}
	ErrorEmptyAccountIdentifier = meta.ErrorDefinition{Code: 614, Message: "account identifier is empty", Retriable: false}
	ErrorInvalidBlockIdentifier = meta.ErrorDefinition{Code: 615, Message: "invalid block identifier", Retriable: false}
	ErrorEmptyBlockIdentifier   = meta.ErrorDefinition{Code: 616, Message: "block identifier is empty", Retriable: false}
	ErrorInvalidPublicKey       = meta.ErrorDefinition{Code: 617, Message: "invalid public key", Retriable: false}
	ErrorEmptyPublicKey         = meta.ErrorDefinition{Code: 618, Message: "public key is empty", Retriable: false}
	ErrorInvalidCurveType       = meta.ErrorDefinition{Code: 619, Message: "invalid curve type", Retriable: false}
	ErrorInvalidOperation       = meta.ErrorDefinition{Code: 620, Message: "invalid operation", Retriable: false}
	ErrorInvalidFee             = meta.ErrorDefinition{Code: 621, Message: "invalid fee", Retriable: false}
	ErrorInvalidSender          = meta.ErrorDefinition{Code: 622, Message: "invalid sender address", Retriable: false}
	ErrorInvalidRecipient       = meta.ErrorDefinition{Code: 623, Message: "invalid recipient address", Retriable: false}
	ErrorInvalidCurrency        = meta.ErrorDefinition{Code: 624, Message: "invalid currency", Retriable: false}
	ErrorInvalidSignature       = meta.ErrorDefinition{Code: 625, Message: "invalid signature", Retriable: false}
	ErrorInvalidTransactionType = meta.ErrorDefinition{Code: 626, Message: "invalid transaction type", Retriable: false}
	ErrorEmptyOperations        = meta.ErrorDefinition{Code: 627, Message: "operations are empty", Retriable: false}
	ErrorInvalidTransaction     = meta.ErrorDefinition{Code: 628, Message: "invalid transaction string", Retriable: false}
	ErrorNotSigned              = meta.ErrorDefinition{Code: 629, Message: "transaction is not signed", Retriable: false}
	ErrorMissingMetadata        = meta.ErrorDefinition{Code: 630, Message: "metadata is missing", Retriable: false}
	ErrorFeeEstimationFailed    = meta.ErrorDefinition{Code: 631, Message: "fee estimation failed", Retriable: true}
	ErrorNeedOnePublicKey       = meta.ErrorDefinition{Code: 632, Message: "need exactly one public key", Retriable: false}
	ErrorEmptySignatures        = meta.ErrorDefinition{Code: 633, Message: "signatures are empty", Retriable: false}
	ErrorMissingSenderAddress   = meta.ErrorDefinition{Code: 634, Message: "sender address is missing", Retriable: false}
	ErrorSignatureNotVerified   = meta.ErrorDefinition{Code: 635, Message: "signature is not verified", Retriable: false}
	ErrorMissingRecipient       = meta.ErrorDefinition{Code: 636, Message: "recipient address is missing", Retriable: false}
	ErrorNeedOnlyOneSignature   = meta.ErrorDefinition{Code: 637, Message: "need only one signature", Retriable: false}
	ErrorSignatureType          = meta.ErrorDefinition{Code: 638, Message: "signature type is not supported", Retriable: false}

	// Code 639 used to share 638 with the signature type error; it has its own
	// code now so clients can tell the two apart. Clients matching on 638 for a
	// missing size keep working only if they also match on the message.
	ErrorMissingSize = meta.ErrorDefinition{Code: 639, Message: "transaction size is missing", Retriable: false}
)
