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
	"github.com/optakt/stacks-rosetta/models/stacks"
	"github.com/optakt/stacks-rosetta/rosetta/failure"
	"github.com/optakt/stacks-rosetta/rosetta/identifier"
	"github.com/optakt/stacks-rosetta/rosetta/meta"
)

// Operation statuses advertised by /network/options. The pending status is
// marked successful for wire compatibility with deployed clients, even though
// it is not a terminal status.
var (
	StatusSuccess              = meta.StatusDefinition{Status: stacks.StatusSuccess, Successful: true}
	StatusPending              = meta.StatusDefinition{Status: stacks.StatusPending, Successful: true}
	StatusAbortByResponse      = meta.StatusDefinition{Status: stacks.StatusAbortByResponse, Successful: false}
	StatusAbortByPostCondition = meta.StatusDefinition{Status: stacks.StatusAbortByPostCondition, Successful: false}
)

// Configuration is the static description of this Rosetta deployment: the
// network it serves, the versions it reports and the operation, status and
// error catalogs it advertises.
type Configuration struct {
	network    identifier.Network
	version    meta.Version
	statuses   []meta.StatusDefinition
	operations []string
	errors     []meta.ErrorDefinition
}

// New creates the configuration for the given chain.
func New(chain stacks.Chain) *Configuration {

	network := identifier.Network{
		Blockchain: stacks.Blockchain,
		Network:    string(chain),
	}

	version := meta.Version{
		RosettaVersion:    stacks.RosettaVersion,
		NodeVersion:       stacks.NodeVersion,
		MiddlewareVersion: stacks.MiddlewareVersion,
	}

	statuses := []meta.StatusDefinition{
		StatusSuccess,
		StatusPending,
		StatusAbortByResponse,
		StatusAbortByPostCondition,
	}

	operations := []string{
		stacks.OperationTransfer,
		stacks.OperationContractCall,
		stacks.OperationSmartContract,
		stacks.OperationCoinbase,
		stacks.OperationPoisonMicroblock,
		stacks.OperationFee,
	}

	errors := []meta.ErrorDefinition{
		ErrorInvalidAccount,
		ErrorInsufficientFunds,
		ErrorAccountEmpty,
		ErrorInvalidBlockIndex,
		ErrorBlockNotFound,
		ErrorInvalidBlockHash,
		ErrorTransactionNotFound,
		ErrorInvalidTransactionHash,
		ErrorInvalidParams,
		ErrorInvalidNetwork,
		ErrorInvalidBlockchain,
		ErrorUnknown,
		ErrorEmptyNetworkIdentifier,
		ErrorEmptyAccountIdentifier,
		ErrorInvalidBlockIdentifier,
		ErrorEmptyBlockIdentifier,
		ErrorInvalidPublicKey,
		ErrorEmptyPublicKey,
		ErrorInvalidCurveType,
		ErrorInvalidOperation,
		ErrorInvalidFee,
		ErrorInvalidSender,
		ErrorInvalidRecipient,
		ErrorInvalidCurrency,
		ErrorInvalidSignature,
		ErrorInvalidTransactionType,
		ErrorEmptyOperations,
		ErrorInvalidTransaction,
		ErrorNotSigned,
		ErrorMissingMetadata,
		ErrorFeeEstimationFailed,
		ErrorNeedOnePublicKey,
		ErrorEmptySignatures,
		ErrorMissingSenderAddress,
		ErrorSignatureNotVerified,
		ErrorMissingRecipient,
		ErrorNeedOnlyOneSignature,
		ErrorSignatureType,
		ErrorMissingSize,
	}

	c := Configuration{
		network:    network,
		version:    version,
		statuses:   statuses,
		operations: operations,
		errors:     errors,
	}

	return &c
}

func (c *Configuration) Network() identifier.Network {
	return c.network
}

func (c *Configuration) Version() meta.Version {
	return c.version
}

func (c *Configuration) Statuses() []meta.StatusDefinition {
	return c.statuses
}

func (c *Configuration) Operations() []string {
	return c.operations
}

func (c *Configuration) Errors() []meta.ErrorDefinition {
	return c.errors
}

// Check validates the network identifier of a request against the configured
// chain. It runs before any endpoint logic.
func (c *Configuration) Check(network identifier.Network) error {

	if network.Blockchain == "" && network.Network == "" {
		return failure.EmptyNetwork{
			Description: failure.NewDescription("network identifier is missing"),
		}
	}
	if network.Blockchain == "" {
		return failure.EmptyNetwork{
			Description: failure.NewDescription("blockchain field is empty"),
		}
	}
	if network.Network == "" {
		return failure.EmptyNetwork{
			Description: failure.NewDescription("network field is empty"),
		}
	}

	if network.Blockchain != c.network.Blockchain {
		return failure.InvalidBlockchain{
			Description: failure.NewDescription("invalid network identifier blockchain"),
			Have:        network.Blockchain,
			Want:        c.network.Blockchain,
		}
	}

	if network.Network != c.network.Network {
		return failure.InvalidNetwork{
			Description: failure.NewDescription("invalid network identifier network"),
			Have:        network.Network,
			Want:        c.network.Network,
		}
	}

	return nil
}
