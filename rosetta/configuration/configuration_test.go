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

package configuration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/stacks-rosetta/models/stacks"
	"github.com/optakt/stacks-rosetta/rosetta/configuration"
	"github.com/optakt/stacks-rosetta/rosetta/failure"
	"github.com/optakt/stacks-rosetta/rosetta/identifier"
)

func TestConfiguration(t *testing.T) {

	config := configuration.New(stacks.Testnet)

	t.Run("network", func(t *testing.T) {
		network := config.Network()
		assert.Equal(t, "stacks", network.Blockchain)
		assert.Equal(t, "testnet", network.Network)
	})

	t.Run("version", func(t *testing.T) {
		version := config.Version()
		assert.Equal(t, "1.4.6", version.RosettaVersion)
		assert.NotEmpty(t, version.NodeVersion)
		assert.NotEmpty(t, version.MiddlewareVersion)
	})

	t.Run("statuses", func(t *testing.T) {
		statuses := config.Statuses()
		require.Len(t, statuses, 4)
		assert.Contains(t, statuses, configuration.StatusSuccess)
		assert.Contains(t, statuses, configuration.StatusPending)
		assert.Contains(t, statuses, configuration.StatusAbortByResponse)
		assert.Contains(t, statuses, configuration.StatusAbortByPostCondition)
	})

	t.Run("operations", func(t *testing.T) {
		operations := config.Operations()
		assert.Len(t, operations, 6)
		assert.Contains(t, operations, stacks.OperationTransfer)
		assert.Contains(t, operations, stacks.OperationFee)
	})

	t.Run("error catalog is dense and stable", func(t *testing.T) {
		errors := config.Errors()
		require.Len(t, errors, 39)

		seen := make(map[uint]bool)
		for _, definition := range errors {
			assert.False(t, seen[definition.Code], "duplicate error code %d", definition.Code)
			seen[definition.Code] = true
			assert.GreaterOrEqual(t, definition.Code, uint(601))
			assert.LessOrEqual(t, definition.Code, uint(639))
		}
	})

	// The codes below are part of the wire contract and must never change.
	t.Run("pinned error codes", func(t *testing.T) {
		assert.Equal(t, uint(610), configuration.ErrorInvalidNetwork.Code)
		assert.Equal(t, uint(611), configuration.ErrorInvalidBlockchain.Code)
		assert.Equal(t, uint(613), configuration.ErrorEmptyNetworkIdentifier.Code)
		assert.Equal(t, uint(619), configuration.ErrorInvalidCurveType.Code)
		assert.Equal(t, uint(628), configuration.ErrorInvalidTransaction.Code)
		assert.Equal(t, uint(629), configuration.ErrorNotSigned.Code)
		assert.Equal(t, uint(635), configuration.ErrorSignatureNotVerified.Code)
		assert.Equal(t, uint(637), configuration.ErrorNeedOnlyOneSignature.Code)
		assert.Equal(t, uint(638), configuration.ErrorSignatureType.Code)
		assert.Equal(t, uint(639), configuration.ErrorMissingSize.Code)
	})

	t.Run("retriable errors", func(t *testing.T) {
		assert.True(t, configuration.ErrorBlockNotFound.Retriable)
		assert.True(t, configuration.ErrorTransactionNotFound.Retriable)
		assert.True(t, configuration.ErrorUnknown.Retriable)
		assert.False(t, configuration.ErrorInvalidTransaction.Retriable)
	})
}

func TestConfiguration_Check(t *testing.T) {

	config := configuration.New(stacks.Testnet)

	t.Run("nominal case", func(t *testing.T) {
		err := config.Check(identifier.Network{Blockchain: "stacks", Network: "testnet"})
		assert.NoError(t, err)
	})

	t.Run("handles missing network identifier", func(t *testing.T) {
		err := config.Check(identifier.Network{})
		assert.Error(t, err)
		var fail failure.EmptyNetwork
		assert.ErrorAs(t, err, &fail)
	})

	t.Run("handles empty blockchain field", func(t *testing.T) {
		err := config.Check(identifier.Network{Network: "testnet"})
		assert.Error(t, err)
		var fail failure.EmptyNetwork
		assert.ErrorAs(t, err, &fail)
	})

	t.Run("handles empty network field", func(t *testing.T) {
		err := config.Check(identifier.Network{Blockchain: "stacks"})
		assert.Error(t, err)
		var fail failure.EmptyNetwork
		assert.ErrorAs(t, err, &fail)
	})

	t.Run("handles wrong blockchain", func(t *testing.T) {
		err := config.Check(identifier.Network{Blockchain: "bitcoin", Network: "testnet"})
		assert.Error(t, err)
		var fail failure.InvalidBlockchain
		assert.ErrorAs(t, err, &fail)
		assert.Equal(t, "bitcoin", fail.Have)
		assert.Equal(t, "stacks", fail.Want)
	})

	t.Run("handles wrong network", func(t *testing.T) {
		err := config.Check(identifier.Network{Blockchain: "stacks", Network: "mainnet"})
		assert.Error(t, err)
		var fail failure.InvalidNetwork
		assert.ErrorAs(t, err, &fail)
		assert.Equal(t, "mainnet", fail.Have)
		assert.Equal(t, "testnet", fail.Want)
	})
}
