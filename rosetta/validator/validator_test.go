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

package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	api "github.com/optakt/stacks-rosetta/api/rosetta"
	"github.com/optakt/stacks-rosetta/models/stacks"
	"github.com/optakt/stacks-rosetta/rosetta/failure"
	"github.com/optakt/stacks-rosetta/rosetta/identifier"
	"github.com/optakt/stacks-rosetta/rosetta/object"
	"github.com/optakt/stacks-rosetta/rosetta/validator"
	"github.com/optakt/stacks-rosetta/stacks/address"
)

func testnetValidator() *validator.Validator {
	return validator.New(stacks.ChainParams[stacks.Testnet])
}

func testnetAddress() string {
	var hash [address.HashLength]byte
	for i := range hash {
		hash[i] = byte(i)
	}
	return address.Encode(stacks.ChainParams[stacks.Testnet].AddressVersion, hash)
}

func TestValidator_Account(t *testing.T) {

	v := testnetValidator()

	t.Run("nominal case", func(t *testing.T) {
		err := v.Account(identifier.Account{Address: testnetAddress()})
		assert.NoError(t, err)
	})

	t.Run("handles invalid address", func(t *testing.T) {
		err := v.Account(identifier.Account{Address: "garbage"})
		assert.Error(t, err)
		var fail failure.InvalidAccount
		assert.ErrorAs(t, err, &fail)
	})

	t.Run("handles mainnet address on testnet", func(t *testing.T) {
		var hash [address.HashLength]byte
		mainnet := address.Encode(stacks.ChainParams[stacks.Mainnet].AddressVersion, hash)
		err := v.Account(identifier.Account{Address: mainnet})
		assert.Error(t, err)
	})
}

func TestValidator_Currency(t *testing.T) {

	v := testnetValidator()

	t.Run("nominal case", func(t *testing.T) {
		currency, err := v.Currency(identifier.Currency{Symbol: "STX", Decimals: 6})
		require.NoError(t, err)
		assert.Equal(t, uint(6), currency.Decimals)
	})

	t.Run("fills in missing decimals", func(t *testing.T) {
		currency, err := v.Currency(identifier.Currency{Symbol: "STX"})
		require.NoError(t, err)
		assert.Equal(t, uint(6), currency.Decimals)
	})

	t.Run("handles wrong symbol", func(t *testing.T) {
		_, err := v.Currency(identifier.Currency{Symbol: "BTC", Decimals: 6})
		assert.Error(t, err)
		var fail failure.InvalidCurrency
		assert.ErrorAs(t, err, &fail)
	})

	t.Run("handles wrong decimals", func(t *testing.T) {
		_, err := v.Currency(identifier.Currency{Symbol: "STX", Decimals: 8})
		assert.Error(t, err)
		var fail failure.InvalidCurrency
		assert.ErrorAs(t, err, &fail)
	})
}

func TestValidator_Block(t *testing.T) {

	v := testnetValidator()

	t.Run("accepts empty identifier", func(t *testing.T) {
		assert.NoError(t, v.Block(identifier.Block{}))
	})

	t.Run("accepts valid hash", func(t *testing.T) {
		hash := "0x" + "ab"
		for i := 0; i < 31; i++ {
			hash += "cd"
		}
		assert.NoError(t, v.Block(identifier.Block{Hash: hash}))
	})

	t.Run("rejects short hash", func(t *testing.T) {
		err := v.Block(identifier.Block{Hash: "0xabcd"})
		assert.ErrorIs(t, err, api.ErrInvalidBlockHash)
	})

	t.Run("rejects odd-length hash", func(t *testing.T) {
		err := v.Block(identifier.Block{Hash: "0xabc"})
		assert.ErrorIs(t, err, api.ErrInvalidBlockHash)
	})
}

func TestValidator_Request(t *testing.T) {

	v := testnetValidator()

	t.Run("nominal case", func(t *testing.T) {
		req := api.HashRequest{SignedTransaction: "0xdeadbeef"}
		assert.NoError(t, v.Request(req))
	})

	t.Run("handles empty transaction text", func(t *testing.T) {
		err := v.Request(api.HashRequest{})
		assert.ErrorIs(t, err, api.ErrTxBodyEmpty)
	})

	t.Run("handles empty combine request", func(t *testing.T) {
		err := v.Request(api.CombineRequest{})
		assert.ErrorIs(t, err, api.ErrTxBodyEmpty)
		assert.ErrorIs(t, err, api.ErrSignaturesEmpty)
	})

	t.Run("handles populated combine request", func(t *testing.T) {
		req := api.CombineRequest{
			UnsignedTransaction: "0xdeadbeef",
			Signatures:          []object.Signature{{}},
		}
		assert.NoError(t, v.Request(req))
	})

	t.Run("handles empty account identifier", func(t *testing.T) {
		err := v.Request(api.BalanceRequest{})
		assert.ErrorIs(t, err, api.ErrAccountEmpty)
	})

	t.Run("handles non-struct input", func(t *testing.T) {
		err := v.Request("bogus")
		assert.ErrorIs(t, err, api.ErrInvalidValidation)
	})
}
