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

package stacks

// Chain is the name of a Stacks network.
type Chain string

// The chains this service can be configured for.
const (
	Mainnet Chain = "mainnet"
	Testnet Chain = "testnet"
)

// Constants shared by all chains.
const (
	Blockchain = "stacks"
	Symbol     = "STX"
	Decimals   = 6

	RosettaVersion    = "1.4.6"
	NodeVersion       = "2.05.0.3.0"
	MiddlewareVersion = "0.1.0"
)

// Operation types recognized by the service. Only the token transfer
// participates in transaction construction.
const (
	OperationTransfer         = "token_transfer"
	OperationContractCall     = "contract_call"
	OperationSmartContract    = "smart_contract"
	OperationCoinbase         = "coinbase"
	OperationPoisonMicroblock = "poison_microblock"
	OperationFee              = "fee"
)

// Operation statuses of mined and pending transactions.
const (
	StatusSuccess              = "success"
	StatusPending              = "pending"
	StatusAbortByResponse      = "abort_by_response"
	StatusAbortByPostCondition = "abort_by_post_condition"
)

// Params bundles the chain-dependent constants of a Stacks network: the
// transaction version byte, the four-byte chain ID and the c32check version
// byte for single-signature standard addresses.
type Params struct {
	Chain              Chain
	TransactionVersion byte
	ChainID            uint32
	AddressVersion     byte
}

// ChainParams maps each supported chain to its parameters.
var ChainParams = map[Chain]Params{
	Mainnet: {
		Chain:              Mainnet,
		TransactionVersion: 0x00,
		ChainID:            0x00000001,
		AddressVersion:     0x16,
	},
	Testnet: {
		Chain:              Testnet,
		TransactionVersion: 0x80,
		ChainID:            0x80000000,
		AddressVersion:     0x1a,
	},
}
