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

package object

// Options carries the construction parameters from /construction/preprocess to
// /construction/metadata. All monetary values are decimal strings of microSTX.
type Options struct {
	SenderAddress          string   `json:"sender_address"`
	Type                   string   `json:"type"`
	RecipientAddress       string   `json:"token_transfer_recipient_address"`
	Amount                 string   `json:"amount"`
	Symbol                 string   `json:"symbol"`
	Decimals               uint     `json:"decimals"`
	Size                   uint64   `json:"size"`
	MaxFee                 string   `json:"max_fee,omitempty"`
	SuggestedFeeMultiplier *float64 `json:"suggested_fee_multiplier,omitempty"`
}
