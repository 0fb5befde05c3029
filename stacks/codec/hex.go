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

package codec

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// DecodeHex decodes a hex string with or without `0x` prefix. An odd digit
// count is a structural error.
func DecodeHex(text string) ([]byte, error) {

	trimmed := strings.TrimPrefix(strings.TrimPrefix(text, "0x"), "0X")
	if len(trimmed)%2 != 0 {
		return nil, fmt.Errorf("odd number of hex digits (have: %d)", len(trimmed))
	}

	data, err := hex.DecodeString(trimmed)
	if err != nil {
		return nil, fmt.Errorf("invalid hex: %w", err)
	}

	return data, nil
}

// EncodeHex renders bytes as lowercase hex with the mandatory `0x` prefix all
// responses carry.
func EncodeHex(data []byte) string {
	return "0x" + hex.EncodeToString(data)
}
