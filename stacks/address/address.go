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

// Package address implements the c32check address codec of the Stacks chain.
// An address is the hash160 of a compressed secp256k1 public key, wrapped with
// a network version byte and a four-byte double-SHA256 checksum, rendered in
// the Crockford base32 alphabet with an `S` prefix.
package address

import (
	"bytes"
	"crypto/sha256"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"golang.org/x/crypto/ripemd160"

	"github.com/optakt/stacks-rosetta/models/stacks"
	"github.com/optakt/stacks-rosetta/rosetta/failure"
)

// HashLength is the length of the hash160 signer digest.
const HashLength = 20

// FromPublicKey derives the single-signature standard address of a compressed
// secp256k1 public key on the given network. Identical keys always produce
// identical addresses.
func FromPublicKey(publicKey []byte, params stacks.Params) (string, error) {

	if len(publicKey) != btcec.PubKeyBytesLenCompressed {
		return "", fmt.Errorf("invalid public key length (have: %d, want: %d)", len(publicKey), btcec.PubKeyBytesLenCompressed)
	}
	_, err := btcec.ParsePubKey(publicKey)
	if err != nil {
		return "", fmt.Errorf("invalid public key: %w", err)
	}

	hash := Hash160(publicKey)

	return Encode(params.AddressVersion, hash), nil
}

// Hash160 computes the signer digest of a public key: RIPEMD-160 over SHA-256.
func Hash160(data []byte) [HashLength]byte {
	sha := sha256.Sum256(data)
	rip := ripemd160.New()
	_, _ = rip.Write(sha[:])
	var hash [HashLength]byte
	copy(hash[:], rip.Sum(nil))
	return hash
}

// Encode renders a version byte and hash160 as a c32check address string.
func Encode(version byte, hash [HashLength]byte) string {
	sum := checksum(version, hash[:])
	payload := make([]byte, 0, HashLength+checksumLength)
	payload = append(payload, hash[:]...)
	payload = append(payload, sum...)
	return "S" + string(c32Alphabet[version]) + c32Encode(payload)
}

// Decode parses a c32check address string into its version byte and hash160,
// verifying the checksum.
func Decode(address string) (byte, [HashLength]byte, error) {

	var hash [HashLength]byte

	if len(address) < 2 || normalize(address[0]) != 'S' {
		return 0, hash, fmt.Errorf("invalid address prefix")
	}

	version := bytes.IndexByte([]byte(c32Alphabet), normalize(address[1]))
	if version < 0 {
		return 0, hash, fmt.Errorf("invalid address version character (have: %q)", address[1])
	}

	payload, err := c32Decode(address[2:])
	if err != nil {
		return 0, hash, fmt.Errorf("could not decode address payload: %w", err)
	}
	if len(payload) != HashLength+checksumLength {
		return 0, hash, fmt.Errorf("invalid address payload length (have: %d)", len(payload))
	}

	copy(hash[:], payload[:HashLength])
	sum := checksum(byte(version), payload[:HashLength])
	if !bytes.Equal(sum, payload[HashLength:]) {
		return 0, hash, fmt.Errorf("invalid address checksum")
	}

	return byte(version), hash, nil
}

// Validate checks that an address decodes, has a valid checksum and carries
// the version byte of the given network.
func Validate(address string, params stacks.Params) error {

	version, _, err := Decode(address)
	if err != nil {
		return failure.InvalidAccount{
			Description: failure.NewDescription("address is not a valid c32check string",
				failure.WithErr(err),
			),
			Address: address,
		}
	}

	if version != params.AddressVersion {
		return failure.InvalidAccount{
			Description: failure.NewDescription("address version does not match network",
				failure.WithInt("have", int(version)),
				failure.WithInt("want", int(params.AddressVersion)),
				failure.WithString("network", string(params.Chain)),
			),
			Address: address,
		}
	}

	return nil
}

const checksumLength = 4

// checksum is the first four bytes of a double SHA-256 over the version byte
// followed by the hash160.
func checksum(version byte, hash []byte) []byte {
	data := make([]byte, 0, 1+len(hash))
	data = append(data, version)
	data = append(data, hash...)
	first := sha256.Sum256(data)
	second := sha256.Sum256(first[:])
	return second[:checksumLength]
}
