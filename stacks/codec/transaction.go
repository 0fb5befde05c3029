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

// Package codec implements the Stacks transaction wire format for
// single-signature standard token transfers: serialization, structural
// deserialization, the transaction digest, the signature pre-hash and
// recoverable ECDSA verification. Every construction endpoint goes through
// this package, so the encoding must agree byte-for-byte across them.
package codec

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Transaction versions per network.
const (
	VersionMainnet = 0x00
	VersionTestnet = 0x80
)

// Authorization types.
const (
	AuthTypeStandard  = 0x04
	AuthTypeSponsored = 0x05
)

// Spending condition constants for single-signature standard authorization.
const (
	HashModeP2PKH           = 0x00
	KeyEncodingCompressed   = 0x00
	KeyEncodingUncompressed = 0x01
)

// Anchor and post-condition modes.
const (
	AnchorModeOnChainOnly  = 0x01
	AnchorModeOffChainOnly = 0x02
	AnchorModeAny          = 0x03

	PostConditionModeAllow = 0x01
	PostConditionModeDeny  = 0x02
)

// Payload type tags. Only the token transfer participates in construction;
// the other tags are recognized so that deserialization can tell an
// unsupported payload from a corrupt one.
const (
	PayloadTokenTransfer    = 0x00
	PayloadSmartContract    = 0x01
	PayloadContractCall     = 0x02
	PayloadPoisonMicroblock = 0x03
	PayloadCoinbase         = 0x04
)

// Clarity principal type tags inside a token transfer payload.
const (
	PrincipalStandard = 0x05
	PrincipalContract = 0x06
)

// Fixed field lengths.
const (
	SignerLength    = 20
	SignatureLength = 65
	MemoLength      = 34

	// TransferSize is the wire size of a single-signature standard token
	// transfer and the size estimate used for fee suggestions.
	TransferSize = 180
)

// TokenTransfer is the payload of a STX transfer: the recipient principal,
// the amount in microSTX and a fixed-size memo.
type TokenTransfer struct {
	RecipientVersion byte
	RecipientHash    [SignerLength]byte
	Amount           uint64
	Memo             [MemoLength]byte
}

// Transaction is the decoded form of a single-signature standard token
// transfer. The signer is the hash160 of the sender's public key; the
// signature slot is zero-filled while the transaction is unsigned.
type Transaction struct {
	Version           byte
	ChainID           uint32
	AuthType          byte
	HashMode          byte
	Signer            [SignerLength]byte
	Nonce             uint64
	Fee               uint64
	KeyEncoding       byte
	Signature         [SignatureLength]byte
	AnchorMode        byte
	PostConditionMode byte
	Payload           TokenTransfer
}

// Serialize emits the wire-format encoding of the transaction. An unsigned
// transaction serializes with its zero-filled signature slot.
func Serialize(tx *Transaction) []byte {

	buf := bytes.NewBuffer(make([]byte, 0, TransferSize))

	buf.WriteByte(tx.Version)
	_ = binary.Write(buf, binary.BigEndian, tx.ChainID)
	buf.WriteByte(tx.AuthType)

	buf.WriteByte(tx.HashMode)
	buf.Write(tx.Signer[:])
	_ = binary.Write(buf, binary.BigEndian, tx.Nonce)
	_ = binary.Write(buf, binary.BigEndian, tx.Fee)
	buf.WriteByte(tx.KeyEncoding)
	buf.Write(tx.Signature[:])

	buf.WriteByte(tx.AnchorMode)
	buf.WriteByte(tx.PostConditionMode)
	_ = binary.Write(buf, binary.BigEndian, uint32(0))

	buf.WriteByte(PayloadTokenTransfer)
	buf.WriteByte(PrincipalStandard)
	buf.WriteByte(tx.Payload.RecipientVersion)
	buf.Write(tx.Payload.RecipientHash[:])
	_ = binary.Write(buf, binary.BigEndian, tx.Payload.Amount)
	buf.Write(tx.Payload.Memo[:])

	return buf.Bytes()
}

// Deserialize parses a wire-format transaction, failing on any structural
// error. Transactions with post-conditions or a payload other than a token
// transfer are outside the recognized construction set and fail as well.
func Deserialize(data []byte) (*Transaction, error) {

	r := reader{data: data}
	var tx Transaction

	tx.Version = r.byte()
	tx.ChainID = r.uint32()
	tx.AuthType = r.byte()

	tx.HashMode = r.byte()
	r.read(tx.Signer[:])
	tx.Nonce = r.uint64()
	tx.Fee = r.uint64()
	tx.KeyEncoding = r.byte()
	r.read(tx.Signature[:])

	tx.AnchorMode = r.byte()
	tx.PostConditionMode = r.byte()
	conditions := r.uint32()

	payloadType := r.byte()
	principalType := r.byte()
	tx.Payload.RecipientVersion = r.byte()
	r.read(tx.Payload.RecipientHash[:])
	tx.Payload.Amount = r.uint64()
	r.read(tx.Payload.Memo[:])

	if r.failed {
		return nil, fmt.Errorf("transaction is truncated (have: %d bytes)", len(data))
	}
	if r.offset != len(data) {
		return nil, fmt.Errorf("transaction has trailing bytes (have: %d, want: %d)", len(data), r.offset)
	}

	if tx.Version != VersionMainnet && tx.Version != VersionTestnet {
		return nil, fmt.Errorf("unknown transaction version (have: %#x)", tx.Version)
	}
	if tx.AuthType != AuthTypeStandard && tx.AuthType != AuthTypeSponsored {
		return nil, fmt.Errorf("unknown authorization type (have: %#x)", tx.AuthType)
	}
	if tx.HashMode != HashModeP2PKH {
		return nil, fmt.Errorf("unsupported spending condition hash mode (have: %#x)", tx.HashMode)
	}
	if tx.KeyEncoding != KeyEncodingCompressed && tx.KeyEncoding != KeyEncodingUncompressed {
		return nil, fmt.Errorf("unknown key encoding (have: %#x)", tx.KeyEncoding)
	}
	if tx.AnchorMode < AnchorModeOnChainOnly || tx.AnchorMode > AnchorModeAny {
		return nil, fmt.Errorf("unknown anchor mode (have: %#x)", tx.AnchorMode)
	}
	if tx.PostConditionMode != PostConditionModeAllow && tx.PostConditionMode != PostConditionModeDeny {
		return nil, fmt.Errorf("unknown post-condition mode (have: %#x)", tx.PostConditionMode)
	}
	if conditions != 0 {
		return nil, fmt.Errorf("unsupported post-conditions (have: %d)", conditions)
	}
	if payloadType > PayloadCoinbase {
		return nil, fmt.Errorf("unknown payload type (have: %#x)", payloadType)
	}
	if payloadType != PayloadTokenTransfer {
		return nil, fmt.Errorf("unsupported payload type (have: %#x)", payloadType)
	}
	if principalType != PrincipalStandard {
		return nil, fmt.Errorf("unsupported recipient principal type (have: %#x)", principalType)
	}

	return &tx, nil
}

// IsSigned returns true iff the signature slot is populated with a valid
// recoverable signature, meaning not all-zero and a recovery byte of 0 or 1.
func IsSigned(tx *Transaction) bool {
	var zero [SignatureLength]byte
	if tx.Signature == zero {
		return false
	}
	return tx.Signature[0] <= 1
}

// reader is a cursor over a transaction buffer. Reads past the end set the
// failed flag instead of panicking, so structural errors surface once at the
// end of parsing.
type reader struct {
	data   []byte
	offset int
	failed bool
}

func (r *reader) byte() byte {
	if r.failed || r.offset+1 > len(r.data) {
		r.failed = true
		return 0
	}
	b := r.data[r.offset]
	r.offset++
	return b
}

func (r *reader) read(dst []byte) {
	if r.failed || r.offset+len(dst) > len(r.data) {
		r.failed = true
		return
	}
	copy(dst, r.data[r.offset:])
	r.offset += len(dst)
}

func (r *reader) uint32() uint32 {
	var buf [4]byte
	r.read(buf[:])
	return binary.BigEndian.Uint32(buf[:])
}

func (r *reader) uint64() uint64 {
	var buf [8]byte
	r.read(buf[:])
	return binary.BigEndian.Uint64(buf[:])
}
