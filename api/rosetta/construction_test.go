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

package rosetta_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rosetta "github.com/optakt/stacks-rosetta/api/rosetta"
	"github.com/optakt/stacks-rosetta/models/stacks"
	"github.com/optakt/stacks-rosetta/rosetta/configuration"
	"github.com/optakt/stacks-rosetta/rosetta/identifier"
	"github.com/optakt/stacks-rosetta/rosetta/object"
	"github.com/optakt/stacks-rosetta/rosetta/transactions"
	"github.com/optakt/stacks-rosetta/rosetta/validator"
	"github.com/optakt/stacks-rosetta/stacks/address"
	"github.com/optakt/stacks-rosetta/stacks/codec"
	"github.com/optakt/stacks-rosetta/testing/mocks"
)

var testnet = stacks.ChainParams[stacks.Testnet]

var testNetworkID = identifier.Network{
	Blockchain: "stacks",
	Network:    "testnet",
}

var testCurrentBlock = identifier.Block{
	Hash: "0x" + strings.Repeat("ab", 32),
}

func testConstruction(node *mocks.Node) *rosetta.Construction {

	config := configuration.New(stacks.Testnet)
	validate := validator.New(testnet)
	transact := transactions.NewParser(testnet, validate)
	retrieve := &mocks.Retriever{
		CurrentFunc: func() (identifier.Block, int64, error) {
			return testCurrentBlock, 0, nil
		},
	}

	if node == nil {
		node = &mocks.Node{}
	}

	return rosetta.NewConstruction(config, validate, transact, retrieve, node)
}

// post runs a handler against a JSON-encoded request body and returns the
// recorder along with the handler error.
func post(t *testing.T, handler func(echo.Context) error, body interface{}) (*httptest.ResponseRecorder, error) {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	server := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(string(data)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	ctx := server.NewContext(req, rec)

	return rec, handler(ctx)
}

// decode unmarshals a successful response body.
func decode(t *testing.T, rec *httptest.ResponseRecorder, res interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), res))
}

// assertRosettaError checks that a handler failed with the given HTTP status
// and catalog code.
func assertRosettaError(t *testing.T, err error, status int, code uint) {
	t.Helper()

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, status, httpErr.Code)

	rosErr, ok := httpErr.Message.(rosetta.Error)
	require.True(t, ok, "handler error should carry a Rosetta error body")
	assert.Equal(t, code, rosErr.Code)
}

// testWallet derives a deterministic key pair and its testnet address.
func testWallet(t *testing.T, seed byte) (*btcec.PrivateKey, []byte, string) {
	t.Helper()

	raw := make([]byte, 32)
	for i := range raw {
		raw[i] = seed + byte(i)
	}
	private, public := btcec.PrivKeyFromBytes(raw)
	compressed := public.SerializeCompressed()

	addr, err := address.FromPublicKey(compressed, testnet)
	require.NoError(t, err)

	return private, compressed, addr
}

func transferOperations(sender string, recipient string, amount string) []object.Operation {
	currency := identifier.Currency{Symbol: "STX", Decimals: 6}
	return []object.Operation{
		{
			ID:        identifier.Operation{Index: 0},
			Type:      stacks.OperationTransfer,
			AccountID: identifier.Account{Address: sender},
			Amount:    &object.Amount{Value: "-" + amount, Currency: currency},
		},
		{
			ID:        identifier.Operation{Index: 1},
			Type:      stacks.OperationTransfer,
			AccountID: identifier.Account{Address: recipient},
			Amount:    &object.Amount{Value: amount, Currency: currency},
		},
	}
}

// signPayload signs a pre-sign digest the way a wallet would and renders the
// Rosetta signature object.
func signPayload(t *testing.T, private *btcec.PrivateKey, publicKey []byte, payload object.SigningPayload) object.Signature {
	t.Helper()

	digest, err := codec.DecodeHex(payload.HexBytes)
	require.NoError(t, err)

	compact, err := ecdsa.SignCompact(private, digest, true)
	require.NoError(t, err)
	wire := make([]byte, codec.SignatureLength)
	wire[0] = compact[0] - 27 - 4
	copy(wire[1:], compact[1:])

	return object.Signature{
		SigningPayload: payload,
		PublicKey: object.PublicKey{
			HexBytes:  codec.EncodeHex(publicKey),
			CurveType: object.CurveSecp256k1,
		},
		SignatureType: object.SignatureEcdsaRecovery,
		HexBytes:      codec.EncodeHex(wire),
	}
}

func TestConstruction_Derive(t *testing.T) {

	c := testConstruction(nil)

	t.Run("derives known testnet address", func(t *testing.T) {
		req := rosetta.DeriveRequest{
			NetworkID: testNetworkID,
			PublicKey: object.PublicKey{
				HexBytes:  "025c13b2fc2261956d8a4ad07d481b1a3b2cbf93a24f992249a61c3a1c4de79c51",
				CurveType: object.CurveSecp256k1,
			},
		}
		rec, err := post(t, c.Derive, req)
		require.NoError(t, err)

		var res rosetta.DeriveResponse
		decode(t, rec, &res)
		assert.Equal(t, "ST19SH1QSCR8VMEX6SVWP33WCF08RPDY5QVHX94BM", res.AccountID.Address)
	})

	t.Run("handles invalid curve type", func(t *testing.T) {
		req := rosetta.DeriveRequest{
			NetworkID: testNetworkID,
			PublicKey: object.PublicKey{
				HexBytes:  "025c13b2fc2261956d8a4ad07d481b1a3b2cbf93a24f992249a61c3a1c4de79c51",
				CurveType: "edwards25519",
			},
		}
		_, err := post(t, c.Derive, req)
		assertRosettaError(t, err, http.StatusBadRequest, 619)
	})

	t.Run("handles empty public key", func(t *testing.T) {
		req := rosetta.DeriveRequest{
			NetworkID: testNetworkID,
			PublicKey: object.PublicKey{CurveType: object.CurveSecp256k1},
		}
		_, err := post(t, c.Derive, req)
		assertRosettaError(t, err, http.StatusBadRequest, 618)
	})

	t.Run("handles hex that is not a compressed point", func(t *testing.T) {
		req := rosetta.DeriveRequest{
			NetworkID: testNetworkID,
			PublicKey: object.PublicKey{
				HexBytes:  "0000",
				CurveType: object.CurveSecp256k1,
			},
		}
		_, err := post(t, c.Derive, req)
		assertRosettaError(t, err, http.StatusBadRequest, 617)
	})

	t.Run("handles missing network identifier", func(t *testing.T) {
		req := rosetta.DeriveRequest{
			PublicKey: object.PublicKey{
				HexBytes:  "025c13b2fc2261956d8a4ad07d481b1a3b2cbf93a24f992249a61c3a1c4de79c51",
				CurveType: object.CurveSecp256k1,
			},
		}
		_, err := post(t, c.Derive, req)
		assertRosettaError(t, err, http.StatusBadRequest, 613)
	})

	t.Run("handles wrong blockchain", func(t *testing.T) {
		req := rosetta.DeriveRequest{
			NetworkID: identifier.Network{Blockchain: "bitcoin", Network: "testnet"},
		}
		_, err := post(t, c.Derive, req)
		assertRosettaError(t, err, http.StatusBadRequest, 611)
	})

	t.Run("handles wrong network", func(t *testing.T) {
		req := rosetta.DeriveRequest{
			NetworkID: identifier.Network{Blockchain: "stacks", Network: "mainnet"},
		}
		_, err := post(t, c.Derive, req)
		assertRosettaError(t, err, http.StatusBadRequest, 610)
	})
}

func TestConstruction_Preprocess(t *testing.T) {

	c := testConstruction(nil)
	_, _, sender := testWallet(t, 1)
	_, _, recipient := testWallet(t, 2)

	t.Run("nominal case", func(t *testing.T) {
		multiplier := 1.0
		req := rosetta.PreprocessRequest{
			NetworkID:  testNetworkID,
			Operations: transferOperations(sender, recipient, "500000"),
			MaxFee: []object.Amount{
				{Value: "12380898", Currency: identifier.Currency{Symbol: "STX", Decimals: 6}},
			},
			SuggestedFeeMultiplier: &multiplier,
		}
		rec, err := post(t, c.Preprocess, req)
		require.NoError(t, err)

		var res rosetta.PreprocessResponse
		decode(t, rec, &res)

		assert.Equal(t, sender, res.Options.SenderAddress)
		assert.Equal(t, recipient, res.Options.RecipientAddress)
		assert.Equal(t, "500000", res.Options.Amount)
		assert.Equal(t, stacks.OperationTransfer, res.Options.Type)
		assert.Equal(t, uint64(180), res.Options.Size)
		assert.Equal(t, "12380898", res.Options.MaxFee)
		require.NotNil(t, res.Options.SuggestedFeeMultiplier)
		assert.Equal(t, 1.0, *res.Options.SuggestedFeeMultiplier)

		require.Len(t, res.RequiredKeyIDs, 1)
		assert.Equal(t, sender, res.RequiredKeyIDs[0].Address)
	})

	t.Run("handles empty operations", func(t *testing.T) {
		req := rosetta.PreprocessRequest{NetworkID: testNetworkID}
		_, err := post(t, c.Preprocess, req)
		assertRosettaError(t, err, http.StatusBadRequest, 627)
	})

	t.Run("handles unbalanced operations", func(t *testing.T) {
		ops := transferOperations(sender, recipient, "500000")
		ops[1].Amount.Value = "400000"
		req := rosetta.PreprocessRequest{NetworkID: testNetworkID, Operations: ops}
		_, err := post(t, c.Preprocess, req)
		assertRosettaError(t, err, http.StatusBadRequest, 620)
	})

	t.Run("handles wrong operation count", func(t *testing.T) {
		ops := transferOperations(sender, recipient, "500000")
		req := rosetta.PreprocessRequest{NetworkID: testNetworkID, Operations: ops[:1]}
		_, err := post(t, c.Preprocess, req)
		assertRosettaError(t, err, http.StatusBadRequest, 620)
	})
}

func TestConstruction_Metadata(t *testing.T) {

	_, senderKey, sender := testWallet(t, 1)
	_, _, recipient := testWallet(t, 2)

	node := &mocks.Node{
		AccountFunc: func(_ context.Context, address string) (uint64, uint64, error) {
			assert.Equal(t, sender, address)
			return 5, 1_000_000, nil
		},
		FeeRateFunc: func(_ context.Context) (uint64, error) {
			return 10, nil
		},
	}
	c := testConstruction(node)

	options := object.Options{
		SenderAddress:    sender,
		Type:             stacks.OperationTransfer,
		RecipientAddress: recipient,
		Amount:           "500000",
		Symbol:           "STX",
		Decimals:         6,
		Size:             180,
	}

	t.Run("nominal case", func(t *testing.T) {
		req := rosetta.MetadataRequest{NetworkID: testNetworkID, Options: options}
		rec, err := post(t, c.Metadata, req)
		require.NoError(t, err)

		var res rosetta.MetadataResponse
		decode(t, rec, &res)

		assert.Equal(t, int64(5), res.Metadata.AccountSequence)
		assert.Equal(t, testCurrentBlock.Hash, res.Metadata.RecentBlockHash)
		assert.Equal(t, "1800", res.Metadata.Fee)
		require.Len(t, res.SuggestedFee, 1)
		assert.Equal(t, "1800", res.SuggestedFee[0].Value)
		assert.Equal(t, "STX", res.SuggestedFee[0].Currency.Symbol)
	})

	t.Run("scales and rounds up with the fee multiplier", func(t *testing.T) {
		multiplier := 1.5
		scaled := options
		scaled.SuggestedFeeMultiplier = &multiplier

		req := rosetta.MetadataRequest{NetworkID: testNetworkID, Options: scaled}
		rec, err := post(t, c.Metadata, req)
		require.NoError(t, err)

		var res rosetta.MetadataResponse
		decode(t, rec, &res)
		assert.Equal(t, "2700", res.Metadata.Fee)
	})

	t.Run("multiplier below one is ignored", func(t *testing.T) {
		multiplier := 0.5
		scaled := options
		scaled.SuggestedFeeMultiplier = &multiplier

		req := rosetta.MetadataRequest{NetworkID: testNetworkID, Options: scaled}
		rec, err := post(t, c.Metadata, req)
		require.NoError(t, err)

		var res rosetta.MetadataResponse
		decode(t, rec, &res)
		assert.Equal(t, "1800", res.Metadata.Fee)
	})

	t.Run("bounds the fee by the max fee", func(t *testing.T) {
		capped := options
		capped.MaxFee = "1000"

		req := rosetta.MetadataRequest{NetworkID: testNetworkID, Options: capped}
		rec, err := post(t, c.Metadata, req)
		require.NoError(t, err)

		var res rosetta.MetadataResponse
		decode(t, rec, &res)
		assert.Equal(t, "1000", res.Metadata.Fee)
	})

	t.Run("verifies given public key against sender", func(t *testing.T) {
		req := rosetta.MetadataRequest{
			NetworkID:  testNetworkID,
			Options:    options,
			PublicKeys: []object.PublicKey{{HexBytes: codec.EncodeHex(senderKey), CurveType: object.CurveSecp256k1}},
		}
		_, err := post(t, c.Metadata, req)
		require.NoError(t, err)
	})

	t.Run("handles public key not matching sender", func(t *testing.T) {
		_, otherKey, _ := testWallet(t, 9)
		req := rosetta.MetadataRequest{
			NetworkID:  testNetworkID,
			Options:    options,
			PublicKeys: []object.PublicKey{{HexBytes: codec.EncodeHex(otherKey), CurveType: object.CurveSecp256k1}},
		}
		_, err := post(t, c.Metadata, req)
		assertRosettaError(t, err, http.StatusBadRequest, 617)
	})

	t.Run("handles wrong transaction type", func(t *testing.T) {
		wrong := options
		wrong.Type = stacks.OperationCoinbase
		req := rosetta.MetadataRequest{NetworkID: testNetworkID, Options: wrong}
		_, err := post(t, c.Metadata, req)
		assertRosettaError(t, err, http.StatusBadRequest, 626)
	})

	t.Run("handles invalid sender", func(t *testing.T) {
		wrong := options
		wrong.SenderAddress = "garbage"
		req := rosetta.MetadataRequest{NetworkID: testNetworkID, Options: wrong}
		_, err := post(t, c.Metadata, req)
		assertRosettaError(t, err, http.StatusBadRequest, 622)
	})

	t.Run("handles invalid recipient", func(t *testing.T) {
		wrong := options
		wrong.RecipientAddress = "garbage"
		req := rosetta.MetadataRequest{NetworkID: testNetworkID, Options: wrong}
		_, err := post(t, c.Metadata, req)
		assertRosettaError(t, err, http.StatusBadRequest, 623)
	})

	t.Run("handles missing size", func(t *testing.T) {
		wrong := options
		wrong.Size = 0
		req := rosetta.MetadataRequest{NetworkID: testNetworkID, Options: wrong}
		_, err := post(t, c.Metadata, req)
		assertRosettaError(t, err, http.StatusBadRequest, 639)
	})

	t.Run("handles node failure", func(t *testing.T) {
		broken := &mocks.Node{
			AccountFunc: func(_ context.Context, _ string) (uint64, uint64, error) {
				return 0, 0, mocks.DummyError
			},
		}
		c := testConstruction(broken)
		req := rosetta.MetadataRequest{NetworkID: testNetworkID, Options: options}
		_, err := post(t, c.Metadata, req)
		assertRosettaError(t, err, http.StatusInternalServerError, 612)
	})
}

// flow runs preprocess, metadata and payloads against a construction API with
// a mocked node, returning the unsigned transaction and signing payload.
func flow(t *testing.T, c *rosetta.Construction, senderKey []byte, sender string, recipient string) rosetta.PayloadsResponse {
	t.Helper()

	preReq := rosetta.PreprocessRequest{
		NetworkID:  testNetworkID,
		Operations: transferOperations(sender, recipient, "500000"),
	}
	preRec, err := post(t, c.Preprocess, preReq)
	require.NoError(t, err)
	var preRes rosetta.PreprocessResponse
	decode(t, preRec, &preRes)

	metaReq := rosetta.MetadataRequest{NetworkID: testNetworkID, Options: preRes.Options}
	metaRec, err := post(t, c.Metadata, metaReq)
	require.NoError(t, err)
	var metaRes rosetta.MetadataResponse
	decode(t, metaRec, &metaRes)

	payReq := rosetta.PayloadsRequest{
		NetworkID:  testNetworkID,
		Operations: transferOperations(sender, recipient, "500000"),
		Metadata:   metaRes.Metadata,
		PublicKeys: []object.PublicKey{{HexBytes: codec.EncodeHex(senderKey), CurveType: object.CurveSecp256k1}},
	}
	payRec, err := post(t, c.Payloads, payReq)
	require.NoError(t, err)
	var payRes rosetta.PayloadsResponse
	decode(t, payRec, &payRes)

	return payRes
}

func feeNode() *mocks.Node {
	return &mocks.Node{
		AccountFunc: func(_ context.Context, _ string) (uint64, uint64, error) {
			return 5, 1_000_000, nil
		},
		FeeRateFunc: func(_ context.Context) (uint64, error) {
			return 10, nil
		},
	}
}

func TestConstruction_Payloads(t *testing.T) {

	c := testConstruction(feeNode())
	_, senderKey, sender := testWallet(t, 1)
	_, _, recipient := testWallet(t, 2)

	t.Run("nominal case", func(t *testing.T) {
		res := flow(t, c, senderKey, sender, recipient)

		assert.True(t, strings.HasPrefix(res.Transaction, "0x"))
		data, err := codec.DecodeHex(res.Transaction)
		require.NoError(t, err)
		tx, err := codec.Deserialize(data)
		require.NoError(t, err)
		assert.False(t, codec.IsSigned(tx))
		assert.Equal(t, uint64(5), tx.Nonce)
		assert.Equal(t, uint64(1800), tx.Fee)
		assert.Equal(t, uint64(500_000), tx.Payload.Amount)

		require.Len(t, res.Payloads, 1)
		payload := res.Payloads[0]
		assert.Equal(t, sender, payload.Address)
		require.NotNil(t, payload.AccountID)
		assert.Equal(t, sender, payload.AccountID.Address)
		assert.Equal(t, object.SignatureEcdsaRecovery, payload.SignatureType)

		expected := codec.PreSignHash(codec.SigHash(tx), tx.AuthType, tx.Fee, tx.Nonce)
		assert.Equal(t, codec.EncodeHex(expected[:]), payload.HexBytes)
	})

	t.Run("handles empty public keys", func(t *testing.T) {
		req := rosetta.PayloadsRequest{
			NetworkID:  testNetworkID,
			Operations: transferOperations(sender, recipient, "500000"),
			Metadata:   object.Metadata{AccountSequence: 5, Fee: "1800"},
		}
		_, err := post(t, c.Payloads, req)
		assertRosettaError(t, err, http.StatusBadRequest, 618)
	})

	t.Run("handles more than one public key", func(t *testing.T) {
		req := rosetta.PayloadsRequest{
			NetworkID:  testNetworkID,
			Operations: transferOperations(sender, recipient, "500000"),
			Metadata:   object.Metadata{AccountSequence: 5, Fee: "1800"},
			PublicKeys: []object.PublicKey{
				{HexBytes: codec.EncodeHex(senderKey), CurveType: object.CurveSecp256k1},
				{HexBytes: codec.EncodeHex(senderKey), CurveType: object.CurveSecp256k1},
			},
		}
		_, err := post(t, c.Payloads, req)
		assertRosettaError(t, err, http.StatusBadRequest, 632)
	})

	t.Run("handles invalid curve", func(t *testing.T) {
		req := rosetta.PayloadsRequest{
			NetworkID:  testNetworkID,
			Operations: transferOperations(sender, recipient, "500000"),
			Metadata:   object.Metadata{AccountSequence: 5, Fee: "1800"},
			PublicKeys: []object.PublicKey{{HexBytes: codec.EncodeHex(senderKey), CurveType: "edwards25519"}},
		}
		_, err := post(t, c.Payloads, req)
		assertRosettaError(t, err, http.StatusBadRequest, 619)
	})
}

func TestConstruction_Parse(t *testing.T) {

	c := testConstruction(feeNode())
	_, senderKey, sender := testWallet(t, 1)
	_, _, recipient := testWallet(t, 2)

	payloads := flow(t, c, senderKey, sender, recipient)

	t.Run("unsigned transaction round-trips to operations", func(t *testing.T) {
		req := rosetta.ParseRequest{
			NetworkID:   testNetworkID,
			Signed:      false,
			Transaction: payloads.Transaction,
		}
		rec, err := post(t, c.Parse, req)
		require.NoError(t, err)

		var res rosetta.ParseResponse
		decode(t, rec, &res)

		require.Len(t, res.Operations, 3)
		assert.Empty(t, res.SignerIDs)

		// The parsed operations must match the construction input, modulo the
		// inserted fee operation.
		assert.Equal(t, sender, res.Operations[1].AccountID.Address)
		assert.Equal(t, "-500000", res.Operations[1].Amount.Value)
		assert.Equal(t, recipient, res.Operations[2].AccountID.Address)
		assert.Equal(t, "500000", res.Operations[2].Amount.Value)
		for _, op := range res.Operations {
			assert.Empty(t, op.Status)
		}
	})

	t.Run("handles odd-length hex", func(t *testing.T) {
		req := rosetta.ParseRequest{
			NetworkID:   testNetworkID,
			Transaction: payloads.Transaction[:len(payloads.Transaction)-1],
		}
		_, err := post(t, c.Parse, req)
		assertRosettaError(t, err, http.StatusBadRequest, 628)
	})

	t.Run("handles empty transaction", func(t *testing.T) {
		req := rosetta.ParseRequest{NetworkID: testNetworkID}
		_, err := post(t, c.Parse, req)
		assertRosettaError(t, err, http.StatusBadRequest, 628)
	})

	t.Run("handles unsigned transaction with signed flag", func(t *testing.T) {
		req := rosetta.ParseRequest{
			NetworkID:   testNetworkID,
			Signed:      true,
			Transaction: payloads.Transaction,
		}
		_, err := post(t, c.Parse, req)
		assertRosettaError(t, err, http.StatusBadRequest, 629)
	})
}

func TestConstruction_Combine(t *testing.T) {

	c := testConstruction(feeNode())
	private, senderKey, sender := testWallet(t, 1)
	otherPrivate, _, _ := testWallet(t, 9)
	_, _, recipient := testWallet(t, 2)

	payloads := flow(t, c, senderKey, sender, recipient)
	signature := signPayload(t, private, senderKey, payloads.Payloads[0])

	t.Run("nominal case", func(t *testing.T) {
		req := rosetta.CombineRequest{
			NetworkID:           testNetworkID,
			UnsignedTransaction: payloads.Transaction,
			Signatures:          []object.Signature{signature},
		}
		rec, err := post(t, c.Combine, req)
		require.NoError(t, err)

		var res rosetta.CombineResponse
		decode(t, rec, &res)

		data, err := codec.DecodeHex(res.SignedTransaction)
		require.NoError(t, err)
		tx, err := codec.Deserialize(data)
		require.NoError(t, err)
		assert.True(t, codec.IsSigned(tx))

		// The signed transaction parses with the sender as recovered signer.
		parseReq := rosetta.ParseRequest{
			NetworkID:   testNetworkID,
			Signed:      true,
			Transaction: res.SignedTransaction,
		}
		parseRec, err := post(t, c.Parse, parseReq)
		require.NoError(t, err)

		var parseRes rosetta.ParseResponse
		decode(t, parseRec, &parseRes)
		require.Len(t, parseRes.SignerIDs, 1)
		assert.Equal(t, sender, parseRes.SignerIDs[0].Address)
	})

	t.Run("accepts rotated signature ordering", func(t *testing.T) {
		raw, err := codec.DecodeHex(signature.HexBytes)
		require.NoError(t, err)
		rotated := make([]byte, len(raw))
		copy(rotated, raw[1:])
		rotated[len(raw)-1] = raw[0]

		sig := signature
		sig.HexBytes = codec.EncodeHex(rotated)

		req := rosetta.CombineRequest{
			NetworkID:           testNetworkID,
			UnsignedTransaction: payloads.Transaction,
			Signatures:          []object.Signature{sig},
		}
		_, err = post(t, c.Combine, req)
		require.NoError(t, err)
	})

	t.Run("handles two signatures", func(t *testing.T) {
		req := rosetta.CombineRequest{
			NetworkID:           testNetworkID,
			UnsignedTransaction: payloads.Transaction,
			Signatures:          []object.Signature{signature, signature},
		}
		_, err := post(t, c.Combine, req)
		assertRosettaError(t, err, http.StatusBadRequest, 637)
	})

	t.Run("handles empty signatures", func(t *testing.T) {
		req := rosetta.CombineRequest{
			NetworkID:           testNetworkID,
			UnsignedTransaction: payloads.Transaction,
		}
		_, err := post(t, c.Combine, req)
		assertRosettaError(t, err, http.StatusBadRequest, 633)
	})

	t.Run("handles wrong signer", func(t *testing.T) {
		wrong := signPayload(t, otherPrivate, senderKey, payloads.Payloads[0])

		req := rosetta.CombineRequest{
			NetworkID:           testNetworkID,
			UnsignedTransaction: payloads.Transaction,
			Signatures:          []object.Signature{wrong},
		}
		_, err := post(t, c.Combine, req)
		assertRosettaError(t, err, http.StatusBadRequest, 635)
	})

	t.Run("handles invalid signature length", func(t *testing.T) {
		short := signature
		short.HexBytes = "0xdeadbeef"

		req := rosetta.CombineRequest{
			NetworkID:           testNetworkID,
			UnsignedTransaction: payloads.Transaction,
			Signatures:          []object.Signature{short},
		}
		_, err := post(t, c.Combine, req)
		assertRosettaError(t, err, http.StatusBadRequest, 625)
	})

	t.Run("handles invalid unsigned transaction", func(t *testing.T) {
		req := rosetta.CombineRequest{
			NetworkID:           testNetworkID,
			UnsignedTransaction: "0xabc",
			Signatures:          []object.Signature{signature},
		}
		_, err := post(t, c.Combine, req)
		assertRosettaError(t, err, http.StatusBadRequest, 628)
	})
}

func TestConstruction_HashAndSubmit(t *testing.T) {

	var submitted []byte
	node := feeNode()
	node.SubmitTransactionFunc = func(_ context.Context, tx []byte) (identifier.Transaction, error) {
		submitted = tx
		hash := codec.TxHash(tx)
		return identifier.Transaction{Hash: codec.EncodeHex(hash[:])}, nil
	}

	c := testConstruction(node)
	private, senderKey, sender := testWallet(t, 1)
	_, _, recipient := testWallet(t, 2)

	payloads := flow(t, c, senderKey, sender, recipient)
	signature := signPayload(t, private, senderKey, payloads.Payloads[0])

	combineReq := rosetta.CombineRequest{
		NetworkID:           testNetworkID,
		UnsignedTransaction: payloads.Transaction,
		Signatures:          []object.Signature{signature},
	}
	combineRec, err := post(t, c.Combine, combineReq)
	require.NoError(t, err)
	var combineRes rosetta.CombineResponse
	decode(t, combineRec, &combineRes)

	t.Run("hash of signed transaction", func(t *testing.T) {
		req := rosetta.HashRequest{NetworkID: testNetworkID, SignedTransaction: combineRes.SignedTransaction}
		rec, err := post(t, c.Hash, req)
		require.NoError(t, err)

		var res rosetta.HashResponse
		decode(t, rec, &res)

		data, err := codec.DecodeHex(combineRes.SignedTransaction)
		require.NoError(t, err)
		expected := codec.TxHash(data)
		assert.Equal(t, codec.EncodeHex(expected[:]), res.TransactionID.Hash)
		assert.Len(t, res.TransactionID.Hash, 66)
	})

	t.Run("hash accepts hex without prefix", func(t *testing.T) {
		req := rosetta.HashRequest{
			NetworkID:         testNetworkID,
			SignedTransaction: strings.TrimPrefix(combineRes.SignedTransaction, "0x"),
		}
		rec, err := post(t, c.Hash, req)
		require.NoError(t, err)

		var res rosetta.HashResponse
		decode(t, rec, &res)
		assert.True(t, strings.HasPrefix(res.TransactionID.Hash, "0x"))
	})

	t.Run("handles odd-length hex", func(t *testing.T) {
		req := rosetta.HashRequest{
			NetworkID:         testNetworkID,
			SignedTransaction: combineRes.SignedTransaction[:len(combineRes.SignedTransaction)-1],
		}
		_, err := post(t, c.Hash, req)
		assertRosettaError(t, err, http.StatusBadRequest, 628)
	})

	t.Run("handles unsigned transaction", func(t *testing.T) {
		req := rosetta.HashRequest{NetworkID: testNetworkID, SignedTransaction: payloads.Transaction}
		_, err := post(t, c.Hash, req)
		assertRosettaError(t, err, http.StatusBadRequest, 629)
	})

	t.Run("handles empty transaction", func(t *testing.T) {
		req := rosetta.HashRequest{NetworkID: testNetworkID}
		_, err := post(t, c.Hash, req)
		assertRosettaError(t, err, http.StatusBadRequest, 628)
	})

	t.Run("submit returns the node transaction identifier", func(t *testing.T) {
		req := rosetta.SubmitRequest{NetworkID: testNetworkID, SignedTransaction: combineRes.SignedTransaction}
		rec, err := post(t, c.Submit, req)
		require.NoError(t, err)

		var res rosetta.SubmitResponse
		decode(t, rec, &res)

		// The submitted bytes are the signed serialization, and the node's
		// identifier equals the one returned by the hash endpoint.
		expected, err := codec.DecodeHex(combineRes.SignedTransaction)
		require.NoError(t, err)
		assert.Equal(t, expected, submitted)

		hash := codec.TxHash(expected)
		assert.Equal(t, codec.EncodeHex(hash[:]), res.TransactionID.Hash)
	})

	t.Run("submit handles unsigned transaction", func(t *testing.T) {
		req := rosetta.SubmitRequest{NetworkID: testNetworkID, SignedTransaction: payloads.Transaction}
		_, err := post(t, c.Submit, req)
		assertRosettaError(t, err, http.StatusBadRequest, 629)
	})
}
