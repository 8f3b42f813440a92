// Package abi encodes the few Solidity call shapes the engine sends on its
// own: a 4-byte selector followed by 32-byte words.
package abi

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"golang.org/x/crypto/sha3"
)

const wordSize = 32

// Selector returns the first four bytes of the Keccak-256 hash of a function
// signature such as "upgradeTo(address)".
func Selector(signature string) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(signature))
	return h.Sum(nil)[:4]
}

// DecodeHex decodes a 0x-prefixed hex string. An empty string decodes to nil.
func DecodeHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if s == "" {
		return nil, nil
	}
	if len(s)%2 == 1 {
		s = "0" + s
	}

	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex data: %w", err)
	}
	return b, nil
}

// EncodeHex returns b as a 0x-prefixed hex string.
func EncodeHex(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}

// Address left-pads a 20-byte address to a word.
func Address(address string) ([]byte, error) {
	b, err := DecodeHex(address)
	if err != nil {
		return nil, err
	}
	if len(b) != 20 {
		return nil, fmt.Errorf("address must be 20 bytes, got %d", len(b))
	}

	return leftPad(b), nil
}

// Uint left-pads a non-negative integer to a word.
func Uint(v *big.Int) []byte {
	return leftPad(v.Bytes())
}

// Bytes encodes the tail of a dynamic bytes argument: its length followed by
// the data right-padded to a word boundary.
func Bytes(data []byte) []byte {
	out := Uint(big.NewInt(int64(len(data))))
	padded := make([]byte, (len(data)+wordSize-1)/wordSize*wordSize)
	copy(padded, data)
	return append(out, padded...)
}

// Call concatenates a selector and its encoded arguments.
func Call(signature string, words ...[]byte) []byte {
	out := Selector(signature)
	for _, w := range words {
		out = append(out, w...)
	}
	return out
}

func leftPad(b []byte) []byte {
	out := make([]byte, wordSize)
	copy(out[wordSize-len(b):], b)
	return out
}
