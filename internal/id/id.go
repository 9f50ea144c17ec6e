// Package id generates the identifiers used across the bank: prefixed ids
// for users and transactions, eight-digit account numbers, and sort codes.
package id

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	userPrefix        = "usr-"
	transactionPrefix = "tan-"

	alphabet     = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	randomLength = 8
)

func randomInt(max int64) int64 {
	n, err := rand.Int(rand.Reader, big.NewInt(max))
	if err != nil {
		// crypto/rand only fails if the platform source is broken.
		panic(fmt.Sprintf("id: reading random source: %v", err))
	}

	return n.Int64()
}

func prefixed(prefix string) string {
	b := make([]byte, randomLength)
	for i := range b {
		b[i] = alphabet[randomInt(int64(len(alphabet)))]
	}

	return prefix + string(b)
}

// NewUserID returns a user id matching ^usr-[A-Za-z0-9]{8}$.
func NewUserID() string {
	return prefixed(userPrefix)
}

// NewTransactionID returns a transaction id matching ^tan-[A-Za-z0-9]{8}$.
func NewTransactionID() string {
	return prefixed(transactionPrefix)
}

// NewAccountNumber returns an account number matching ^01\d{6}$.
func NewAccountNumber() string {
	return fmt.Sprintf("01%06d", randomInt(1_000_000))
}

// NewSortCode returns a sort code in the format NN-NN-NN.
func NewSortCode() string {
	return fmt.Sprintf("%02d-%02d-%02d", randomInt(100), randomInt(100), randomInt(100))
}
