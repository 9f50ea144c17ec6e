package id_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eaglebank/eaglebank-api/internal/id"
)

func TestNewUserID(t *testing.T) {
	re := regexp.MustCompile(`^usr-[A-Za-z0-9]{8}$`)

	for i := 0; i < 100; i++ {
		assert.Regexp(t, re, id.NewUserID())
	}
}

func TestNewTransactionID(t *testing.T) {
	re := regexp.MustCompile(`^tan-[A-Za-z0-9]{8}$`)

	for i := 0; i < 100; i++ {
		assert.Regexp(t, re, id.NewTransactionID())
	}
}

func TestNewTransactionID_Unique(t *testing.T) {
	seen := make(map[string]struct{})

	for i := 0; i < 1000; i++ {
		generated := id.NewTransactionID()

		_, dup := seen[generated]
		assert.False(t, dup, "duplicate id %s", generated)

		seen[generated] = struct{}{}
	}
}

func TestNewAccountNumber(t *testing.T) {
	re := regexp.MustCompile(`^01\d{6}$`)

	for i := 0; i < 100; i++ {
		assert.Regexp(t, re, id.NewAccountNumber())
	}
}

func TestNewSortCode(t *testing.T) {
	re := regexp.MustCompile(`^\d{2}-\d{2}-\d{2}$`)

	for i := 0; i < 100; i++ {
		assert.Regexp(t, re, id.NewSortCode())
	}
}
