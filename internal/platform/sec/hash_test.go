// Copyright (c) 2026 Consumo. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/consumo/internal/platform/sec"
)

/*
TestHashPassword verifies the hash/verify cycle and its one-way nature.
*/
func TestHashPassword(t *testing.T) {
	plain := "correct horse battery staple"

	hash, err := sec.HashPassword(plain)
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	// The hash must never equal the plain text.
	assert.NotEqual(t, plain, hash)

	assert.True(t, sec.CheckPasswordHash(plain, hash))
	assert.False(t, sec.CheckPasswordHash("wrong password", hash))
	assert.False(t, sec.CheckPasswordHash(plain, "not-a-bcrypt-hash"))
}

/*
TestHashPassword_Salted verifies that hashing the same password twice
produces different hashes (random salt).
*/
func TestHashPassword_Salted(t *testing.T) {
	first, err := sec.HashPassword("secret123")
	require.NoError(t, err)
	second, err := sec.HashPassword("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, sec.CheckPasswordHash("secret123", first))
	assert.True(t, sec.CheckPasswordHash("secret123", second))
}
