package handler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_Identity(t *testing.T) {
	v := GetValidator()

	valid := []string{"alice", "discord:1234567890", "GABC_123", "a.b@c-d"}
	for _, id := range valid {
		assert.NoError(t, v.ValidateVar(id, identityTag), id)
	}

	invalid := []string{"", "two words", "tab\there", "semi;colon", string(make([]byte, 129))}
	for _, id := range invalid {
		assert.Error(t, v.ValidateVar(id, identityTag), id)
	}
}

func TestValidator_Amount(t *testing.T) {
	v := GetValidator()

	for _, amount := range []string{"", "0", "100", "-5", "115792089237316195423570985008687907853269984665640564039457584007913129639935"} {
		assert.NoError(t, v.ValidateVar(amount, amountRule), amount)
	}
	for _, amount := range []string{"1.5", "abc", "1e3", " 1", "+1"} {
		assert.Error(t, v.ValidateVar(amount, amountRule), amount)
	}

	// 2^256 does not fit
	assert.Error(t, v.ValidateVar("115792089237316195423570985008687907853269984665640564039457584007913129639936", amountRule))
}

func TestParseAmount(t *testing.T) {
	zero, ok := parseAmount("")
	require.True(t, ok)
	assert.True(t, zero.IsZero())

	n, ok := parseAmount("-42")
	require.True(t, ok)
	assert.Equal(t, "-42", n.String())

	_, ok = parseAmount("nope")
	assert.False(t, ok)
}

func TestFormatValidationError(t *testing.T) {
	assert.Nil(t, FormatValidationError(nil))

	fields := FormatValidationError(errors.New("not a validation error"))
	assert.Equal(t, "Invalid request format", fields["error"])

	err := GetValidator().ValidateStruct(CycleRequest{Identity: "", Stake: "x", Difficulty: 41})
	require.Error(t, err)
	fields = FormatValidationError(err)
	assert.Equal(t, "This field is required", fields["identity"])
	assert.Equal(t, "Must be a whole number", fields["stake"])
	assert.Equal(t, "Must be at most 40", fields["difficulty"])
}
