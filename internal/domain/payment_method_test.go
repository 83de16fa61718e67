package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePaymentMethod(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  PaymentMethod
		expectErr bool
	}{
		{name: "Card", input: "card", expected: MethodCard},
		{name: "WaafiPay", input: "waafipay", expected: MethodWaafiPay},
		{name: "D-Money", input: "dmoney", expected: MethodDMoney},
		{name: "Unknown method", input: "mpesa", expectErr: true},
		{name: "Empty string", input: "", expectErr: true},
		{name: "Case sensitive", input: "WaafiPay", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			method, err := ParsePaymentMethod(tt.input)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, method)
			assert.Equal(t, tt.input, method.String())
		})
	}
}

func TestPaymentMethod_IsLocal(t *testing.T) {
	assert.True(t, MethodWaafiPay.IsLocal())
	assert.True(t, MethodDMoney.IsLocal())
	assert.False(t, MethodCard.IsLocal())
}
