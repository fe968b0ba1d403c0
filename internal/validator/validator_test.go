package validator

import (
	"testing"
	
	"github.com/katatrina/b2c-BE/internal/util"
	"github.com/stretchr/testify/require"
)

func TestValidateFullName(t *testing.T) {
	require.NoError(t, ValidateFullName("Nguyễn Văn An"))
	require.Error(t, ValidateFullName("Al"))
	require.Error(t, ValidateFullName("R2D2 Unit"))
}

func TestValidatePhoneNumber(t *testing.T) {
	require.NoError(t, ValidatePhoneNumber("0901234567"))
	require.NoError(t, ValidatePhoneNumber("+84 901 234 567"))
	require.Error(t, ValidatePhoneNumber("12345"))
	require.Error(t, ValidatePhoneNumber("090-abc-4567"))
}

func TestValidatePostalCode(t *testing.T) {
	require.NoError(t, ValidatePostalCode("700000"))
	require.NoError(t, ValidatePostalCode("SW1A 1AA"))
	require.Error(t, ValidatePostalCode("7"))
}

func TestValidatePickupCode(t *testing.T) {
	for i := 0; i < 20; i++ {
		require.NoError(t, ValidatePickupCode(util.GeneratePickupCode()))
	}
	
	require.Error(t, ValidatePickupCode("ABC"))
	require.Error(t, ValidatePickupCode("ABCDEFG0"))
}
