package util

import (
	"github.com/lithammer/shortuuid/v4"
)

const (
	alphabet = "23456789ABCDEFGHJKLMNPQRSTUVWXYZ"
	
	pickupCodeLength = 8
)

// GeneratePickupCode generates the verification code a buyer presents when collecting an order, e.g. "7KQ2MZ9A".
func GeneratePickupCode() string {
	// Tạo phần ngẫu nhiên, bỏ các ký tự dễ nhầm lẫn (0, O, 1, I)
	code := shortuuid.NewWithAlphabet(alphabet)
	
	return code[:pickupCodeLength]
}
