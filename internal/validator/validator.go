package validator

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

var (
	isValidPhoneNumber = regexp.MustCompile(`^\+?[0-9]{9,15}$`).MatchString
	isValidPostalCode  = regexp.MustCompile(`^[A-Za-z0-9 -]{3,10}$`).MatchString
	isValidPickupCode  = regexp.MustCompile(`^[23456789A-HJ-NP-Z]{8}$`).MatchString
)

func ValidateString(value string, minLength int, maxLength int) error {
	n := len([]rune(value))
	if n < minLength || n > maxLength {
		return fmt.Errorf("must contain from %d to %d characters", minLength, maxLength)
	}
	
	return nil
}

func ValidateFullName(value string) error {
	if err := ValidateString(value, 3, 100); err != nil {
		return err
	}
	
	for _, r := range value {
		if !unicode.IsLetter(r) && !unicode.IsSpace(r) {
			return fmt.Errorf("must contain only letters or spaces")
		}
	}
	
	return nil
}

// ValidatePhoneNumber accepts digits with an optional leading "+", ignoring spaces.
func ValidatePhoneNumber(value string) error {
	if !isValidPhoneNumber(strings.ReplaceAll(value, " ", "")) {
		return fmt.Errorf("must be a valid phone number")
	}
	
	return nil
}

func ValidatePostalCode(value string) error {
	if !isValidPostalCode(value) {
		return fmt.Errorf("must be a valid postal code")
	}
	
	return nil
}

// ValidatePickupCode checks the shape of a pickup code before it is compared with the order.
func ValidatePickupCode(value string) error {
	if !isValidPickupCode(strings.ToUpper(value)) {
		return fmt.Errorf("must be an 8-character pickup code")
	}
	
	return nil
}
