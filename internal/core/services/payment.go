package services

import (
	"fmt"

	"github.com/srgjo27/hotel_management/internal/core/domain"
)

const cardNumberLength = 16

// AuthorizePayment simulates payment authorization. Cash always
// settles. Credit settles iff the card number is exactly 16 digits.
// There is no network and no real settlement, but callers must treat
// the decision as authoritative for the lifecycle transition.
func AuthorizePayment(method domain.PaymentMethod, cardNumber string) error {
	switch method {
	case domain.PaymentCash:
		return nil
	case domain.PaymentCredit:
		if !isValidCardNumber(cardNumber) {
			return fmt.Errorf("%w: invalid card number", domain.ErrPaymentDeclined)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown payment method %q", domain.ErrPaymentDeclined, method)
	}
}

func isValidCardNumber(cardNumber string) bool {
	if len(cardNumber) != cardNumberLength {
		return false
	}
	for _, c := range cardNumber {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
