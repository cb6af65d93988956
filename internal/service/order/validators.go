package order

import (
	"math"

	"github.com/tunderatti-ops/FarmDirect/internal/entities"
)

const maxLocationLength = 100

// validateDraft повторяет порядок проверок контракта: первая нарушенная
// проверка выигрывает, дальше не идем.
func validateDraft(caller entities.Principal, draft entities.OrderDraft) error {
	if draft.ProductID <= 0 {
		return ErrInvalidProductID
	}
	if draft.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	if draft.PricePerUnit <= 0 {
		return ErrInvalidPrice
	}
	if draft.Seller == caller {
		return ErrInvalidSeller
	}
	if !isValidLocation(draft.DeliveryLocation) {
		return ErrInvalidLocation
	}
	if !isValidCurrency(draft.Currency) {
		return ErrInvalidCurrency
	}
	return nil
}

func isValidLocation(location string) bool {
	return location != "" && len(location) <= maxLocationLength
}

func isValidCurrency(currency entities.CurrencyType) bool {
	switch currency {
	case entities.CurrencySTX, entities.CurrencyUSD, entities.CurrencyBTC:
		return true
	default:
		return false
	}
}

// totalAmountOf считает полную сумму заказа, переполнение int64 трактуем
// как некорректную платежную сумму.
func totalAmountOf(quantity, pricePerUnit int64) (int64, error) {
	total := quantity * pricePerUnit
	if total/quantity != pricePerUnit {
		return 0, ErrInvalidPaymentAmount
	}
	return total, nil
}

func feeAmountOf(totalAmount, feeRateBps int64) (int64, error) {
	if feeRateBps == 0 {
		return 0, nil
	}
	if totalAmount > math.MaxInt64/feeRateBps {
		return 0, ErrInvalidPaymentAmount
	}
	// Базисные пункты: 100 bps = 1%, целочисленное деление с усечением.
	return totalAmount * feeRateBps / feeDenominatorBps, nil
}
