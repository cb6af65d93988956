package idempotency

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// Header - HTTP-заголовок ключа идемпотентности.
const Header = "Idempotency-Key"

// NewKey генерирует случайный ключ. Ключ создается один раз на логическую
// операцию и переиспользуется во всех ее retry-попытках, сервер по нему
// дедуплицирует повторные запросы.
func NewKey() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate idempotency key: %w", err)
	}

	return hex.EncodeToString(buf), nil
}
