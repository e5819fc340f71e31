package test

import (
	"strings"

	"github.com/google/uuid"
)

// RandomOrderID returns a 17 character upper-case id shaped like PayPal order ids.
func RandomOrderID() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:17]
}
