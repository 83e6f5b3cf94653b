package lib

import (
	"fmt"
	"math/rand"
	"time"
)

// GenerateOrderNumber generates an order number in the format MF-XXXXXX,
// where XXXXXX is a random alphanumeric string. Uniqueness is enforced by
// the orders table constraint; the local rand.Rand keeps it goroutine safe.
func GenerateOrderNumber() string {
	src := rand.NewSource(time.Now().UnixNano())
	r := rand.New(src)

	const chars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	const length = 6

	randomPart := make([]byte, length)
	for i := range randomPart {
		randomPart[i] = chars[r.Intn(len(chars))]
	}

	return fmt.Sprintf("MF-%s", string(randomPart))
}
