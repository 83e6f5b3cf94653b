package lib

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateOrderNumber_Format(t *testing.T) {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	for i := 0; i < 50; i++ {
		number := GenerateOrderNumber()

		assert.Len(t, number, 9)
		assert.True(t, strings.HasPrefix(number, "MF-"))
		for _, c := range number[3:] {
			assert.Contains(t, charset, string(c))
		}
	}
}
