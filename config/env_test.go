package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvAsString(t *testing.T) {
	t.Setenv("MENUFLOW_TEST_STR", "hello")
	assert.Equal(t, "hello", getEnvAsString("MENUFLOW_TEST_STR", "fallback"))
	assert.Equal(t, "fallback", getEnvAsString("MENUFLOW_TEST_STR_MISSING", "fallback"))
}

func TestGetEnvAsInt(t *testing.T) {
	t.Setenv("MENUFLOW_TEST_INT", "42")
	t.Setenv("MENUFLOW_TEST_INT_BAD", "not-a-number")

	assert.Equal(t, 42, getEnvAsInt("MENUFLOW_TEST_INT", 7))
	assert.Equal(t, 7, getEnvAsInt("MENUFLOW_TEST_INT_BAD", 7))
	assert.Equal(t, 7, getEnvAsInt("MENUFLOW_TEST_INT_MISSING", 7))
}

func TestGetEnvAsTimeDuration(t *testing.T) {
	t.Setenv("MENUFLOW_TEST_DUR", "90s")
	t.Setenv("MENUFLOW_TEST_DUR_BAD", "ninety seconds")

	assert.Equal(t, 90*time.Second, getEnvAsTimeDuration("MENUFLOW_TEST_DUR", time.Minute))
	assert.Equal(t, time.Minute, getEnvAsTimeDuration("MENUFLOW_TEST_DUR_BAD", time.Minute))
	assert.Equal(t, time.Minute, getEnvAsTimeDuration("MENUFLOW_TEST_DUR_MISSING", time.Minute))
}

func TestGetEnvAsBool(t *testing.T) {
	t.Setenv("MENUFLOW_TEST_BOOL", "true")
	t.Setenv("MENUFLOW_TEST_BOOL_BAD", "yes please")

	assert.True(t, getEnvAsBool("MENUFLOW_TEST_BOOL", false))
	assert.False(t, getEnvAsBool("MENUFLOW_TEST_BOOL_BAD", false))
	assert.True(t, getEnvAsBool("MENUFLOW_TEST_BOOL_MISSING", true))
}

func TestGetEnvAsSlice(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected []string
	}{
		{"plain list", "a,b,c", []string{"a", "b", "c"}},
		{"whitespace trimmed", " a , b ", []string{"a", "b"}},
		{"empty entries dropped", "a,,b,", []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("MENUFLOW_TEST_SLICE", tt.value)
			assert.Equal(t, tt.expected, getEnvAsSlice("MENUFLOW_TEST_SLICE", nil))
		})
	}

	assert.Equal(t, []string{"x"}, getEnvAsSlice("MENUFLOW_TEST_SLICE_MISSING", []string{"x"}))
}
