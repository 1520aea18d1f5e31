package envutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEnvHelpers(t *testing.T) {
	t.Setenv("ENVUTIL_STR", " value ")
	t.Setenv("ENVUTIL_INT", "42")
	t.Setenv("ENVUTIL_BAD_INT", "x")
	t.Setenv("ENVUTIL_BOOL", "yes")
	t.Setenv("ENVUTIL_SECS", "15")
	t.Setenv("ENVUTIL_LIST", "a, ,b,")

	assert.Equal(t, "value", String("ENVUTIL_STR", "def"))
	assert.Equal(t, "def", String("ENVUTIL_MISSING", "def"))
	assert.Equal(t, 42, Int("ENVUTIL_INT", 1))
	assert.Equal(t, 1, Int("ENVUTIL_BAD_INT", 1))
	assert.True(t, Bool("ENVUTIL_BOOL", false))
	assert.True(t, Bool("ENVUTIL_MISSING", true))
	assert.Equal(t, 15*time.Second, Seconds("ENVUTIL_SECS", time.Second))
	assert.Equal(t, time.Second, Seconds("ENVUTIL_MISSING", time.Second))
	assert.Equal(t, []string{"a", "b"}, List("ENVUTIL_LIST", nil))
	assert.Equal(t, []string{"x"}, List("ENVUTIL_MISSING", []string{"x"}))
}
