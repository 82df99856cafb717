package throttle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestNewLimiter(t *testing.T) {
	limited := NewLimiter(2)
	assert.Equal(t, rate.Limit(2), limited.Limit())
	assert.Equal(t, 1, limited.Burst())
	assert.True(t, limited.Allow())
	assert.False(t, limited.Allow())

	unlimited := NewLimiter(0)
	assert.Equal(t, rate.Inf, unlimited.Limit())
	for i := 0; i < 100; i++ {
		assert.True(t, unlimited.Allow())
	}
}
