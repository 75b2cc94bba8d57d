package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_ParseDuration(t *testing.T) {
	assert.Equal(t, 90*time.Minute, ParseDuration("1h30m", time.Hour))
	assert.Equal(t, time.Hour, ParseDuration("", time.Hour))
	assert.Equal(t, time.Hour, ParseDuration("tomorrow", time.Hour))
}
