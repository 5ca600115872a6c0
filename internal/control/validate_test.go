package control

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateDuty(t *testing.T) {
	assert.Equal(t, 0, ValidateDuty(-1))
	assert.Equal(t, 0, ValidateDuty(0))
	assert.Equal(t, 140, ValidateDuty(140))
	assert.Equal(t, 255, ValidateDuty(255))
	assert.Equal(t, 255, ValidateDuty(256))
	assert.Equal(t, 255, ValidateDuty(999))
}
