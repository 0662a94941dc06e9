package handler

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestAIFallbackEmbedsErrorDetail(t *testing.T) {
	msg := aiFallback("the assistant", errors.New("ai service returned status 500"))
	assert.Contains(t, msg, "Sorry")
	assert.Contains(t, msg, "the assistant")
	assert.Contains(t, msg, "ai service returned status 500")

	msg = aiFallback("image analysis", errors.New("connection refused"))
	assert.Contains(t, msg, "image analysis")
	assert.Contains(t, msg, "connection refused")
}

func TestIsNotFoundClassification(t *testing.T) {
	assert.True(t, isNotFound(gorm.ErrRecordNotFound))
	assert.True(t, isNotFound(fmt.Errorf("loading image: %w", gorm.ErrRecordNotFound)))

	// infrastructure failures are not "row missing"
	assert.False(t, isNotFound(errors.New("connection refused")))
	assert.False(t, isNotFound(gorm.ErrInvalidDB))
}
