package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestContainsPattern(t *testing.T) {
	assert.Equal(t, "%hop%", containsPattern("hop"))
	assert.Equal(t, "%%", containsPattern(""))
	assert.Equal(t, `%100\%%`, containsPattern("100%"))
	assert.Equal(t, `%a\_b%`, containsPattern("a_b"))
	assert.Equal(t, `%c:\\d%`, containsPattern(`c:\d`))
}

func TestMapNotFound(t *testing.T) {
	assert.ErrorIs(t, mapNotFound(gorm.ErrRecordNotFound), ErrNotFound)
	assert.ErrorIs(t, mapNotFound(fmt.Errorf("first: %w", gorm.ErrRecordNotFound)), ErrNotFound)

	other := errors.New("connection reset")
	assert.Equal(t, other, mapNotFound(other))
}
