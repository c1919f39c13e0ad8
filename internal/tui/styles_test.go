package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusLines(t *testing.T) {
	assert.Contains(t, Success("valid"), SymbolCheck+" valid")
	assert.Contains(t, Failure("broken"), SymbolCross+" broken")
	assert.Contains(t, Warning("careful"), SymbolWarning+" careful")
	assert.Contains(t, Bullet("item"), "item")
}
