package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestFormatterSpanish(t *testing.T) {
	f := DefaultFormatter()
	assert.Equal(t, "45.000.000", f.Int(45000000))
	assert.Equal(t, "45.376.763", f.Int(45376763.9))
	assert.Equal(t, "1.234.567,89 km²", f.Area(1234567.891))
	assert.Equal(t, "3.473.727", f.Population("3473727"))
	assert.Equal(t, "many", f.Population("many"))
}

func TestFormatterEnglish(t *testing.T) {
	f := NewFormatter(language.English)
	assert.Equal(t, "45,000,000", f.Int(45000000))
	assert.Equal(t, "1,234,567.89 km²", f.Area(1234567.891))
}
