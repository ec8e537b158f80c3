package nse

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniverse(t *testing.T) {
	u := Universe()
	assert.Len(t, u, 2)
	assert.NotEmpty(t, u[MidCap])
	assert.NotEmpty(t, u[SmallCap])
	assert.Equal(t, []string{MidCap, SmallCap}, Categories())
}

func TestUniverse_SymbolsArePlainNSECodes(t *testing.T) {
	for category, symbols := range Universe() {
		for _, s := range symbols {
			assert.NotEmpty(t, s, "empty symbol in %s", category)
			assert.Equal(t, strings.ToUpper(s), s, "%s symbol %q not upper case", category, s)
			assert.NotContains(t, s, ".", "%s symbol %q carries a vendor suffix", category, s)
		}
	}
}
