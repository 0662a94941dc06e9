package ds

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionTitle(t *testing.T) {
	assert.Equal(t, DefaultSessionTitle, SessionTitle(""))
	assert.Equal(t, "short question", SessionTitle("short question"))

	long := strings.Repeat("a", 40)
	assert.Equal(t, strings.Repeat("a", 30)+"...", SessionTitle(long))

	// exactly 30 runes stays untruncated
	exact := strings.Repeat("b", 30)
	assert.Equal(t, exact, SessionTitle(exact))

	// truncation counts runes, not bytes
	cjk := strings.Repeat("体", 35)
	assert.Equal(t, strings.Repeat("体", 30)+"...", SessionTitle(cjk))
}
