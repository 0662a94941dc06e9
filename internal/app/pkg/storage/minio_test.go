package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testStore() *MinIO {
	return &MinIO{bucket: "health-files", publicBase: "http://127.0.0.1:9000"}
}

func TestPublicURL(t *testing.T) {
	m := testStore()
	assert.Equal(t, "http://127.0.0.1:9000/health-files/medical-records/1/x.png",
		m.PublicURL("medical-records/1/x.png"))
}

func TestKeyFromURLRoundTrip(t *testing.T) {
	m := testStore()
	key := "medical-records/1/x.png"

	got, ok := m.KeyFromURL(m.PublicURL(key))
	assert.True(t, ok)
	assert.Equal(t, key, got)
}

func TestKeyFromURLForeign(t *testing.T) {
	m := testStore()

	_, ok := m.KeyFromURL("http://elsewhere.example/health-files/x.png")
	assert.False(t, ok)

	_, ok = m.KeyFromURL("http://127.0.0.1:9000/other-bucket/x.png")
	assert.False(t, ok)
}
