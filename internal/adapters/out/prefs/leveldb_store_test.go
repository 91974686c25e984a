// internal/adapters/out/prefs/leveldb_store_test.go
package prefs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPrefsDefaults(t *testing.T) {
	s := openStore(t)

	on, err := s.RememberMe()
	require.NoError(t, err)
	assert.False(t, on)

	email, err := s.LastEmail()
	require.NoError(t, err)
	assert.Empty(t, email)
}

func TestPrefsRememberMeRoundtrip(t *testing.T) {
	s := openStore(t)

	require.NoError(t, s.SetRememberMe(true))
	require.NoError(t, s.SetLastEmail("ops@example.com"))

	on, err := s.RememberMe()
	require.NoError(t, err)
	assert.True(t, on)

	email, err := s.LastEmail()
	require.NoError(t, err)
	assert.Equal(t, "ops@example.com", email)
}

func TestPrefsForgetEmailOnOptOut(t *testing.T) {
	s := openStore(t)

	require.NoError(t, s.SetRememberMe(true))
	require.NoError(t, s.SetLastEmail("ops@example.com"))
	require.NoError(t, s.SetRememberMe(false))

	email, err := s.LastEmail()
	require.NoError(t, err)
	assert.Empty(t, email)
}
