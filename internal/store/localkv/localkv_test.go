package localkv

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jinx.json")

	s, err := Open(path)
	require.NoError(t, err)

	picks := map[string]string{"nfl-w16-kc-hou": "27-17"}
	require.NoError(t, s.Set(KeyPredictions, picks))

	// A fresh handle must see the persisted value.
	s2, err := Open(path)
	require.NoError(t, err)

	var got map[string]string
	ok, err := s2.Get(KeyPredictions, &got)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, picks, got)
}

func TestGetMissingKey(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "jinx.json"))
	require.NoError(t, err)

	var v map[string]string
	ok, err := s.Get("nope", &v)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDelete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jinx.json")
	s, err := Open(path)
	require.NoError(t, err)

	require.NoError(t, s.Set(KeyResults, []string{"a"}))
	require.NoError(t, s.Delete(KeyResults))
	require.NoError(t, s.Delete(KeyResults)) // idempotent

	var v []string
	ok, err := s.Get(KeyResults, &v)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOpenCreatesNothingUntilWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jinx.json")
	_, err := Open(path)
	require.NoError(t, err)

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
