package main

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"daisy/internal/handlers"
	"daisy/internal/store"
)

func setupAPI(t *testing.T) string {
	t.Helper()
	srv := httptest.NewServer(handlers.NewRouter(handlers.RouterConfig{
		Store:  store.NewMemoryStore(),
		Logger: zap.NewNop(),
	}))
	t.Cleanup(srv.Close)
	return srv.URL
}

func run(t *testing.T, api string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := newApp(&out).Run(append([]string{"petals", "--api", api}, args...))
	return out.String(), err
}

func TestApp_AddListEditRemove(t *testing.T) {
	api := setupAPI(t)

	out, err := run(t, api, "--json", "add", "--text", "First entry", "--feel", "sad", "--want", "calm", "--at", "2024-06-03T09:30:00Z")
	require.NoError(t, err)

	var created handlers.PetalDTO
	require.NoError(t, json.Unmarshal([]byte(out), &created))
	assert.Equal(t, "Monday", created.DayOfWeek)
	assert.Equal(t, "Morning", created.TimeOfDay)
	assert.Equal(t, "sad", created.CurrentEmotion)

	out, err = run(t, api, "list")
	require.NoError(t, err)
	assert.Contains(t, out, created.ID)
	assert.Contains(t, out, "Monday Morning")
	assert.Contains(t, out, "First entry")

	out, err = run(t, api, "edit", "--text", "new words", created.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "new words")

	out, err = run(t, api, "rm", created.ID)
	require.NoError(t, err)
	assert.Equal(t, "deleted "+created.ID+"\n", out)

	out, err = run(t, api, "list")
	require.NoError(t, err)
	assert.Equal(t, "no petals yet\n", out)
}

func TestApp_NotFound(t *testing.T) {
	api := setupAPI(t)

	_, err := run(t, api, "show", "missing")
	assert.EqualError(t, err, "petal missing not found")

	_, err = run(t, api, "rm", "missing")
	assert.EqualError(t, err, "petal missing not found")
}

func TestApp_MissingID(t *testing.T) {
	api := setupAPI(t)

	_, err := run(t, api, "show")
	assert.EqualError(t, err, "missing petal ID")
}

func TestPreview(t *testing.T) {
	assert.Equal(t, "short", preview("short", 10))
	assert.Equal(t, "a b c", preview("a\n b\tc", 10))
	assert.Equal(t, "abcd…", preview("abcdefgh", 5))
}
