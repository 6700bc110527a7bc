package queue

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleMessageAppendsLine(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	body, err := json.Marshal(SearchPerformedEvent{
		Query:      "dream",
		Order:      "year",
		Page:       2,
		Results:    3,
		RequestID:  "req-1",
		SearchedAt: "2026-10-19T10:00:00Z",
	})
	require.NoError(t, err)

	require.NoError(t, handleMessage(dir, body))
	require.NoError(t, handleMessage(dir, body))

	data, err := os.ReadFile(filepath.Join(dir, "search.log"))
	require.NoError(t, err)
	want := "[2026-10-19T10:00:00Z] Search | query=\"dream\" | order=\"year\" | page=2 | results=3 | request_id=req-1\n"
	assert.Equal(t, want+want, string(data))
}

func TestHandleMessageRejectsMalformed(t *testing.T) {
	dir := t.TempDir()

	err := handleMessage(dir, []byte("{not json"))
	assert.Error(t, err)
	_, statErr := os.Stat(filepath.Join(dir, "search.log"))
	assert.True(t, os.IsNotExist(statErr))
}
