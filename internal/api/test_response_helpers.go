package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

type testEnvelope struct {
	Data  json.RawMessage `json:"data"`
	Error *string         `json:"error"`
}

func decodeEnvelope(t *testing.T, response *http.Response) testEnvelope {
	t.Helper()

	var envelope testEnvelope
	require.NoError(t, json.NewDecoder(response.Body).Decode(&envelope))
	require.NoError(t, response.Body.Close())
	return envelope
}

func decodeData(t *testing.T, response *http.Response, out any) {
	t.Helper()

	envelope := decodeEnvelope(t, response)
	require.Nil(t, envelope.Error)
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

func decodeError(t *testing.T, response *http.Response) string {
	t.Helper()

	envelope := decodeEnvelope(t, response)
	require.NotNil(t, envelope.Error)
	return *envelope.Error
}
