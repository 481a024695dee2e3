package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()

	RespondConflict(rec, "занято")

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"занято"}`, rec.Body.String())
}

func TestRespondJSON_NilPayload(t *testing.T) {
	rec := httptest.NewRecorder()

	RespondJSON(rec, http.StatusOK, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		A int `json:"a"`
	}

	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "ok", body: `{"a":1}`},
		{name: "empty", body: ``, wantErr: true},
		{name: "unknown field", body: `{"a":1,"b":2}`, wantErr: true},
		{name: "trailing data", body: `{"a":1}{"a":2}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var dst payload
			err := DecodeJSON(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body)), &dst)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 1, dst.A)
		})
	}
}

func TestParseIDList(t *testing.T) {
	ids, err := ParseIDList("3, 1,3")
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 1, 3}, ids)

	for _, raw := range []string{"", "1,,2", "1,-2", "a"} {
		_, err := ParseIDList(raw)
		assert.Error(t, err, raw)
	}
}

func TestParseDate(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)

	date, err := ParseDate("2025-06-10", loc)

	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 10, 0, 0, 0, 0, loc), date)

	_, err = ParseDate("", loc)
	assert.Error(t, err)
}

func TestQueryID(t *testing.T) {
	id, err := QueryID("")
	require.NoError(t, err)
	assert.Nil(t, id)

	id, err = QueryID("7")
	require.NoError(t, err)
	assert.Equal(t, int64(7), *id)

	_, err = QueryID("0")
	assert.Error(t, err)
}
