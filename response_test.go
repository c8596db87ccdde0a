package main

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decodeBody mimics what PracticumClient hands to checkResponse: a JSON
// document decoded into an untyped value.
func decodeBody(t *testing.T, body string) any {
	t.Helper()
	var decoded any
	require.NoError(t, json.Unmarshal([]byte(body), &decoded))
	return decoded
}

func TestCheckResponse(t *testing.T) {
	resp := decodeBody(t, `{
		"homeworks": [
			{"homework_name": "proj1", "status": "approved"},
			{"homework_name": "proj2", "status": "reviewing"}
		],
		"current_date": 1000
	}`)

	homeworks, err := checkResponse(resp)
	require.NoError(t, err)
	require.Len(t, homeworks, 2)

	// Order as received from the server, not re-sorted.
	assert.Equal(t, "proj1", homeworks[0]["homework_name"])
	assert.Equal(t, "proj2", homeworks[1]["homework_name"])
}

func TestCheckResponse_EmptyHomeworks(t *testing.T) {
	homeworks, err := checkResponse(decodeBody(t, `{"homeworks": [], "current_date": 123}`))
	require.NoError(t, err)
	assert.Empty(t, homeworks)
}

func TestCheckResponse_ShapeErrors(t *testing.T) {
	testCases := []struct {
		name       string
		body       string
		wantReason string
	}{
		{
			name:       "Response Is A List",
			body:       `[{"homework_name": "proj1"}]`,
			wantReason: "not a mapping",
		},
		{
			name:       "Missing Homeworks Key",
			body:       `{"current_date": 1000}`,
			wantReason: "homeworks",
		},
		{
			name:       "Homeworks Is A String",
			body:       `{"homeworks": "none"}`,
			wantReason: "not a list",
		},
		{
			name:       "Homeworks Is A Number",
			body:       `{"homeworks": 5}`,
			wantReason: "not a list",
		},
		{
			name:       "Homework Record Is Not A Mapping",
			body:       `{"homeworks": ["proj1"]}`,
			wantReason: "not a mapping",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := checkResponse(decodeBody(t, tc.body))
			require.Error(t, err)

			var shapeErr *ShapeError
			require.True(t, errors.As(err, &shapeErr))
			assert.Contains(t, shapeErr.Reason, tc.wantReason)
		})
	}
}

func TestCurrentDate(t *testing.T) {
	date, ok := currentDate(decodeBody(t, `{"homeworks": [], "current_date": 1000}`))
	require.True(t, ok)
	assert.Equal(t, int64(1000), date)
}

func TestCurrentDate_Absent(t *testing.T) {
	testCases := []struct {
		name string
		body string
	}{
		{name: "Missing Key", body: `{"homeworks": []}`},
		{name: "Not A Number", body: `{"homeworks": [], "current_date": "soon"}`},
		{name: "Response Is A List", body: `[]`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := currentDate(decodeBody(t, tc.body))
			assert.False(t, ok)
		})
	}
}
