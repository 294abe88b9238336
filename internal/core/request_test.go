// AngelaMos | 2026
// request_test.go

package core

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryBool(t *testing.T) {
	tests := []struct {
		query   string
		want    bool
		wantErr bool
	}{
		{query: "", want: false},
		{query: "?flag=true", want: true},
		{query: "?flag=1", want: true},
		{query: "?flag=false", want: false},
		{query: "?flag=yes", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got, err := QueryBool(httptest.NewRequest("GET", "/"+tt.query, nil), "flag")
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "flag must be a boolean")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQueryInt(t *testing.T) {
	got, err := QueryInt(httptest.NewRequest("GET", "/", nil), "limit")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = QueryInt(httptest.NewRequest("GET", "/?limit=-3", nil), "limit")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, -3, *got)

	_, err = QueryInt(httptest.NewRequest("GET", "/?limit=ten", nil), "limit")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestPathInt(t *testing.T) {
	n, err := PathInt("42", "categoryId")
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	_, err = PathInt("abc", "categoryId")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
