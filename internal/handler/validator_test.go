package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postForm(target string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestDecodeForm(t *testing.T) {
	tests := []struct {
		name    string
		values  url.Values
		want    missionForm
		wantErr bool
	}{
		{
			name:   "trims name and keeps raw content",
			values: url.Values{"name": {"  감사 일기 작성하기 "}, "content": {"  감사합니다  "}},
			want:   missionForm{Name: "감사 일기 작성하기", Content: "  감사합니다  "},
		},
		{
			name:   "checkbox on",
			values: url.Values{"name": {"말씀 읽기"}, "confirm_read": {"on"}},
			want:   missionForm{Name: "말씀 읽기", ConfirmRead: true},
		},
		{
			name:   "csrf token and unknown fields are ignored",
			values: url.Values{"name": {"기도하기"}, "gorilla.csrf.Token": {"tok"}, "extra": {"x"}},
			want:   missionForm{Name: "기도하기"},
		},
		{
			name:    "malformed checkbox is rejected",
			values:  url.Values{"name": {"말씀 읽기"}, "confirm_read": {"maybe"}},
			wantErr: true,
		},
		{
			name:    "blank name is required",
			values:  url.Values{"name": {"   "}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got missionForm
			err := decodeForm(postForm("/home/missions/complete", tt.values), &got)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatValidationError(t *testing.T) {
	InitValidator()

	err := GetValidator().ValidateStruct(loginForm{Cell: "사랑셀"})
	require.Error(t, err)

	fields := FormatValidationError(err)
	assert.Equal(t, map[string]string{"name": "This field is required"}, fields)
	assert.Nil(t, FormatValidationError(nil))
	assert.Equal(t, "Invalid request format", FormatValidationError(assert.AnError)["error"])
}
