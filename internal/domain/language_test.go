package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanLanguageCode(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		expected string
		wantErr  bool
	}{
		{name: "plain code", code: "en", expected: "en"},
		{name: "case is kept", code: "FR", expected: "FR"},
		{name: "region kept verbatim", code: "pt-br", expected: "pt-br"},
		{name: "lower case region", code: "zh-cn", expected: "zh-cn"},
		{name: "deprecated code", code: "iw", expected: "iw"},
		{name: "unknown but well formed", code: "zz", expected: "zz"},
		{name: "surrounding whitespace", code: " de ", expected: "de"},
		{name: "empty", code: "", wantErr: true},
		{name: "whitespace only", code: "   ", wantErr: true},
		{name: "ampersand", code: "en&lang=fr", wantErr: true},
		{name: "equals", code: "lang=en", wantErr: true},
		{name: "slash", code: "en/us", wantErr: true},
		{name: "inner space", code: "not a language", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CleanLanguageCode(tt.code)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidLanguage)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
