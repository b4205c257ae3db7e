package domain

import (
	"fmt"
	"strings"
)

// CleanLanguageCode trims code and checks that it can travel as a single lang
// query value. The code itself is opaque: "zh-cn" stays "zh-cn".
func CleanLanguageCode(code string) (string, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", fmt.Errorf("%w: empty code", ErrInvalidLanguage)
	}
	if strings.ContainsAny(code, "&=/?# \t") {
		return "", fmt.Errorf("%w: %q", ErrInvalidLanguage, code)
	}
	return code, nil
}
