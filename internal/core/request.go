// AngelaMos | 2026
// request.go

package core

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// QueryBool reads an optional boolean query parameter. Absent means false.
func QueryBool(r *http.Request, key string) (bool, error) {
	val := strings.TrimSpace(r.URL.Query().Get(key))
	if val == "" {
		return false, nil
	}

	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return false, ValidationError(fmt.Sprintf("%s must be a boolean", key))
	}

	return parsed, nil
}

// QueryInt reads an optional integer query parameter. Absent means nil.
func QueryInt(r *http.Request, key string) (*int, error) {
	val := strings.TrimSpace(r.URL.Query().Get(key))
	if val == "" {
		return nil, nil
	}

	parsed, err := strconv.Atoi(val)
	if err != nil {
		return nil, ValidationError(fmt.Sprintf("%s must be an integer", key))
	}

	return &parsed, nil
}

// PathInt reads a required integer path segment value.
func PathInt(raw, key string) (int, error) {
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return 0, ValidationError(fmt.Sprintf("%s must be an integer", key))
	}
	return parsed, nil
}
