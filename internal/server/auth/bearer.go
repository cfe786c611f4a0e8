package auth

import "strings"

// BearerPrefix is the exact scheme prefix expected on the Authorization
// header.
const BearerPrefix = "Bearer "

// ExtractBearer pulls the token out of an Authorization header value.
// The "Bearer " prefix must match exactly; anything else (including a
// lowercase scheme or a missing header) yields ok=false.
func ExtractBearer(header string) (string, bool) {
	token, found := strings.CutPrefix(header, BearerPrefix)
	if !found || token == "" {
		return "", false
	}
	return token, true
}
