package hsdk

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ExpiryMargin is how far ahead of the real expiry a token is already treated
// as expired. A request must never be dispatched with a token that expires
// mid-flight or mid-retry.
const ExpiryMargin = 5 * time.Minute

// ParseTokenClaims extracts raw claims from a JWT without verifying its
// signature. This client never validates trust; it only reads claims to
// decide whether to refresh preemptively. Do not use the result for
// authorization decisions.
func ParseTokenClaims(tokenStr string) (jwt.MapClaims, error) {
	var claims jwt.MapClaims
	parser := new(jwt.Parser)
	_, _, err := parser.ParseUnverified(tokenStr, &claims)
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// DecodeClaims is the total variant of ParseTokenClaims: any malformed input
// (wrong segment count, bad base64, bad JSON) yields nil rather than an
// error. Callers must treat nil as "expired/unusable".
func DecodeClaims(tokenStr string) jwt.MapClaims {
	claims, err := ParseTokenClaims(tokenStr)
	if err != nil {
		return nil
	}
	return claims
}

// UserIDFromToken reads the user_id claim from an access token, falling back
// to the standard sub claim. Returns "" when the token is malformed or
// carries neither.
func UserIDFromToken(tokenStr string) string {
	mc := DecodeClaims(tokenStr)
	if mc == nil {
		return ""
	}
	if id, ok := mc["user_id"].(string); ok {
		return id
	}
	if sub, ok := mc["sub"].(string); ok {
		return sub
	}
	return ""
}

// expFromClaims normalizes the exp claim into unix seconds. The jwt library
// decodes JSON numbers as float64.
func expFromClaims(mc jwt.MapClaims) (int64, bool) {
	v, ok := mc["exp"]
	if !ok {
		return 0, false
	}
	switch exp := v.(type) {
	case float64:
		return int64(exp), true
	case int64:
		return exp, true
	}
	return 0, false
}

// IsExpired reports whether the token should be refreshed before use. It
// fails safe toward re-authentication: empty tokens, undecodable tokens and
// tokens without an exp claim all count as expired. A decodable token counts
// as expired once its real expiry falls within the next ExpiryMargin.
func IsExpired(tokenStr string) bool {
	if tokenStr == "" {
		return true
	}
	mc := DecodeClaims(tokenStr)
	if mc == nil {
		return true
	}
	exp, ok := expFromClaims(mc)
	if !ok {
		return true
	}
	expiresAt := time.Unix(exp, 0)
	return !time.Now().Add(ExpiryMargin).Before(expiresAt)
}
