package hsdk

import "encoding/json"

// The auth backend has shipped three generations of token response bodies
// and still emits all of them depending on the code path. Decoding tries
// each shape in order and keeps the "none matched" case explicit so the
// refresh protocol can resolve to a plain failure instead of an exception.

// Shape A: {"success": true, "data": {...}} envelope, where the data block
// may use either underscored or hyphenated token keys.
type tokenEnvelope struct {
	Success bool        `json:"success"`
	Data    *tokenBlock `json:"data"`
}

type tokenBlock struct {
	AccessToken     string `json:"access_token"`
	AccessTokenAlt  string `json:"access-token"`
	RefreshToken    string `json:"refresh_token"`
	RefreshTokenAlt string `json:"refresh-token"`
	UserID          string `json:"user_id"`
}

func (b *tokenBlock) pair() (TokenPair, bool) {
	access := b.AccessToken
	if access == "" {
		access = b.AccessTokenAlt
	}
	refresh := b.RefreshToken
	if refresh == "" {
		refresh = b.RefreshTokenAlt
	}
	if access == "" || refresh == "" {
		return TokenPair{}, false
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh, UserID: b.UserID}, true
}

// Shape B: top-level hyphenated keys.
type hyphenTokens struct {
	AccessToken  string `json:"access-token"`
	RefreshToken string `json:"refresh-token"`
}

// Shape C: top-level underscored keys.
type underscoreTokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	UserID       string `json:"user_id"`
}

// decodeTokenResponse resolves a 2xx auth response body into a TokenPair.
// Malformed JSON and unrecognized bodies both report !ok; the caller treats
// that as a failure without mutating the store. When the matched shape
// carries no user_id, it is recovered from the new access token's claims;
// failing that the pair leaves UserID empty and a partial Save keeps
// whatever the store already holds.
func decodeTokenResponse(body []byte) (TokenPair, bool) {
	var envelope tokenEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Success && envelope.Data != nil {
		if pair, ok := envelope.Data.pair(); ok {
			return withRecoveredUserID(pair), true
		}
	}

	var hyphen hyphenTokens
	if err := json.Unmarshal(body, &hyphen); err == nil &&
		hyphen.AccessToken != "" && hyphen.RefreshToken != "" {
		pair := TokenPair{AccessToken: hyphen.AccessToken, RefreshToken: hyphen.RefreshToken}
		return withRecoveredUserID(pair), true
	}

	var underscore underscoreTokens
	if err := json.Unmarshal(body, &underscore); err == nil &&
		underscore.AccessToken != "" && underscore.RefreshToken != "" {
		pair := TokenPair{
			AccessToken:  underscore.AccessToken,
			RefreshToken: underscore.RefreshToken,
			UserID:       underscore.UserID,
		}
		return withRecoveredUserID(pair), true
	}

	return TokenPair{}, false
}

func withRecoveredUserID(pair TokenPair) TokenPair {
	if pair.UserID == "" {
		pair.UserID = UserIDFromToken(pair.AccessToken)
	}
	return pair
}
