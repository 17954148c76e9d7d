package token

import (
	"encoding/json"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

// Info describes a stored token for display.
type Info struct {
	Empty        bool      `json:"empty"`
	OAuth2       bool      `json:"oauth2"`
	Length       int       `json:"length"`
	TokenType    string    `json:"token_type,omitempty"`
	Expiry       time.Time `json:"expiry,omitzero"`
	Valid        bool      `json:"valid"`
	RefreshToken bool      `json:"refresh_token"`
}

// Inspect describes token. A JSON object with an access_token field is decoded as an [oauth2.Token];
// anything else is reported as opaque and never marked valid.
func Inspect(token string) Info {
	trimmed := strings.TrimSpace(token)
	info := Info{Empty: trimmed == "", Length: len(token)}
	if info.Empty {
		return info
	}

	var tok oauth2.Token
	if err := json.Unmarshal([]byte(trimmed), &tok); err != nil || tok.AccessToken == "" {
		return info
	}

	info.OAuth2 = true
	info.TokenType = tok.Type()
	info.Expiry = tok.Expiry
	info.Valid = tok.Valid()
	info.RefreshToken = tok.RefreshToken != ""
	return info
}
