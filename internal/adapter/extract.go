package adapter

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/cosplitz/cosplitz-client/models"
)

// The backend's response envelope is not uniform: the payload may sit under
// a "data" wrapper, under "data.user", under "user", or at the top level
// depending on the endpoint. The helpers below probe a fixed candidate order
// and are total: any unrecognised shape yields the "absent" return, never an
// error, so the session service can apply one uniform failure policy.

// ExtractAccountID probes body for a backend account id. Candidate paths, in
// order: data.id, data.user.id, user.id, id. Returns the first value that is
// an integer.
func ExtractAccountID(body []byte) (int64, bool) {
	payload, ok := decodeObject(body)
	if !ok {
		return 0, false
	}

	candidates := []any{
		dig(payload, "data", "id"),
		dig(payload, "data", "user", "id"),
		dig(payload, "user", "id"),
		payload["id"],
	}

	for _, candidate := range candidates {
		if id, ok := asInt64(candidate); ok {
			return id, true
		}
	}

	return 0, false
}

// ExtractToken probes body for a session token. Candidate fields, in order:
// data.token, token, access_token, access, accessToken. Returns the first
// non-empty string.
func ExtractToken(body []byte) (string, bool) {
	payload, ok := decodeObject(body)
	if !ok {
		return "", false
	}

	candidates := []any{
		dig(payload, "data", "token"),
		payload["token"],
		payload["access_token"],
		payload["access"],
		payload["accessToken"],
	}

	for _, candidate := range candidates {
		if token, ok := candidate.(string); ok && token != "" {
			return token, true
		}
	}

	return "", false
}

// ExtractAccount probes body for an account object. Candidate locations, in
// order: data.user, data, user, the top level. The first object carrying a
// non-empty "email" field is mapped into [models.Account]; missing fields
// take defaults (role "user", is_active true, email_verified false) rather
// than failing the extraction.
func ExtractAccount(body []byte) (models.Account, bool) {
	payload, ok := decodeObject(body)
	if !ok {
		return models.Account{}, false
	}

	candidates := []any{
		dig(payload, "data", "user"),
		payload["data"],
		payload["user"],
		payload,
	}

	for _, candidate := range candidates {
		obj, ok := candidate.(map[string]any)
		if !ok {
			continue
		}
		if email, ok := obj["email"].(string); !ok || strings.TrimSpace(email) == "" {
			continue
		}

		account := models.Account{Role: models.RoleUser, IsActive: true}
		raw, err := json.Marshal(obj)
		if err != nil {
			continue
		}
		if err := json.Unmarshal(raw, &account); err != nil {
			continue
		}
		if account.Role == "" {
			account.Role = models.RoleUser
		}

		return account, true
	}

	return models.Account{}, false
}

func decodeObject(body []byte) (map[string]any, bool) {
	if len(body) == 0 {
		return nil, false
	}

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, false
	}
	return payload, true
}

// dig walks nested JSON objects along keys, returning nil as soon as any
// level is missing or not an object.
func dig(payload map[string]any, keys ...string) any {
	var current any = payload
	for _, key := range keys {
		obj, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		current = obj[key]
	}
	return current
}

// asInt64 accepts only JSON numbers with an integral value.
func asInt64(v any) (int64, bool) {
	f, ok := v.(float64)
	if !ok {
		return 0, false
	}
	if f != math.Trunc(f) {
		return 0, false
	}
	return int64(f), true
}
