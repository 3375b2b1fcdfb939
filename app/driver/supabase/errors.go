package supabase

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"vocablo/app/domain"
)

// providerErrorBody is the error payload the hosted auth API returns. Newer
// API versions carry a structured error_code; older ones only a message.
type providerErrorBody struct {
	ErrorCode        string `json:"error_code"`
	Msg              string `json:"msg"`
	Message          string `json:"message"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

func (b *providerErrorBody) text() string {
	for _, s := range []string{b.Msg, b.Message, b.ErrorDescription, b.Error} {
		if s != "" {
			return s
		}
	}
	return ""
}

// decodeError turns a non-2xx provider response into a RemoteAuthError,
// preferring the structured error code over message text. Message-pattern
// fallback covers provider versions that omit error_code.
func decodeError(resp *http.Response) error {
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return domain.NewTransportError("read error body", err)
	}

	var body providerErrorBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return domain.NewRemoteAuthError(codeFromStatus(resp.StatusCode), strings.TrimSpace(string(raw)))
	}

	code := body.ErrorCode
	if code == "" {
		code = codeFromMessage(body.text(), resp.StatusCode)
	}

	msg := body.text()
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}

	return domain.NewRemoteAuthError(code, msg)
}

func codeFromStatus(status int) string {
	switch status {
	case http.StatusTooManyRequests:
		return domain.ErrCodeRateLimit
	case http.StatusUnauthorized:
		return domain.ErrCodeBadJWT
	default:
		return domain.ErrCodeUnknown
	}
}

// codeFromMessage maps known legacy message phrases to structured codes.
// Kept deliberately small; anything unrecognized stays unknown with the raw
// message preserved for the user-facing fallback.
func codeFromMessage(msg string, status int) string {
	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(lower, "invalid login credentials"):
		return domain.ErrCodeInvalidCredentials
	case strings.Contains(lower, "email not confirmed"):
		return domain.ErrCodeEmailNotConfirmed
	case strings.Contains(lower, "already registered"), strings.Contains(lower, "already exists"):
		return domain.ErrCodeUserAlreadyExists
	case strings.Contains(lower, "too many requests"), strings.Contains(lower, "rate limit"):
		return domain.ErrCodeRateLimit
	default:
		return codeFromStatus(status)
	}
}
