package auth

import (
	"errors"
	"fmt"

	"golang.org/x/oauth2"

	"Backend-Yeoun-Survey/src/i18n"
)

type FailureKind string

const (
	KindMissingCode    FailureKind = "missing_code"
	KindExpiredCode    FailureKind = "expired_code"
	KindMisconfigured  FailureKind = "client_misconfigured"
	KindRedirect       FailureKind = "redirect_mismatch"
	KindUpstream       FailureKind = "upstream"
	KindInvalidProfile FailureKind = "invalid_profile"
	KindDuplicateCode  FailureKind = "duplicate_code"
	KindInvalidState   FailureKind = "invalid_state"
)

// AuthError is a classified login failure. Two AuthErrors match under
// errors.Is when their kinds are equal.
type AuthError struct {
	Kind   FailureKind
	Detail string
	Err    error
}

var (
	ErrMissingCode    = &AuthError{Kind: KindMissingCode}
	ErrDuplicateCode  = &AuthError{Kind: KindDuplicateCode}
	ErrInvalidProfile = &AuthError{Kind: KindInvalidProfile}
	ErrMisconfigured  = &AuthError{Kind: KindMisconfigured}
	ErrInvalidState   = &AuthError{Kind: KindInvalidState}
)

func (e *AuthError) Error() string {
	msg := fmt.Sprintf("auth: %s", e.Kind)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *AuthError) Unwrap() error { return e.Err }

func (e *AuthError) Is(target error) bool {
	t, ok := target.(*AuthError)
	return ok && t.Kind == e.Kind
}

// MessageKey is the i18n key for the user-facing message.
func (e *AuthError) MessageKey() string {
	switch e.Kind {
	case KindMissingCode:
		return i18n.MsgAuthMissingCode
	case KindExpiredCode:
		return i18n.MsgAuthExpiredCode
	case KindMisconfigured:
		return i18n.MsgAuthMisconfigured
	case KindRedirect:
		return i18n.MsgAuthRedirect
	case KindInvalidProfile:
		return i18n.MsgAuthInvalidProfile
	case KindDuplicateCode:
		return i18n.MsgAuthDuplicateCode
	case KindInvalidState:
		return i18n.MsgAuthInvalidState
	default:
		return i18n.MsgAuthUpstream
	}
}

// classifyExchange maps a token endpoint failure by its OAuth error code.
func classifyExchange(err error) *AuthError {
	var rerr *oauth2.RetrieveError
	if !errors.As(err, &rerr) {
		return &AuthError{Kind: KindUpstream, Err: err}
	}

	detail := rerr.ErrorDescription
	if detail == "" {
		detail = rerr.ErrorCode
	}
	switch rerr.ErrorCode {
	case "invalid_grant":
		return &AuthError{Kind: KindExpiredCode, Detail: detail, Err: err}
	case "invalid_client", "unauthorized_client":
		return &AuthError{Kind: KindMisconfigured, Detail: detail, Err: err}
	case "redirect_uri_mismatch":
		return &AuthError{Kind: KindRedirect, Detail: detail, Err: err}
	default:
		return &AuthError{Kind: KindUpstream, Detail: detail, Err: err}
	}
}
