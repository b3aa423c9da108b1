package submission

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/x/mongo/driver/topology"

	"Backend-Yeoun-Survey/src/i18n"
)

var ErrAlreadyCompleted = errors.New("submission: response already exists")

type FailureKind string

const (
	KindPermission  FailureKind = "permission"
	KindUnavailable FailureKind = "unavailable"
	KindTimeout     FailureKind = "timeout"
	KindOther       FailureKind = "other"
)

// server error codes treated as permission failures
const (
	codeUnauthorized         = 13
	codeAuthenticationFailed = 18
)

// PersistenceError is a classified remote write failure.
type PersistenceError struct {
	Kind FailureKind
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("submission: remote write failed (%s): %v", e.Kind, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// MessageKey is the i18n key for the user-facing message.
func (e *PersistenceError) MessageKey() string {
	switch e.Kind {
	case KindPermission:
		return i18n.MsgPersistPermission
	case KindUnavailable:
		return i18n.MsgPersistUnavailable
	case KindTimeout:
		return i18n.MsgPersistTimeout
	default:
		return i18n.MsgPersistOther
	}
}

// Classify maps a driver error to a failure kind.
func Classify(err error) FailureKind {
	var serverErr mongo.ServerError
	var selectionErr topology.ServerSelectionError

	switch {
	case errors.Is(err, context.DeadlineExceeded), mongo.IsTimeout(err):
		return KindTimeout
	case errors.As(err, &serverErr) &&
		(serverErr.HasErrorCode(codeUnauthorized) || serverErr.HasErrorCode(codeAuthenticationFailed)):
		return KindPermission
	case errors.Is(err, mongo.ErrClientDisconnected),
		mongo.IsNetworkError(err),
		errors.As(err, &selectionErr):
		return KindUnavailable
	default:
		return KindOther
	}
}

func classify(err error) *PersistenceError {
	return &PersistenceError{Kind: Classify(err), Err: err}
}
