package infra

import (
	"errors"
	"log/slog"

	"coupon-admin/internal/pkg/errs"
	"coupon-admin/internal/pkg/patch"
)

type GatewayErrorKind string

// GatewayError is a failed call to the remote backend. Message is what the
// backend said, or a generic "Failed to <operation>" when it said nothing.
type GatewayError struct {
	Kind    GatewayErrorKind
	Op      string
	Status  int
	Message string
	err     error // wrapped low-level error
}

func (e GatewayError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.Message + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.Message
}

func (e GatewayError) Unwrap() error {
	return e.err
}

func WrapGatewayErr(slogger *slog.Logger, kind GatewayErrorKind, op string, status int, msg string, err error) error {
	logArgs := []any{
		slog.String("kind", string(kind)),
		slog.String("operation", op),
	}
	if status != 0 {
		logArgs = append(logArgs, slog.Int("status", status))
	}

	// Aborts are the caller walking away, not a failure worth an error line.
	if kind == KindAborted {
		slogger.Debug("Backend call aborted: "+msg, logArgs...)
	} else {
		slogger.Error("Backend error: "+msg, logArgs...)
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return GatewayError{Kind: kind, Op: op, Status: status, Message: msg, err: err}
}

func IsKind(err error, kind GatewayErrorKind) bool {
	var e GatewayError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Message returns the user-facing message of a gateway error, or fallback.
func Message(err error, fallback string) string {
	var e GatewayError
	if errors.As(err, &e) {
		return patch.FirstNonEmpty(e.Message, fallback)
	}
	return fallback
}

// Infrastructure-specific error kinds
const (
	KindAborted      GatewayErrorKind = "ABORTED"
	KindTransport    GatewayErrorKind = "TRANSPORT"
	KindNotFound     GatewayErrorKind = "NOT_FOUND"
	KindUnauthorized GatewayErrorKind = "UNAUTHORIZED"
	KindStatus       GatewayErrorKind = "STATUS"
	KindDecode       GatewayErrorKind = "DECODE"
)
