package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// error kinds for client-side classification
type ErrorKind int

const (
	// request never completed: dial failure, timeout, aborted attempt
	KindNetwork ErrorKind = iota
	// transport succeeded but the server rejected the request
	KindServer
	// the server no longer accepts our credential
	KindAuth
)

// RequestError is any failed API call, classified for the caller.
type RequestError struct {
	Kind    ErrorKind
	Status  int    // HTTP status, 0 when the request never completed
	Message string // server-supplied error field or a generic fallback
	Err     error  // underlying transport error, if any
}

func (e *RequestError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// reports whether err is worth retrying: transport failures, timeouts
// and server-side 5xx. Client-side rejections are final.
func IsRetryable(err error) bool {
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		return false
	}

	switch reqErr.Kind {
	case KindNetwork:
		return true
	case KindServer:
		return reqErr.Status >= http.StatusInternalServerError
	default:
		return false
	}
}

// reports whether err means the credential was rejected
func IsAuthError(err error) bool {
	var reqErr *RequestError
	return errors.As(err, &reqErr) && reqErr.Kind == KindAuth
}

// reports whether err was a per-attempt timeout
func IsTimeout(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}

func networkError(err error) *RequestError {
	if IsTimeout(err) {
		return &RequestError{Kind: KindNetwork, Message: "the server is taking too long to respond", Err: err}
	}
	return &RequestError{Kind: KindNetwork, Err: err}
}
