package errorbank

import (
	"errors"
	"net/http"
	"testing"

	"google.golang.org/grpc/codes"
)

func TestStatusCodeByKind(t *testing.T) {
	cases := []struct {
		err  *AppError
		want int
	}{
		{BadRequest(""), http.StatusBadRequest},
		{Unauthorized(""), http.StatusUnauthorized},
		{Conflict(""), http.StatusConflict},
		{NotFound(""), http.StatusNotFound},
		{Unprocessable(""), http.StatusUnprocessableEntity},
		{Unavailable(""), http.StatusServiceUnavailable},
		{Internal(""), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := tc.err.StatusCode(); got != tc.want {
			t.Errorf("%s: status = %d, want %d", tc.err.Kind(), got, tc.want)
		}
	}
}

func TestGRPCCodeByKind(t *testing.T) {
	if got := Unauthorized("").GRPCCode(); got != codes.Unauthenticated {
		t.Errorf("unauthorized grpc code = %v", got)
	}
	if got := Unavailable("").GRPCCode(); got != codes.Unavailable {
		t.Errorf("unavailable grpc code = %v", got)
	}
}

func TestFromWrapsUnknownErrors(t *testing.T) {
	cause := errors.New("boom")
	appErr := From(cause)
	if appErr.Kind() != KindInternal {
		t.Errorf("kind = %s, want internal", appErr.Kind())
	}
	if !errors.Is(appErr, cause) {
		t.Error("wrapped cause must be reachable through errors.Is")
	}
}

func TestFromPreservesAppErrors(t *testing.T) {
	orig := Conflict("dup", WithDetail("orderId", "abc"))
	appErr := From(orig)
	if appErr != orig {
		t.Error("existing AppError must pass through unchanged")
	}
	if got := appErr.Details()["orderId"]; got != "abc" {
		t.Errorf("details lost: %v", appErr.Details())
	}
}

func TestErrorIncludesCause(t *testing.T) {
	err := Internal("failed to create order", WithCause(errors.New("connection refused")))
	if err.Error() != "failed to create order: connection refused" {
		t.Errorf("message = %q", err.Error())
	}
}
