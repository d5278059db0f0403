package middleware

import (
	"errors"
	"testing"

	"jobboard/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

func TestNormalizeAppError(t *testing.T) {
	status, msg, data := normalizeError(NewAppError(fiber.StatusNotFound, "citizen missing", "extra", errors.New("no rows")))
	if status != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", status)
	}
	if msg != "citizen missing" {
		t.Fatalf("unexpected message %q", msg)
	}
	if data != "extra" {
		t.Fatalf("data must pass through, got %v", data)
	}
}

func TestNormalizeAppErrorDefaultsMessage(t *testing.T) {
	_, msg, _ := normalizeError(NewAppError(fiber.StatusForbidden, "", nil, nil))
	if msg != response.MessageForbidden {
		t.Fatalf("blank message must fall back to the status default, got %q", msg)
	}
}

func TestNormalizeServerErrorsAreMasked(t *testing.T) {
	cases := []error{
		NewAppError(fiber.StatusInternalServerError, "pq: relation does not exist", nil, nil),
		fiber.NewError(fiber.StatusBadGateway, "upstream detail"),
		errors.New("raw driver error"),
	}
	for _, err := range cases {
		status, msg, data := normalizeError(err)
		if status != fiber.StatusInternalServerError {
			t.Fatalf("expected 500 for %v, got %d", err, status)
		}
		if msg != response.MessageInternalServerError {
			t.Fatalf("5xx detail must not leak, got %q", msg)
		}
		if data != nil {
			t.Fatalf("5xx data must be dropped, got %v", data)
		}
	}
}

func TestNormalizeFiberError(t *testing.T) {
	status, msg, _ := normalizeError(fiber.NewError(fiber.StatusBadRequest, "bad body"))
	if status != fiber.StatusBadRequest || msg != "bad body" {
		t.Fatalf("fiber errors must pass through, got %d %q", status, msg)
	}
}

func TestBearerTokenFromHeader(t *testing.T) {
	if _, ok := bearerTokenFromHeader(""); ok {
		t.Fatalf("empty header must not parse")
	}
	if _, ok := bearerTokenFromHeader("Token abc"); ok {
		t.Fatalf("non-bearer scheme must not parse")
	}
	if _, ok := bearerTokenFromHeader("Bearer "); ok {
		t.Fatalf("blank token must not parse")
	}
	tok, ok := bearerTokenFromHeader("bearer abc.def.ghi")
	if !ok || tok != "abc.def.ghi" {
		t.Fatalf("case-insensitive scheme must parse, got %q/%v", tok, ok)
	}
}
