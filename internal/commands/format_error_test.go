package commands

import (
	"errors"
	"strings"
	"testing"

	apierrors "github.com/mbrandao/shipchat/internal/errors"
)

func TestFormatErrorMessage_Nil(t *testing.T) {
	if got := formatErrorMessage(nil, "ctx"); got != "" {
		t.Fatalf("expected empty for nil error, got %s", got)
	}
}

func TestFormatErrorMessage_ServerDetail(t *testing.T) {
	err := apierrors.NewAPIError(400, "/ask", "no data uploaded")
	out := formatErrorMessage(err, "Ask failed")

	if !strings.Contains(out, "no data uploaded") {
		t.Errorf("output should carry the server detail: %s", out)
	}
	if !strings.Contains(out, "400") {
		t.Errorf("output should carry the HTTP status: %s", out)
	}
	if !strings.Contains(out, "/ask") {
		t.Errorf("output should carry the endpoint: %s", out)
	}
}

func TestFormatErrorMessage_NetworkHint(t *testing.T) {
	err := apierrors.NewNetworkError("/health", errors.New("connection refused"))
	out := formatErrorMessage(err, "Status check failed")

	if !strings.Contains(out, "shipchat status") {
		t.Errorf("network errors should hint at the status command: %s", out)
	}
}

func TestFormatErrorMessage_PlainError(t *testing.T) {
	out := formatErrorMessage(errors.New("boom"), "Failed")
	if !strings.Contains(out, "boom") {
		t.Errorf("plain errors should show their message: %s", out)
	}
	if strings.Contains(out, "HTTP Status") {
		t.Errorf("plain errors carry no status line: %s", out)
	}
}
