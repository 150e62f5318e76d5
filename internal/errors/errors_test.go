package errors_test

import (
	stderrors "errors"
	"strings"
	"testing"

	"roadcost/internal/errors"
)

func TestErrorFormatting(t *testing.T) {
	err := errors.Validation("project_id is required")
	if !strings.Contains(err.Error(), "VALIDATION_ERROR") {
		t.Errorf("error string should carry the type: %s", err.Error())
	}
	if !strings.Contains(err.Error(), "project_id is required") {
		t.Errorf("error string should carry the message: %s", err.Error())
	}
}

func TestIsType(t *testing.T) {
	err := errors.InsufficientData("no intervals")
	if !errors.IsType(err, errors.TypeInsufficientData) {
		t.Error("expected IsType to match")
	}
	if errors.IsType(err, errors.TypeValidation) {
		t.Error("expected IsType to reject a different type")
	}
	if errors.IsType(stderrors.New("plain"), errors.TypeValidation) {
		t.Error("expected IsType to reject plain errors")
	}
	if errors.IsType(nil, errors.TypeValidation) {
		t.Error("expected IsType to reject nil")
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := errors.Storage("loading rate snapshot", cause)

	if !stderrors.Is(err, cause) {
		t.Error("expected wrapped cause to be reachable with errors.Is")
	}
	if !strings.Contains(err.Error(), "connection refused") {
		t.Errorf("error string should include the cause: %s", err.Error())
	}
}

func TestWithContext(t *testing.T) {
	err := errors.Validation("bad interval").
		WithContext("interval", 3).
		WithContext("field", "station_end")

	if err.Context["interval"] != 3 {
		t.Errorf("expected interval context, got %v", err.Context)
	}
	if err.Context["field"] != "station_end" {
		t.Errorf("expected field context, got %v", err.Context)
	}
}
