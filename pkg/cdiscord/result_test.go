/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package cdiscord

import (
	"strings"
	"testing"
)

func TestResultOkIsNotAnError(t *testing.T) {
	if err := ResultOk.Err(); err != nil {
		t.Errorf("ResultOk.Err() = %v", err)
	}
}

func TestResultErrRoundTrip(t *testing.T) {
	err := ResultServiceUnavailable.Err()
	if err == nil {
		t.Fatal("expected an error")
	}
	res, ok := err.(Result)
	if !ok || res != ResultServiceUnavailable {
		t.Errorf("err = %#v", err)
	}
}

func TestResultErrorMessage(t *testing.T) {
	msg := ResultNotFound.Error()
	if !strings.Contains(msg, "not found") {
		t.Errorf("message %q does not name the code", msg)
	}
}

func TestResultUnknownCode(t *testing.T) {
	msg := Result(999).Error()
	if !strings.Contains(msg, "999") {
		t.Errorf("unknown code message %q does not include the value", msg)
	}
}
