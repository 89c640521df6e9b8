package errors

import "testing"

func TestSentinelErrors(t *testing.T) {
	if ErrNotFound == nil {
		t.Error("ErrNotFound should not be nil")
	}
	if ErrNotAssigned == nil {
		t.Error("ErrNotAssigned should not be nil")
	}
	if ErrDuplicateName == nil {
		t.Error("ErrDuplicateName should not be nil")
	}
}
