package assert

import (
	"reflect"
	"testing"
)

// Equal fails the test if expected and got aren't equal. Errors compare
// equal when they have the same type and message.
func Equal(t *testing.T, expected interface{}, got interface{}) {
	t.Helper()
	if !isEqual(expected, got) {
		t.Fatalf("expected %#v, got %#v", expected, got)
	}
}

// NoError fails the test if err isn't nil.
func NoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

// GotError fails the test if err is nil.
func GotError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected an error, but got none")
	}
}

func isEqual(expected interface{}, got interface{}) bool {
	if expected == nil || got == nil {
		return expected == got
	}

	if expectedErr, ok := expected.(error); ok {
		gotErr, ok := got.(error)
		if !ok {
			return false
		}
		return reflect.TypeOf(expectedErr) == reflect.TypeOf(gotErr) &&
			expectedErr.Error() == gotErr.Error()
	}

	return reflect.DeepEqual(expected, got)
}

// ErrorIsNil is an alias of NoError.
func ErrorIsNil(t *testing.T, got error) {
	t.Helper()
	NoError(t, got)
}

// ErrorIsNotNil is an alias of GotError.
func ErrorIsNotNil(t *testing.T, got error) {
	t.Helper()
	GotError(t, got)
}
