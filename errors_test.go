package ecc

import (
	"errors"
	"testing"
)

// TestErrorKindStringer tests the stringized output for the ErrorKind type.
func TestErrorKindStringer(t *testing.T) {
	tests := []struct {
		in   ErrorKind
		want string
	}{
		{ErrUnknownCurve, "ErrUnknownCurve"},
		{ErrInvalidPoint, "ErrInvalidPoint"},
		{ErrNoModularInverse, "ErrNoModularInverse"},
		{ErrEncoding, "ErrEncoding"},
		{ErrDecoding, "ErrDecoding"},
		{ErrRange, "ErrRange"},
	}

	for i, test := range tests {
		result := test.in.Error()
		if result != test.want {
			t.Errorf("#%d: got: %s want: %s", i, result, test.want)
		}
	}
}

// TestError tests the error output for the Error type.
func TestError(t *testing.T) {
	tests := []struct {
		in   Error
		want string
	}{{
		Error{Description: "some error"},
		"some error",
	}, {
		Error{Description: "human-readable error"},
		"human-readable error",
	}}

	for i, test := range tests {
		result := test.in.Error()
		if result != test.want {
			t.Errorf("#%d: got: %s want: %s", i, result, test.want)
		}
	}
}

// TestErrorKindIsAs ensures both ErrorKind and Error can be identified as
// being a specific error kind via errors.Is and unwrapped via errors.As.
func TestErrorKindIsAs(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		target    error
		wantMatch bool
		wantAs    ErrorKind
	}{{
		name:      "ErrUnknownCurve == ErrUnknownCurve",
		err:       ErrUnknownCurve,
		target:    ErrUnknownCurve,
		wantMatch: true,
		wantAs:    ErrUnknownCurve,
	}, {
		name:      "Error.ErrUnknownCurve == ErrUnknownCurve",
		err:       makeError(ErrUnknownCurve, ""),
		target:    ErrUnknownCurve,
		wantMatch: true,
		wantAs:    ErrUnknownCurve,
	}, {
		name:      "ErrInvalidPoint != ErrUnknownCurve",
		err:       ErrInvalidPoint,
		target:    ErrUnknownCurve,
		wantMatch: false,
		wantAs:    ErrInvalidPoint,
	}, {
		name:      "Error.ErrNoModularInverse != ErrEncoding",
		err:       makeError(ErrNoModularInverse, "gcd != 1"),
		target:    ErrEncoding,
		wantMatch: false,
		wantAs:    ErrNoModularInverse,
	}}

	for _, test := range tests {
		result := errors.Is(test.err, test.target)
		if result != test.wantMatch {
			t.Errorf("%s: incorrect error identification -- got %v, want %v",
				test.name, result, test.wantMatch)
			continue
		}

		var kind ErrorKind
		if !errors.As(test.err, &kind) {
			t.Errorf("%s: unable to unwrap to error code", test.name)
			continue
		}
		if kind != test.wantAs {
			t.Errorf("%s: unexpected unwrapped error code -- got %v, want %v",
				test.name, kind, test.wantAs)
		}
	}
}
