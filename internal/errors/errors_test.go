package errors

import (
	"fmt"
	"testing"
)

func TestWrapPreservesCode(t *testing.T) {
	err := Wrap(QuotaExhausted(), "while analyzing")
	if GetCode(err) != CodeQuotaExhausted {
		t.Errorf("code = %s", GetCode(err))
	}
	if !IsQuotaExhausted(err) {
		t.Error("wrapped quota error should still report as quota exhausted")
	}
}

func TestWrapPlainError(t *testing.T) {
	err := Wrap(fmt.Errorf("boom"), "context")
	if GetCode(err) != CodeInternalError {
		t.Errorf("plain errors wrap as INTERNAL_ERROR, got %s", GetCode(err))
	}
	if err.Error() != "context: boom" {
		t.Errorf("message = %q", err.Error())
	}
}

func TestWrapNil(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("wrapping nil must return nil")
	}
}

func TestDetailSurvivesWrap(t *testing.T) {
	err := Wrap(JSONDecodeError(fmt.Errorf("bad token"), `{"truncated`), "analyze failed")
	if GetDetail(err) != `{"truncated` {
		t.Errorf("detail = %q", GetDetail(err))
	}
}

func TestCredentialSuspected(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"401 status", TransportError(fmt.Errorf("openai http 401: unauthorized")), true},
		{"invalid api key marker", TransportError(fmt.Errorf("gemini http 400: API_KEY_INVALID")), true},
		{"plain transport failure", TransportError(fmt.Errorf("connection refused")), false},
		{"non-transport error", SchemaValidationError("unauthorized field"), false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CredentialSuspected(tt.err); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConstructorCodes(t *testing.T) {
	tests := []struct {
		err  error
		code string
	}{
		{UnknownDomain("x"), CodeUnknownDomain},
		{QuotaExhausted(), CodeQuotaExhausted},
		{EmptyInput(), CodeEmptyInput},
		{TransportError(fmt.Errorf("x")), CodeTransportError},
		{JSONDecodeError(fmt.Errorf("x"), "raw"), CodeJSONDecode},
		{SchemaValidationError("d"), CodeSchemaValidation},
		{ConfigInvalid("m"), CodeConfigInvalid},
		{DatabaseError(fmt.Errorf("x")), CodeDatabaseError},
		{NotFound("session"), CodeNotFound},
		{InvalidInput("m"), CodeInvalidInput},
	}
	for _, tt := range tests {
		if GetCode(tt.err) != tt.code {
			t.Errorf("%v: code = %s, want %s", tt.err, GetCode(tt.err), tt.code)
		}
	}
}
