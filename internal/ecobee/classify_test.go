package ecobee

import (
	"testing"
)

func TestClassify_Success(t *testing.T) {
	for _, status := range []int{200, 201, 204, 299} {
		if err := classify(status, []byte(`{"ok":true}`), false, "test"); err != nil {
			t.Errorf("classify(%d) error = %v, want nil", status, err)
		}
	}
}

func TestClassify_AuthFlow(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		wantType   ErrorType
	}{
		{
			name:       "invalid grant yields invalid token",
			statusCode: 400,
			body:       `{"error":"invalid_grant"}`,
			wantType:   ErrTypeInvalidToken,
		},
		{
			name:       "authorization pending is absorbed",
			statusCode: 400,
			body:       `{"error":"authorization_pending"}`,
			wantType:   ErrTypeAPI,
		},
		{
			name:       "invalid grant on other status is absorbed",
			statusCode: 401,
			body:       `{"error":"invalid_grant"}`,
			wantType:   ErrTypeAPI,
		},
		{
			name:       "unparsable body is absorbed",
			statusCode: 400,
			body:       `<html>bad gateway</html>`,
			wantType:   ErrTypeAPI,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classify(tt.statusCode, []byte(tt.body), true, "request tokens")
			apiErr, ok := err.(*APIError)
			if !ok {
				t.Fatalf("classify() = %v (%T), want *APIError", err, err)
			}
			if apiErr.Type != tt.wantType {
				t.Errorf("Type = %v, want %v", apiErr.Type, tt.wantType)
			}
			if apiErr.StatusCode != tt.statusCode {
				t.Errorf("StatusCode = %d, want %d", apiErr.StatusCode, tt.statusCode)
			}
		})
	}
}

func TestClassify_APIFlow(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		wantType   ErrorType
		wantMsg    string
	}{
		{
			name:       "code 1 yields invalid token",
			statusCode: 500,
			body:       `{"status":{"code":1,"message":"Invalid credentials"}}`,
			wantType:   ErrTypeInvalidToken,
		},
		{
			name:       "code 16 yields invalid token",
			statusCode: 500,
			body:       `{"status":{"code":16,"message":"Deauthorized"}}`,
			wantType:   ErrTypeInvalidToken,
		},
		{
			name:       "code 14 yields expired token",
			statusCode: 500,
			body:       `{"status":{"code":14,"message":"Token expired"}}`,
			wantType:   ErrTypeExpiredToken,
		},
		{
			name:       "other code is absorbed with its message",
			statusCode: 500,
			body:       `{"status":{"code":3,"message":"Processing error"}}`,
			wantType:   ErrTypeAPI,
			wantMsg:    "Processing error",
		},
		{
			name:       "missing status object is absorbed",
			statusCode: 500,
			body:       `{}`,
			wantType:   ErrTypeAPI,
			wantMsg:    "Unknown error",
		},
		{
			name:       "unparsable error body is absorbed",
			statusCode: 500,
			body:       `not json at all`,
			wantType:   ErrTypeAPI,
			wantMsg:    "Unknown error",
		},
		{
			name:       "non-500 status is absorbed even with auth code",
			statusCode: 503,
			body:       `{"status":{"code":14,"message":"Token expired"}}`,
			wantType:   ErrTypeAPI,
		},
		{
			name:       "404 is absorbed",
			statusCode: 404,
			body:       `{"status":{"code":5,"message":"Not found"}}`,
			wantType:   ErrTypeAPI,
			wantMsg:    "Not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classify(tt.statusCode, []byte(tt.body), false, "get thermostats")
			apiErr, ok := err.(*APIError)
			if !ok {
				t.Fatalf("classify() = %v (%T), want *APIError", err, err)
			}
			if apiErr.Type != tt.wantType {
				t.Errorf("Type = %v, want %v", apiErr.Type, tt.wantType)
			}
			if tt.wantMsg != "" && apiErr.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", apiErr.Message, tt.wantMsg)
			}
		})
	}
}
