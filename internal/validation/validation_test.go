package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		errMsg  string
		wantErr bool
	}{
		{
			name:    "valid email",
			email:   "student@example.com",
			wantErr: false,
		},
		{
			name:    "valid email with subdomain",
			email:   "jane.doe@mail.learn.io",
			wantErr: false,
		},
		{
			name:    "empty email",
			email:   "",
			wantErr: true,
			errMsg:  "email cannot be empty",
		},
		{
			name:    "missing at sign",
			email:   "student.example.com",
			wantErr: true,
			errMsg:  "is not a valid address",
		},
		{
			name:    "missing domain",
			email:   "student@",
			wantErr: true,
			errMsg:  "is not a valid address",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "valid password", password: "password123", wantErr: false},
		{name: "exactly min length", password: "12345678", wantErr: false},
		{name: "too short", password: "short", wantErr: true},
		{name: "empty", password: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestStruct(t *testing.T) {
	type login struct {
		Email    string `validate:"required,email"`
		Password string `validate:"required,min=8"`
	}

	require.NoError(t, Struct(login{Email: "a@b.io", Password: "password123"}))

	err := Struct(login{Email: "nope", Password: ""})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "login.Email (email)")
	assert.Contains(t, err.Error(), "login.Password (required)")
}

func TestValidator_Shared(t *testing.T) {
	assert.Same(t, Validator(), Validator())
}
