package session

import (
	"errors"
	"testing"
)

func TestNewProfile(t *testing.T) {
	tests := []struct {
		name     string
		dispName string
		email    string
		wantErr  error
	}{
		{"valid", "Ada", "ada@example.com", nil},
		{"trims whitespace", "  Ada  ", " ada@example.com ", nil},
		{"empty name", "", "ada@example.com", ErrEmptyName},
		{"whitespace name", "   ", "ada@example.com", ErrEmptyName},
		{"missing at sign", "Ada", "ada.example.com", ErrInvalidEmail},
		{"empty local part", "Ada", "@example.com", ErrInvalidEmail},
		{"empty domain", "Ada", "ada@", ErrInvalidEmail},
		{"embedded space", "Ada", "ada @example.com", ErrInvalidEmail},
		{"empty email", "Ada", "", ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewProfile(tt.dispName, tt.email)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewProfile() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil {
				if p.DisplayName != "Ada" {
					t.Errorf("DisplayName = %q, want Ada", p.DisplayName)
				}
				if p.Email != "ada@example.com" {
					t.Errorf("Email = %q", p.Email)
				}
			}
		})
	}
}
