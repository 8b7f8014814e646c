package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-route-handler/models"
)

func TestUserValidator(t *testing.T) {
	v := NewUserValidator()

	tests := []struct {
		name    string
		user    models.User
		fields  []string
		wantErr error
	}{
		{name: "valid", user: models.User{Login: "gopher", Password: "password1"}},
		{name: "empty login", user: models.User{Password: "password1"}, wantErr: ErrEmptyLogin},
		{name: "login with space", user: models.User{Login: "go pher", Password: "password1"}, wantErr: ErrInvalidLogin},
		{name: "login too long", user: models.User{Login: strings.Repeat("a", MaxLoginLength+1), Password: "password1"}, wantErr: ErrLoginTooLong},
		{name: "empty password", user: models.User{Login: "gopher"}, wantErr: ErrEmptyPassword},
		{name: "short password", user: models.User{Login: "gopher", Password: "short"}, wantErr: ErrPasswordTooShort},
		{name: "long password", user: models.User{Login: "gopher", Password: strings.Repeat("a", MaxPasswordLength+1)}, wantErr: ErrPasswordTooLong},
		{name: "login only checks presence", user: models.User{Login: "gopher", Password: "x"}, fields: []string{FieldLogin, FieldPasswordPresent}},
		{name: "presence still required", user: models.User{Login: "gopher"}, fields: []string{FieldPasswordPresent}, wantErr: ErrEmptyPassword},
		{name: "unknown field", user: models.User{}, fields: []string{"email"}, wantErr: ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), &tt.user, tt.fields...)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestUserValidator_UnsupportedType(t *testing.T) {
	require.ErrorIs(t, NewUserValidator().Validate(context.Background(), 42), ErrUnsupportedType)
}
