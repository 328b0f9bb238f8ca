package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Sumit9819/digital-marketing-cms/internal/apperr"
	"github.com/Sumit9819/digital-marketing-cms/internal/model"
)

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name    string
		user    *model.AuthenticatedUser
		allowed []string
		want    error
	}{
		{"admin allowed", &model.AuthenticatedUser{Role: model.RoleAdministrator}, []string{model.RoleAdministrator, model.RoleEditor}, nil},
		{"editor allowed", &model.AuthenticatedUser{Role: model.RoleEditor}, []string{model.RoleAdministrator, model.RoleEditor}, nil},
		{"author denied", &model.AuthenticatedUser{Role: model.RoleAuthor}, []string{model.RoleAdministrator, model.RoleEditor}, apperr.ErrPermissionDenied},
		{"empty allow-list denies", &model.AuthenticatedUser{Role: model.RoleAdministrator}, nil, apperr.ErrPermissionDenied},
		{"no user", nil, []string{model.RoleAuthor}, apperr.ErrUnauthenticated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RequireRole(tt.user, tt.allowed...)
			if tt.want == nil {
				if err != nil {
					t.Errorf("RequireRole() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("RequireRole() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRequireAuthenticated(t *testing.T) {
	cfg := TokenConfig{Secret: testSecret}
	user := testUser()
	v := NewVerifier(cfg, fakeUsers{user.ID: user})

	token, _, err := IssueToken(cfg, user, time.Now())
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	got, err := RequireAuthenticated(context.Background(), v, "Bearer "+token)
	if err != nil {
		t.Fatalf("RequireAuthenticated: %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("ID = %d, want %d", got.ID, user.ID)
	}

	if _, err := RequireAuthenticated(context.Background(), v, ""); !errors.Is(err, apperr.ErrUnauthenticated) {
		t.Errorf("missing header error = %v, want unauthenticated", err)
	}
}
