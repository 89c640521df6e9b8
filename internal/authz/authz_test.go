package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/timecard-app/timecard/internal/domain"
)

func principalWith(roles ...domain.Role) *domain.Principal {
	return &domain.Principal{Roles: roles}
}

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name      string
		principal *domain.Principal
		required  []domain.Role
		want      Decision
	}{
		{
			name:     "no principal",
			required: []domain.Role{domain.RoleAccount},
			want:     Unauthenticated,
		},
		{
			name:      "no principal, open route",
			principal: nil,
			want:      Unauthenticated,
		},
		{
			name:      "empty required admits any principal",
			principal: principalWith(domain.RoleAccount),
			want:      Allowed,
		},
		{
			name:      "wrong role",
			principal: principalWith(domain.RoleAccount),
			required:  []domain.Role{domain.RoleOfficeManager, domain.RoleAdmin},
			want:      Forbidden,
		},
		{
			name:      "one of several roles matches",
			principal: principalWith(domain.RoleAccount, domain.RoleAdmin),
			required:  []domain.Role{domain.RoleAdmin},
			want:      Allowed,
		},
		{
			name:      "intersection not equality",
			principal: principalWith(domain.RoleOfficeManager, domain.RoleAdmin),
			required:  []domain.Role{domain.RoleOfficeManager},
			want:      Allowed,
		},
		{
			name:      "empty role set",
			principal: principalWith(),
			required:  []domain.Role{domain.RoleAccount},
			want:      Forbidden,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Authorize(tt.principal, tt.required...))
		})
	}
}

func TestDecisionString(t *testing.T) {
	assert.Equal(t, "allowed", Allowed.String())
	assert.Equal(t, "unauthenticated", Unauthenticated.String())
	assert.Equal(t, "forbidden", Forbidden.String())
}
