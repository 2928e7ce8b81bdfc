package account

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stargazed/core/internal/models"
	"github.com/stargazed/core/internal/pkg/apperr"
)

func TestGuardManaged(t *testing.T) {
	tests := []struct {
		role      models.Role
		forbidden bool
	}{
		{models.RoleUser, false},
		{models.RoleAdmin, false},
		{models.RoleSuperadmin, true},
		{models.Role("unknown"), false},
	}
	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			err := guardManaged(&models.User{Role: tt.role})
			if tt.forbidden {
				assert.ErrorIs(t, err, apperr.ErrForbidden)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
