package models

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stargazed/core/internal/pkg/apperr"
)

func TestNewPublicationScheduling(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("scheduled with publishAt", func(t *testing.T) {
		p, err := NewPublication(StatusScheduled, &at)
		require.NoError(t, err)
		assert.True(t, p.IsScheduled)
		require.NotNil(t, p.PublishAt)
		assert.Equal(t, at, *p.PublishAt)
	})

	t.Run("scheduled without publishAt is rejected", func(t *testing.T) {
		_, err := NewPublication(StatusScheduled, nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperr.ErrValidation))
	})

	t.Run("published clears scheduling fields", func(t *testing.T) {
		// publishAt supplied but status is not scheduled: both fields clear.
		p, err := NewPublication(StatusPublished, &at)
		require.NoError(t, err)
		assert.False(t, p.IsScheduled)
		assert.Nil(t, p.PublishAt)
	})

	t.Run("empty status defaults to draft", func(t *testing.T) {
		p, err := NewPublication("", nil)
		require.NoError(t, err)
		assert.Equal(t, StatusDraft, p.Status)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		_, err := NewPublication("archived", nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperr.ErrValidation))
	})
}

func TestRoleRank(t *testing.T) {
	assert.Equal(t, 0, RoleUser.Rank())
	assert.Equal(t, 1, RoleAdmin.Rank())
	assert.Equal(t, 2, RoleSuperadmin.Rank())
	assert.Equal(t, -1, Role("root").Rank())
}

func TestRoleAtLeast(t *testing.T) {
	// A superadmin-only gate admits exactly the superadmin role.
	for _, r := range []Role{RoleUser, RoleAdmin, RoleSuperadmin, Role("root")} {
		assert.Equal(t, r == RoleSuperadmin, r.AtLeast(RoleSuperadmin), "role %q", r)
	}

	assert.True(t, RoleAdmin.AtLeast(RoleUser))
	assert.True(t, RoleSuperadmin.AtLeast(RoleAdmin))
	assert.False(t, RoleUser.AtLeast(RoleAdmin))
	assert.False(t, Role("").AtLeast(RoleUser))
}
