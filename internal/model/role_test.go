package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleMappingRoundTrip(t *testing.T) {
	for _, name := range []string{"customer", "trainer", "admin", "master"} {
		id, err := RoleIDOf(name)
		require.NoError(t, err)

		back, err := RoleNameOf(id)
		require.NoError(t, err)
		assert.Equal(t, name, back)

		again, err := RoleIDOf(back)
		require.NoError(t, err)
		assert.Equal(t, id, again)
	}
}

func TestRoleMappingUnknown(t *testing.T) {
	_, err := RoleIDOf("owner")
	assert.ErrorIs(t, err, ErrInvalidRole)

	_, err = RoleNameOf(RoleID(99))
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestCanAccessMasterBypassesHierarchy(t *testing.T) {
	for _, target := range []RoleID{RoleCustomer, RoleTrainer, RoleAdmin, RoleMaster} {
		assert.True(t, CanAccess(RoleMaster, target), "master must access role %d", target)
	}
}

func TestCanAccessHierarchyIsMonotonic(t *testing.T) {
	assert.True(t, CanAccess(RoleAdmin, RoleCustomer))
	assert.True(t, CanAccess(RoleAdmin, RoleTrainer))
	assert.True(t, CanAccess(RoleTrainer, RoleCustomer))
	assert.True(t, CanAccess(RoleCustomer, RoleCustomer))

	assert.False(t, CanAccess(RoleCustomer, RoleTrainer))
	assert.False(t, CanAccess(RoleTrainer, RoleAdmin))
	assert.False(t, CanAccess(RoleAdmin, RoleMaster))
}

func TestCanAccessUnknownRole(t *testing.T) {
	assert.False(t, CanAccess(RoleID(0), RoleCustomer))
}

func TestIsRole(t *testing.T) {
	assert.True(t, IsRole(RoleTrainer, RoleTrainer))
	assert.False(t, IsRole(RoleTrainer, RoleAdmin))
}

func TestConfigForEveryRole(t *testing.T) {
	for _, id := range []RoleID{RoleCustomer, RoleTrainer, RoleAdmin, RoleMaster} {
		cfg, err := ConfigFor(id)
		require.NoError(t, err)
		assert.Equal(t, id, cfg.RoleID)
		assert.NotEmpty(t, cfg.DashboardURL)
		assert.NotEmpty(t, cfg.LoginURL)
		assert.NotEmpty(t, cfg.AllowedRoutes)
		assert.NotEmpty(t, cfg.LoginBanner)
	}

	_, err := ConfigFor(RoleID(7))
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestMasterRoutesCoverAllNamespaces(t *testing.T) {
	cfg, err := ConfigFor(RoleMaster)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"/", "/trainer", "/admin"}, cfg.AllowedRoutes)
}

func TestRegisterableRolesExcludeMaster(t *testing.T) {
	assert.NotContains(t, RegisterableRoles(), "master")
}
