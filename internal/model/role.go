// Package model defines the persistent documents and the static role
// system shared by every layer of the application.
package model

import "errors"

// RoleID is the numeric role identifier stored in the database. The
// values are persisted inside user documents and must never be
// renumbered, even if display names change.
type RoleID int

const (
	RoleCustomer RoleID = 1
	RoleTrainer  RoleID = 2
	RoleAdmin    RoleID = 3
	RoleMaster   RoleID = 4
)

// ErrInvalidRole is returned when a role name or id is not one of the
// four defined roles.
var ErrInvalidRole = errors.New("invalid role")

var roleNames = map[RoleID]string{
	RoleCustomer: "customer",
	RoleTrainer:  "trainer",
	RoleAdmin:    "admin",
	RoleMaster:   "master",
}

var roleIDs = map[string]RoleID{
	"customer": RoleCustomer,
	"trainer":  RoleTrainer,
	"admin":    RoleAdmin,
	"master":   RoleMaster,
}

// roleRanks orders roles for hierarchy checks. A higher rank includes
// the privileges of every lower rank. Master is handled separately in
// CanAccess and never relies on its rank.
var roleRanks = map[RoleID]int{
	RoleCustomer: 1,
	RoleTrainer:  2,
	RoleAdmin:    3,
	RoleMaster:   4,
}

// DefaultRoleName is assigned to accounts created without an explicit
// role, such as OAuth sign-ups.
const DefaultRoleName = "customer"

// RoleIDOf maps a role name to its id.
func RoleIDOf(name string) (RoleID, error) {
	id, ok := roleIDs[name]
	if !ok {
		return 0, ErrInvalidRole
	}
	return id, nil
}

// RoleNameOf maps a role id to its name.
func RoleNameOf(id RoleID) (string, error) {
	name, ok := roleNames[id]
	if !ok {
		return "", ErrInvalidRole
	}
	return name, nil
}

// IsRole reports whether the user's role id matches the target exactly.
func IsRole(userRole, target RoleID) bool {
	return userRole == target
}

// CanAccess reports whether a user with userRole may act on resources
// gated at target. Master bypasses the rank comparison entirely; every
// other role needs a rank greater than or equal to the target's.
func CanAccess(userRole, target RoleID) bool {
	if userRole == RoleMaster {
		return true
	}
	ur, ok := roleRanks[userRole]
	if !ok {
		return false
	}
	tr, ok := roleRanks[target]
	if !ok {
		return false
	}
	return ur >= tr
}

// RegisterableRoles lists the role names selectable during
// registration. Master accounts are provisioned manually and can never
// be self-registered.
func RegisterableRoles() []string {
	return []string{"customer", "trainer", "admin"}
}

// RoleConfig holds the static per-role metadata used by the route
// guard and the login pages.
//
// Fields:
//  RoleID        – role this entry belongs to.
//  DisplayName   – human readable name.
//  DashboardURL  – landing page after login and on forbidden access.
//  LoginURL      – login page for the role's namespace.
//  AllowedRoutes – route-path prefixes the role may access.
//  LoginBanner   – banner asset shown on the role's login page.
type RoleConfig struct {
	RoleID        RoleID
	DisplayName   string
	DashboardURL  string
	LoginURL      string
	AllowedRoutes []string
	LoginBanner   string
}

// roleConfigs is built once at process start and never mutated.
// Master's allowed routes are the union of every other namespace.
var roleConfigs = map[RoleID]RoleConfig{
	RoleCustomer: {
		RoleID:        RoleCustomer,
		DisplayName:   "Customer",
		DashboardURL:  "/",
		LoginURL:      "/login",
		AllowedRoutes: []string{"/"},
		LoginBanner:   "/login-customer-banner.png",
	},
	RoleTrainer: {
		RoleID:        RoleTrainer,
		DisplayName:   "Trainer",
		DashboardURL:  "/trainer",
		LoginURL:      "/trainer/login",
		AllowedRoutes: []string{"/trainer"},
		LoginBanner:   "/login-trainer-banner.png",
	},
	RoleAdmin: {
		RoleID:        RoleAdmin,
		DisplayName:   "Admin",
		DashboardURL:  "/admin",
		LoginURL:      "/admin/login",
		AllowedRoutes: []string{"/admin"},
		LoginBanner:   "/login-admin-banner.png",
	},
	RoleMaster: {
		RoleID:        RoleMaster,
		DisplayName:   "Master",
		DashboardURL:  "/admin",
		LoginURL:      "/admin/login",
		AllowedRoutes: []string{"/", "/trainer", "/admin"},
		LoginBanner:   "/login-admin-banner.png",
	},
}

// ConfigFor returns the static configuration for a role.
func ConfigFor(id RoleID) (RoleConfig, error) {
	cfg, ok := roleConfigs[id]
	if !ok {
		return RoleConfig{}, ErrInvalidRole
	}
	return cfg, nil
}
