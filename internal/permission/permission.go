// Package permission maps user roles to capability sets. The table is fixed
// and exhaustive over the three roles; handlers receive it as an injected
// gate rather than consulting a global.
package permission

// Role is a user's permission tier.
type Role string

const (
	RoleUser       Role = "user"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super-admin"
)

// Permission is a single capability a role may hold.
type Permission string

const (
	ViewGames         Permission = "view_games"
	EditGames         Permission = "edit_games"
	DeleteGames       Permission = "delete_games"
	ViewUsers         Permission = "view_users"
	EditUsers         Permission = "edit_users"
	DeleteUsers       Permission = "delete_users"
	ViewPredictions   Permission = "view_predictions"
	EditPredictions   Permission = "edit_predictions"
	DeletePredictions Permission = "delete_predictions"
	ManageSystem      Permission = "manage_system"
)

var rolePermissions = map[Role][]Permission{
	RoleUser: {
		ViewGames,
		ViewPredictions,
	},
	RoleAdmin: {
		ViewGames,
		EditGames,
		ViewUsers,
		EditUsers,
		ViewPredictions,
		EditPredictions,
	},
	RoleSuperAdmin: {
		ViewGames,
		EditGames,
		DeleteGames,
		ViewUsers,
		EditUsers,
		DeleteUsers,
		ViewPredictions,
		EditPredictions,
		DeletePredictions,
		ManageSystem,
	},
}

// ValidRole reports whether s names one of the three known roles.
func ValidRole(s string) bool {
	switch Role(s) {
	case RoleUser, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// PermissionsFor returns the capability set of a role. Unknown roles get the
// plain user set, matching how the UI degrades for users with a missing role.
func PermissionsFor(role Role) []Permission {
	perms, ok := rolePermissions[role]
	if !ok {
		return rolePermissions[RoleUser]
	}
	return perms
}

// Has reports whether the role holds the given permission.
func Has(role Role, perm Permission) bool {
	for _, p := range PermissionsFor(role) {
		if p == perm {
			return true
		}
	}
	return false
}
