package role

import (
	"github.com/biz365/admin-api/internal/database"
	"github.com/biz365/admin-api/internal/models"
)

var defaultRoles = []models.Role{
	{Name: "Super Admin", Description: "Full system access with all permissions", Level: "admin", Status: "active"},
	{Name: "Store Manager", Description: "Manage store operations and staff", Level: "manager", Status: "active"},
	{Name: "Customer", Description: "Standard customer access", Level: "user", Status: "active"},
	{Name: "Store Owner", Description: "Business owner with store management access", Level: "manager", Status: "active"},
}

var permissionSet = []struct {
	Resource    string
	Action      string
	Description string
}{
	{"users", "create", "Create new user accounts"},
	{"users", "read", "View user account information"},
	{"users", "update", "Update user account information"},
	{"users", "delete", "Delete user accounts"},
	{"nfc-tags", "create", "Create new NFC tags"},
	{"nfc-tags", "read", "View NFC tag information"},
	{"nfc-tags", "update", "Update NFC tag configuration"},
	{"nfc-tags", "delete", "Delete NFC tags"},
	{"stores", "create", "Create new stores"},
	{"stores", "read", "View store information"},
	{"stores", "update", "Update store information"},
	{"stores", "delete", "Delete stores"},
	{"settings", "read", "View system settings"},
	{"settings", "update", "Update system settings"},
	{"logs", "read", "View system logs"},
	{"logs", "delete", "Delete system logs"},
}

// defaultGrants lists permission names per role; Super Admin gets all.
var defaultGrants = map[string][]string{
	"Store Manager": {"users.read", "nfc-tags.read", "stores.read", "settings.read"},
	"Customer":      {"users.read", "nfc-tags.read", "stores.read"},
	"Store Owner":   {"users.read", "nfc-tags.read", "stores.create", "stores.read", "stores.update"},
}

// NameForUserRole maps a user's role value onto the role record that
// carries its permission grants.
func NameForUserRole(userRole string) string {
	switch userRole {
	case "admin", "super_admin":
		return "Super Admin"
	case "store_owner":
		return "Store Owner"
	case "customer":
		return "Customer"
	}
	return ""
}

// UserRoleValues is the inverse of NameForUserRole: the user role
// values that resolve to the given role record. Custom roles map to
// nothing.
func UserRoleValues(roleName string) []string {
	switch roleName {
	case "Super Admin":
		return []string{"admin", "super_admin"}
	case "Store Owner":
		return []string{"store_owner"}
	case "Customer":
		return []string{"customer"}
	}
	return nil
}

// SeedDefaultRoles writes the default roles, the permission catalog and
// the grant table. Safe to run on every boot.
func SeedDefaultRoles() error {
	db := database.DB

	for _, r := range defaultRoles {
		if err := db.Where(models.Role{Name: r.Name}).Attrs(r).FirstOrCreate(&models.Role{}).Error; err != nil {
			return err
		}
	}

	allNames := make([]string, 0, len(permissionSet))
	for _, p := range permissionSet {
		name := p.Resource + "." + p.Action
		allNames = append(allNames, name)
		perm := models.Permission{
			Name:        name,
			Description: p.Description,
			Resource:    p.Resource,
			Action:      p.Action,
		}
		if err := db.Where(models.Permission{Name: name}).Attrs(perm).FirstOrCreate(&models.Permission{}).Error; err != nil {
			return err
		}
	}

	grants := map[string][]string{"Super Admin": allNames}
	for roleName, names := range defaultGrants {
		grants[roleName] = names
	}

	for roleName, names := range grants {
		var r models.Role
		if err := db.Where("name = ?", roleName).First(&r).Error; err != nil {
			return err
		}
		for _, permName := range names {
			var p models.Permission
			if err := db.Where("name = ?", permName).First(&p).Error; err != nil {
				return err
			}
			join := models.RolePermission{RoleID: r.ID, PermissionID: p.ID}
			if err := db.Where(&join).FirstOrCreate(&models.RolePermission{}, join).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
