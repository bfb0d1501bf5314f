package rbac

type Role string
type Permission string

const (
	RoleAdministrator Role = "administrator"
	RoleCRMManager    Role = "crm_manager"
	RoleSales         Role = "sales"
)

const (
	ViewAllData        Permission = "view_all_data"
	EditAllData        Permission = "edit_all_data"
	DeleteAllData      Permission = "delete_all_data"
	ManageUsers        Permission = "manage_users"
	ManageRoles        Permission = "manage_roles"
	SystemSettings     Permission = "system_settings"
	ExportData         Permission = "export_data"
	ViewReports        Permission = "view_reports"
	ManageCampaigns    Permission = "manage_campaigns"
	ManageWorkflows    Permission = "manage_workflows"
	ManageLeads        Permission = "manage_leads"
	ManageDeals        Permission = "manage_deals"
	AssignLeads        Permission = "assign_leads"
	ApproveDeals       Permission = "approve_deals"
	ViewCampaigns      Permission = "view_campaigns"
	ViewWorkflows      Permission = "view_workflows"
	ViewOwnData        Permission = "view_own_data"
	EditOwnData        Permission = "edit_own_data"
	ManageOwnLeads     Permission = "manage_own_leads"
	ManageOwnDeals     Permission = "manage_own_deals"
	ViewOwnReports     Permission = "view_own_reports"
	SendCommunications Permission = "send_communications"
	NoDeleteAccess     Permission = "no_delete_access" // granted to sales but never checked anywhere
)

var RolePermissions = map[Role][]Permission{
	RoleAdministrator: {
		ViewAllData,
		EditAllData,
		DeleteAllData,
		ManageUsers,
		ManageRoles,
		SystemSettings,
		ExportData,
		ViewReports,
		ManageCampaigns,
		ManageWorkflows,
	},
	RoleCRMManager: {
		ViewAllData,
		EditAllData,
		ManageLeads,
		ManageDeals,
		ViewReports,
		ManageCampaigns,
		ManageWorkflows,
		AssignLeads,
		ApproveDeals,
	},
	RoleSales: {
		ViewAllData,
		ViewReports,
		ViewCampaigns,
		ViewWorkflows,
		ViewOwnData,
		EditOwnData,
		ManageOwnLeads,
		ManageOwnDeals,
		ViewOwnReports,
		SendCommunications,
		NoDeleteAccess,
	},
}

// HasPermission reports whether the role's grant set contains the permission.
// Unknown roles have no grants.
func HasPermission(role Role, permission Permission) bool {
	grants, exists := RolePermissions[role]
	if !exists {
		return false
	}
	for _, p := range grants {
		if p == permission {
			return true
		}
	}
	return false
}

func ValidRole(role Role) bool {
	_, exists := RolePermissions[role]
	return exists
}

func Permissions(role Role) []Permission {
	return RolePermissions[role]
}
