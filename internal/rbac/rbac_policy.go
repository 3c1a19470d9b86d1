package rbac

const (
	RoleManager    = "manager"
	RoleTeamLeader = "team_leader"
	RoleEngineer   = "engineer"
)

// Resources and actions checked by route middleware.
const (
	ResourceAttendance = "attendance"
	ResourceLeave      = "leave"
	ResourceReport     = "report"
	ResourceUser       = "user"

	ActionRead     = "read"
	ActionWrite    = "write"
	ActionCreate   = "create"
	ActionReadTeam = "read_team"
	ActionApprove  = "approve"
	ActionManage   = "manage"
)

type Permission struct {
	Resource string `json:"resource"`
	Action   string `json:"action"`
}

// rolePermissions lists what each role adds on top of the roles it inherits.
var rolePermissions = map[string][]Permission{
	RoleEngineer: {
		{ResourceAttendance, ActionWrite},
		{ResourceAttendance, ActionRead},
		{ResourceLeave, ActionCreate},
		{ResourceLeave, ActionRead},
		{ResourceReport, ActionWrite},
		{ResourceReport, ActionRead},
	},
	RoleTeamLeader: {
		{ResourceAttendance, ActionReadTeam},
		{ResourceLeave, ActionApprove},
		{ResourceReport, ActionReadTeam},
		{ResourceUser, ActionRead},
	},
	RoleManager: {
		{ResourceUser, ActionManage},
	},
}

// roleInheritance: child role -> parent role whose permissions it receives.
var roleInheritance = [][2]string{
	{RoleTeamLeader, RoleEngineer},
	{RoleManager, RoleTeamLeader},
}

func ValidRole(role string) bool {
	_, ok := rolePermissions[role]
	return ok
}
