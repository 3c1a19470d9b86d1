package rbac

import (
	"testing"

	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/rbac/infra"

	"github.com/stretchr/testify/assert"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	enforcer, err := infra.NewEnforcer()
	assert.NoError(t, err)

	svc, err := NewService(enforcer)
	assert.NoError(t, err)
	return svc
}

func TestRBACService_Enforce(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		role, resource, action string
		want                   bool
	}{
		{RoleEngineer, ResourceAttendance, ActionWrite, true},
		{RoleEngineer, ResourceAttendance, ActionReadTeam, false},
		{RoleEngineer, ResourceLeave, ActionApprove, false},
		{RoleTeamLeader, ResourceAttendance, ActionWrite, true},
		{RoleTeamLeader, ResourceLeave, ActionApprove, true},
		{RoleTeamLeader, ResourceUser, ActionManage, false},
		{RoleManager, ResourceReport, ActionReadTeam, true},
		{RoleManager, ResourceUser, ActionManage, true},
		{"intern", ResourceAttendance, ActionRead, false},
	}

	for _, tt := range tests {
		t.Run(tt.role+"/"+tt.resource+":"+tt.action, func(t *testing.T) {
			allowed, err := svc.Enforce(EnforceRequest{Role: tt.role, Resource: tt.resource, Action: tt.action})
			assert.NoError(t, err)
			assert.Equal(t, tt.want, allowed)
		})
	}
}

func TestRBACService_PermissionsFor(t *testing.T) {
	svc := newTestService(t)

	engineer, err := svc.PermissionsFor(RoleEngineer)
	assert.NoError(t, err)
	assert.Len(t, engineer, 6)

	manager, err := svc.PermissionsFor(RoleManager)
	assert.NoError(t, err)
	assert.Len(t, manager, 11)
	assert.Contains(t, manager, Permission{Resource: ResourceUser, Action: ActionManage})
	assert.Contains(t, manager, Permission{Resource: ResourceAttendance, Action: ActionWrite})
}

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole(RoleTeamLeader))
	assert.False(t, ValidRole("admin"))
}
