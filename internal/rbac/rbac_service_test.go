package rbac

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	svc, err := NewDefaultService()
	assert.NoError(t, err)
	return svc
}

func TestService_Can(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name     string
		role     string
		resource string
		action   string
		want     bool
	}{
		{"employee creates leave", RoleEmployee, ResourceLeave, ActionCreate, true},
		{"employee cannot review", RoleEmployee, ResourceLeave, ActionReview, false},
		{"employee cannot adjust balance", RoleEmployee, ResourceLeaveBalance, ActionAdjust, false},
		{"employee cannot manage members", RoleEmployee, ResourceMembership, ActionManage, false},
		{"manager inherits leave create", RoleManager, ResourceLeave, ActionCreate, true},
		{"manager reviews", RoleManager, ResourceLeave, ActionReview, true},
		{"manager adjusts balance", RoleManager, ResourceLeaveBalance, ActionAdjust, true},
		{"manager reads company leaves", RoleManager, ResourceLeave, ActionReadCompany, true},
		{"unknown role", "GUEST", ResourceLeave, ActionCreate, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.Can(tt.role, tt.resource, tt.action))
		})
	}
}

func TestService_Permissions(t *testing.T) {
	svc := newTestService(t)

	employee, err := svc.Permissions(RoleEmployee)
	assert.NoError(t, err)
	assert.Contains(t, employee, PermissionResponse{Resource: ResourceLeave, Action: ActionCreate})
	assert.NotContains(t, employee, PermissionResponse{Resource: ResourceLeave, Action: ActionReview})

	manager, err := svc.Permissions(RoleManager)
	assert.NoError(t, err)
	assert.Contains(t, manager, PermissionResponse{Resource: ResourceLeave, Action: ActionCreate})
	assert.Contains(t, manager, PermissionResponse{Resource: ResourceLeaveBalance, Action: ActionAdjust})
}
