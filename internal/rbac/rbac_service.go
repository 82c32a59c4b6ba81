package rbac

import (
	"go-leave/internal/rbac/infra"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

const (
	RoleEmployee = "EMPLOYEE"
	RoleManager  = "MANAGER"
)

const (
	ResourceLeave        = "leave"
	ResourceLeaveBalance = "leave_balance"
	ResourceMembership   = "membership"
	ResourceCompany      = "company"
)

const (
	ActionCreate      = "create"
	ActionReview      = "review"
	ActionReadCompany = "read_company"
	ActionManage      = "manage"
	ActionAdjust      = "adjust"
	ActionReadAny     = "read_any"
	ActionRead        = "read"
)

// DefaultGrouping makes managers inherit every employee permission.
var DefaultGrouping = [][]string{
	{RoleManager, RoleEmployee},
}

var DefaultPolicies = [][]string{
	{RoleEmployee, ResourceLeave, ActionCreate},
	{RoleEmployee, ResourceCompany, ActionRead},
	{RoleEmployee, ResourceMembership, ActionRead},
	{RoleManager, ResourceLeave, ActionReview},
	{RoleManager, ResourceLeave, ActionReadCompany},
	{RoleManager, ResourceLeave, ActionManage},
	{RoleManager, ResourceLeaveBalance, ActionAdjust},
	{RoleManager, ResourceLeaveBalance, ActionReadAny},
	{RoleManager, ResourceMembership, ActionManage},
}

type Service interface {
	Enforce(req EnforceRequest) (bool, error)
	Can(role, resource, action string) bool
	Permissions(role string) ([]PermissionResponse, error)
}

type service struct {
	enforcer *casbin.SyncedEnforcer
	logger   *zap.Logger
}

func NewService(enforcer *casbin.SyncedEnforcer, logger ...*zap.Logger) Service {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	return &service{enforcer: enforcer, logger: l}
}

// NewDefaultService wires an enforcer loaded with the built-in policy.
func NewDefaultService(logger ...*zap.Logger) (Service, error) {
	e, err := infra.NewEnforcer(DefaultGrouping, DefaultPolicies)
	if err != nil {
		return nil, err
	}
	return NewService(e, logger...), nil
}

func (s *service) Enforce(req EnforceRequest) (bool, error) {
	allowed, err := s.enforcer.Enforce(req.Role, req.Resource, req.Action)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("role", req.Role),
			zap.String("resource", req.Resource),
			zap.String("action", req.Action),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("rbac enforce result",
		zap.String("role", req.Role),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}

// Can is Enforce for callers that treat an evaluation error as a denial.
func (s *service) Can(role, resource, action string) bool {
	allowed, err := s.Enforce(EnforceRequest{Role: role, Resource: resource, Action: action})
	return err == nil && allowed
}

func (s *service) Permissions(role string) ([]PermissionResponse, error) {
	perms, err := s.enforcer.GetImplicitPermissionsForUser(role)
	if err != nil {
		return nil, err
	}

	resp := make([]PermissionResponse, 0, len(perms))
	for _, p := range perms {
		if len(p) < 3 {
			continue
		}
		resp = append(resp, PermissionResponse{Resource: p[1], Action: p[2]})
	}
	return resp, nil
}
