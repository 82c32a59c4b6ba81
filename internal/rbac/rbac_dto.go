package rbac

type EnforceRequest struct {
	Role     string `json:"role" binding:"required,oneof=EMPLOYEE MANAGER"`
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}

type PermissionResponse struct {
	Resource string `json:"resource"`
	Action   string `json:"action"`
}
