package membership

import "time"

type AddMemberRequest struct {
	UserID string `json:"userId" binding:"required,uuid"`
	Role   Role   `json:"role" binding:"required,oneof=EMPLOYEE MANAGER"`
}

type UpdateRoleRequest struct {
	Role Role `json:"role" binding:"required,oneof=EMPLOYEE MANAGER"`
}

type MembershipResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	CompanyID string    `json:"companyId"`
	Role      Role      `json:"role"`
	UserName  string    `json:"userName,omitempty"`
	UserEmail string    `json:"userEmail,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type MyMembershipResponse struct {
	ID          string `json:"id"`
	CompanyID   string `json:"companyId"`
	CompanyName string `json:"companyName"`
	Role        Role   `json:"role"`
}
