package company

import "time"

type CreateCompanyRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}

type CompanyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	// Role is the requester's role in the company.
	Role string `json:"role,omitempty"`
}
