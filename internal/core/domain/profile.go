package domain

import "time"

// ClientProfile is the public view of a client account. The credential
// hash has no field here and can never leak through serialization.
type ClientProfile struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Role           Role      `json:"role"`
	BusinessName   string    `json:"businessName"`
	BusinessType   string    `json:"businessType"`
	CompanySize    string    `json:"companySize"`
	Address        string    `json:"address"`
	Bio            string    `json:"bio,omitempty"`
	ProfilePicture string    `json:"profilePicture,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// FreelancerProfile is the public view of a freelancer account.
type FreelancerProfile struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Role           Role      `json:"role"`
	Skills         string    `json:"skills"`
	Experience     string    `json:"experience"`
	ProfilePicture string    `json:"profilePicture,omitempty"`
	Resume         string    `json:"resume,omitempty"`
	Bio            string    `json:"bio,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// ProfileView shapes an account into its role-specific public view.
// The switch is exhaustive over Role; an unknown role yields nil, which
// callers must treat as an internal error.
func ProfileView(a *Account) any {
	switch a.Role {
	case RoleClient:
		return &ClientProfile{
			ID:             a.ID,
			Name:           a.Name,
			Email:          a.Email,
			Role:           a.Role,
			BusinessName:   a.BusinessName,
			BusinessType:   a.BusinessType,
			CompanySize:    a.CompanySize,
			Address:        a.Address,
			Bio:            a.Bio,
			ProfilePicture: a.ProfilePicture,
			CreatedAt:      a.CreatedAt,
			UpdatedAt:      a.UpdatedAt,
		}
	case RoleFreelancer:
		return &FreelancerProfile{
			ID:             a.ID,
			Name:           a.Name,
			Email:          a.Email,
			Role:           a.Role,
			Skills:         a.Skills,
			Experience:     a.Experience,
			ProfilePicture: a.ProfilePicture,
			Resume:         a.Resume,
			Bio:            a.Bio,
			CreatedAt:      a.CreatedAt,
			UpdatedAt:      a.UpdatedAt,
		}
	}
	return nil
}
