package handler

// --- Request types ---

type registerClientRequest struct {
	Name         string `json:"name"         form:"name"         validate:"required"`
	Email        string `json:"email"        form:"email"        validate:"required,email"`
	Password     string `json:"password"     form:"password"     validate:"required,min=6"`
	BusinessName string `json:"businessName" form:"businessName" validate:"required"`
	BusinessType string `json:"businessType" form:"businessType" validate:"required"`
	CompanySize  string `json:"companySize"  form:"companySize"  validate:"required"`
	Address      string `json:"address"      form:"address"      validate:"required"`
	UserType     string `json:"userType"     form:"userType"     validate:"omitempty,oneof=client"`
}

type registerFreelancerRequest struct {
	Name       string `json:"name"       form:"name"       validate:"required"`
	Email      string `json:"email"      form:"email"      validate:"required,email"`
	Password   string `json:"password"   form:"password"   validate:"required,min=6"`
	Skills     string `json:"skills"     form:"skills"     validate:"required"`
	Experience string `json:"experience" form:"experience" validate:"required"`
	UserType   string `json:"userType"   form:"userType"   validate:"omitempty,oneof=freelancer"`
}

type loginRequest struct {
	Email    string `json:"email"    form:"email"    validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
	UserType string `json:"userType" form:"userType" validate:"omitempty,oneof=client freelancer"`
}

type updateBioRequest struct {
	Bio string `json:"bio" form:"bio" validate:"required"`
}

// --- Response envelope ---

// errorResponse is the standard envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// authResponse is returned by registration and login: the token plus the
// role-shaped public view of the account. The credential hash has no field
// in either view.
type authResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Token   string `json:"token"`
	User    any    `json:"user"`
}

// profileResponse is returned by the profile-read endpoints.
type profileResponse struct {
	Success bool `json:"success"`
	User    any  `json:"user"`
}

// bioResponse is returned by the bio-update endpoints: only the updated
// field.
type bioResponse struct {
	Success bool   `json:"success"`
	Bio     string `json:"bio"`
}

// pictureResponse is returned by the picture-update endpoints.
type pictureResponse struct {
	Success        bool   `json:"success"`
	ProfilePicture string `json:"profilePicture"`
}
