package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/talenthub/accounts-api/internal/core/ports"
)

// AccountHandler serves registration and login.
type AccountHandler struct {
	accounts ports.AccountService
	filter   uploadFilter
}

func NewAccountHandler(accounts ports.AccountService, maxUploadBytes int64) *AccountHandler {
	return &AccountHandler{accounts: accounts, filter: uploadFilter{maxBytes: maxUploadBytes}}
}

// RegisterClient creates a client account.
//
// @Summary      Register a client account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerClientRequest  true  "Client registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Router       /register/client [post]
func (h *AccountHandler) RegisterClient(c echo.Context) error {
	var req registerClientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.accounts.RegisterClient(c.Request().Context(), ports.RegisterClientInput{
		Name:         req.Name,
		Email:        req.Email,
		Password:     req.Password,
		BusinessName: req.BusinessName,
		BusinessType: req.BusinessType,
		CompanySize:  req.CompanySize,
		Address:      req.Address,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, authResponse{
		Success: true,
		Message: "registration successful",
		Token:   result.Token,
		User:    result.Profile,
	})
}

// RegisterFreelancer creates a freelancer account from a multipart form.
// Both attachments are mandatory: profilePicture (image) and resume
// (PDF/DOC/DOCX), each within the configured size ceiling.
//
// @Summary      Register a freelancer account
// @Tags         auth
// @Accept       multipart/form-data
// @Produce      json
// @Param        name            formData  string  true  "Full name"
// @Param        email           formData  string  true  "Email address"
// @Param        password        formData  string  true  "Password"
// @Param        skills          formData  string  true  "Skills"
// @Param        experience      formData  string  true  "Experience"
// @Param        profilePicture  formData  file    true  "Profile picture (image, max 5MB)"
// @Param        resume          formData  file    true  "Resume (PDF/DOC/DOCX, max 5MB)"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Router       /register/freelancer [post]
func (h *AccountHandler) RegisterFreelancer(c echo.Context) error {
	var req registerFreelancerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	picture, err := h.filter.formAttachment(c, "profilePicture", "picture")
	if err != nil {
		return err
	}
	if picture == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "profilePicture is required")
	}

	resume, err := h.filter.formAttachment(c, "resume", "resume")
	if err != nil {
		return err
	}
	if resume == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "resume is required")
	}

	result, err := h.accounts.RegisterFreelancer(c.Request().Context(), ports.RegisterFreelancerInput{
		Name:       req.Name,
		Email:      req.Email,
		Password:   req.Password,
		Skills:     req.Skills,
		Experience: req.Experience,
		Picture:    picture,
		Resume:     resume,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, authResponse{
		Success: true,
		Message: "registration successful",
		Token:   result.Token,
		User:    result.Profile,
	})
}

// Login authenticates by email and password and returns a fresh token.
// The optional userType hint, when present, must match the stored role.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /login [post]
func (h *AccountHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.accounts.Login(c.Request().Context(), req.Email, req.Password, req.UserType)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, authResponse{
		Success: true,
		Message: "login successful",
		Token:   result.Token,
		User:    result.Profile,
	})
}
