package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/talenthub/accounts-api/internal/core/ports"
)

// ProfileHandler serves the role-gated profile endpoints. The account id
// and role always come from the verified token claims.
type ProfileHandler struct {
	profiles ports.ProfileService
	filter   uploadFilter
}

func NewProfileHandler(profiles ports.ProfileService, maxUploadBytes int64) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, filter: uploadFilter{maxBytes: maxUploadBytes}}
}

// GetProfile returns the role-shaped view of the caller's account.
//
// @Summary      Get own profile
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200   {object}  profileResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /client/profile [get]
// @Router       /freelancer/profile [get]
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	accountID, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	view, err := h.profiles.GetProfile(c.Request().Context(), accountID, role)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, profileResponse{Success: true, User: view})
}

// UpdateBio replaces the caller's bio and returns only the updated field.
//
// @Summary      Update own bio
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateBioRequest  true  "New bio"
// @Success      200   {object}  bioResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /client/update-bio [post]
// @Router       /freelancer/update-bio [post]
func (h *ProfileHandler) UpdateBio(c echo.Context) error {
	accountID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateBioRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	bio, err := h.profiles.UpdateBio(c.Request().Context(), accountID, req.Bio)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, bioResponse{Success: true, Bio: bio})
}

// UpdatePicture stores a new profile picture and returns its reference.
//
// @Summary      Update own profile picture
// @Tags         profile
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        profilePicture  formData  file  true  "Profile picture (image, max 5MB)"
// @Success      200   {object}  pictureResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /client/update-picture [post]
// @Router       /freelancer/update-picture [post]
func (h *ProfileHandler) UpdatePicture(c echo.Context) error {
	accountID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	picture, err := h.filter.formAttachment(c, "profilePicture", "picture")
	if err != nil {
		return err
	}
	if picture == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "profilePicture is required")
	}

	ref, err := h.profiles.UpdatePicture(c.Request().Context(), accountID, picture)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, pictureResponse{Success: true, ProfilePicture: ref})
}
