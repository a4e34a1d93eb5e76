package handler

import (
	"net/http"

	"ethos/internal/delivery/api/middleware"
	"ethos/internal/delivery/api/response"
	domainerrors "ethos/internal/domain/errors"
	"ethos/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProjectHandlerParams holds dependencies for ProjectHandler, injected by Fx.
type ProjectHandlerParams struct {
	fx.In

	ProjectUC usecase.ProjectUsecase
}

// ProjectHandler serves the /projects resource on behalf of the authenticated user.
type ProjectHandler struct {
	projectUC usecase.ProjectUsecase
}

func NewProjectHandler(params ProjectHandlerParams) *ProjectHandler {
	return &ProjectHandler{projectUC: params.ProjectUC}
}

type CreateProjectRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
}

type UpdateProjectRequest struct {
	Name        *string `json:"name" validate:"required_without=Description"`
	Description *string `json:"description" validate:"required_without=Name"`
}

func (h *ProjectHandler) CreateProject(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CreateProjectRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid project input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	project, err := h.projectUC.CreateProject(c.Request().Context(), &usecase.CreateProjectInput{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toProjectResponse(project))
}

func (h *ProjectHandler) ListProjects(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	projects, err := h.projectUC.ListProjects(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProjectResponses(projects))
}

func (h *ProjectHandler) GetProject(c echo.Context) error {
	userID, id, err := ownerAndID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	project, err := h.projectUC.GetProject(c.Request().Context(), id, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProjectResponse(project))
}

func (h *ProjectHandler) UpdateProject(c echo.Context) error {
	userID, id, err := ownerAndID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateProjectRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid project input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	project, err := h.projectUC.UpdateProject(c.Request().Context(), &usecase.UpdateProjectInput{
		ID:          id,
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProjectResponse(project))
}

func (h *ProjectHandler) DeleteProject(c echo.Context) error {
	userID, id, err := ownerAndID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.projectUC.DeleteProject(c.Request().Context(), id, userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

func currentUserID(c echo.Context) (uuid.UUID, error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrMissingToken
	}

	return userID, nil
}

func ownerAndID(c echo.Context) (uuid.UUID, uuid.UUID, error) {
	userID, err := currentUserID(c)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}

	id, err := parseID(c)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}

	return userID, id, nil
}
