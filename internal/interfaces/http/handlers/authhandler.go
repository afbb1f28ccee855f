package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	userdto "github.com/helpdesk-inc/helpdesk/internal/application/user/dto"
	"github.com/helpdesk-inc/helpdesk/internal/application/user/usecases"
	"github.com/helpdesk-inc/helpdesk/internal/shared/constants"
	"github.com/helpdesk-inc/helpdesk/internal/shared/logger"
	"github.com/helpdesk-inc/helpdesk/internal/shared/utils"
)

// CredentialsRequest is accepted by both registration and login, as JSON
// or as a urlencoded form.
type CredentialsRequest struct {
	Username string `json:"username" form:"username" binding:"required" example:"alice"`
	Password string `json:"password" form:"password" binding:"required" example:"s3cret"`
}

type AuthHandler struct {
	registerUC usecases.RegisterWithPasswordExecutor
	loginUC    usecases.LoginWithPasswordExecutor
	logger     logger.Interface
}

func NewAuthHandler(
	registerUC usecases.RegisterWithPasswordExecutor,
	loginUC usecases.LoginWithPasswordExecutor,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		registerUC: registerUC,
		loginUC:    loginUC,
		logger:     logger,
	}
}

// Register creates an account
// @Summary Register a user
// @Description Create an account with a unique, case-sensitive username
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body CredentialsRequest true "Credentials"
// @Success 201 {object} utils.APIResponse{data=userdto.UserDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Debugw("invalid request body for register", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.registerUC.Execute(c.Request.Context(), usecases.RegisterWithPasswordCommand{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "User registered successfully")
}

// Login exchanges credentials for an access token
// @Summary Log in
// @Description Exchange username and password for a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body CredentialsRequest true "Credentials"
// @Success 200 {object} utils.APIResponse{data=userdto.TokenDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginWithPasswordCommand{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetCurrentUser returns the identity carried by the bearer token
// @Summary Current user
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse{data=userdto.UserDTO}
// @Failure 401 {object} utils.APIResponse
// @Router /auth/me [get]
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", &userdto.UserDTO{
		ID:       c.GetUint(constants.ContextKeyUserID),
		Username: c.GetString(constants.ContextKeyUsername),
	})
}
