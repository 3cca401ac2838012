package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"urbanpilgrim/services/user"
	"urbanpilgrim/utils"
)

var userService user.UserService

// SetUserService injects the user service used by the package-level handlers.
func SetUserService(svc user.UserService) {
	userService = svc
}

// RegisterUserHandler creates an account and signs the user in.
func RegisterUserHandler(c *gin.Context) {
	var input struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=8"`
		Role     string `json:"role"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid registration payload", err.Error())
		return
	}

	resp, err := userService.Register(input.Name, input.Email, input.Password, input.Role)
	if err != nil {
		respondAuthError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// AuthenticateUserHandler verifies credentials and issues a session token.
func AuthenticateUserHandler(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid login payload", err.Error())
		return
	}

	resp, err := userService.Authenticate(input.Email, input.Password)
	if err != nil {
		respondAuthError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetCurrentUserHandler returns the authenticated account.
func GetCurrentUserHandler(c *gin.Context) {
	usr, err := userService.GetUserByID(c.GetString("userID"))
	if err != nil {
		respondAuthError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": usr})
}

// RevokeUserAuthTokenHandler invalidates the caller's session token.
func RevokeUserAuthTokenHandler(c *gin.Context) {
	if err := userService.RevokeAuthToken(c.GetString("userID")); err != nil {
		respondAuthError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "token revoked"})
}

func respondAuthError(c *gin.Context, err error) {
	var aErr user.AuthError
	if errors.As(err, &aErr) {
		utils.JSONError(c, http.StatusUnauthorized, aErr.Message, "")
		return
	}
	utils.JSONError(c, http.StatusInternalServerError, utils.GenericErrorMessage, err.Error())
}
