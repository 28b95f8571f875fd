package http

import (
	"net/http"
	"strings"

	"alumninet/internal/core/ports"
	"alumninet/internal/core/services"
	"alumninet/internal/httputil"
	"alumninet/internal/infrastructure/middleware"
	"alumninet/pkg/errors"
	"alumninet/pkg/validation"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService ports.UserService
	authService services.AuthService
	metrics     Metrics
}

func NewUserHandler(userService ports.UserService, authService services.AuthService, metrics Metrics) *UserHandler {
	return &UserHandler{
		userService: userService,
		authService: authService,
		metrics:     metrics,
	}
}

func (h *UserHandler) SetupRoutes(router *gin.Engine, auth gin.HandlerFunc) {
	api := router.Group("/api/v1/user")
	{
		api.POST("/signup", h.Signup)
		api.POST("/signin", h.Signin)
		api.PUT("/update", auth, h.Update)
		api.DELETE("/delete", auth, h.Delete)
	}
}

type SignupRequest struct {
	Username  string `json:"username"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

func (r *SignupRequest) validate() error {
	v := validation.New()
	v.Require("username", r.Username)
	if r.Username != "" {
		v.Username("username", r.Username)
	}
	v.Require("firstname", r.Firstname)
	if r.Firstname != "" {
		v.Length("firstname", r.Firstname, 1, 255)
	}
	v.Require("lastname", r.Lastname)
	if r.Lastname != "" {
		v.Length("lastname", r.Lastname, 1, 255)
	}
	v.Email("email", r.Email)
	v.Require("password", r.Password)
	if r.Password != "" {
		v.Length("password", r.Password, 8, 255)
	}
	return v.Err()
}

func (h *UserHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(errors.NewInvalidInputError("Invalid request body."))
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))

	if err := req.validate(); err != nil {
		c.Error(err)
		return
	}

	user, err := h.userService.Signup(c.Request.Context(), ports.SignupInput{
		Username:  req.Username,
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		c.Error(err)
		return
	}

	token, err := h.authService.GenerateSignupToken(user.ID, user.Role)
	if err != nil {
		c.Error(err)
		return
	}

	h.metrics.RecordSignup()
	httputil.Respond(c, http.StatusCreated, "User created successfully.", gin.H{"token": token})
}

type SigninRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *SigninRequest) validate() error {
	v := validation.New()
	v.Require("username", r.Username)
	v.Require("password", r.Password)
	return v.Err()
}

func (h *UserHandler) Signin(c *gin.Context) {
	var req SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(errors.NewInvalidInputError("Invalid request body."))
		return
	}

	req.Username = strings.TrimSpace(req.Username)

	if err := req.validate(); err != nil {
		c.Error(err)
		return
	}

	user, err := h.userService.Signin(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.metrics.RecordSignin(false)
		c.Error(err)
		return
	}

	token, err := h.authService.GenerateSessionToken(user.ID, user.Role)
	if err != nil {
		c.Error(err)
		return
	}

	h.metrics.RecordSignin(true)
	httputil.Respond(c, http.StatusOK, "Signin successful.", gin.H{"token": token})
}

type UpdateUserRequest struct {
	Username            *string `json:"username"`
	Email               *string `json:"email"`
	Firstname           *string `json:"firstname"`
	Lastname            *string `json:"lastname"`
	Password            *string `json:"password"`
	AvatarURL           *string `json:"avatarUrl"`
	Bio                 *string `json:"bio"`
	Company             *string `json:"company"`
	CompanyLocation     *string `json:"companyLocation"`
	Industry            *string `json:"industry"`
	FieldOfStudy        *string `json:"fieldOfStudy"`
	GraduationStartYear *int    `json:"graduationStartYear"`
	GraduationEndYear   *int    `json:"graduationEndYear"`
	Location            *string `json:"location"`
}

func (r *UpdateUserRequest) validate() error {
	v := validation.New()
	if r.Firstname != nil {
		v.Length("firstname", *r.Firstname, 1, 255)
	}
	if r.Lastname != nil {
		v.Length("lastname", *r.Lastname, 1, 255)
	}
	if r.Password != nil {
		v.Length("password", *r.Password, 8, 255)
	}
	if r.AvatarURL != nil && *r.AvatarURL != "" {
		v.URL("avatarUrl", *r.AvatarURL)
	}
	if r.GraduationStartYear != nil {
		v.Year("graduationStartYear", *r.GraduationStartYear)
	}
	if r.GraduationEndYear != nil {
		v.Year("graduationEndYear", *r.GraduationEndYear)
	}
	return v.Err()
}

func (h *UserHandler) Update(c *gin.Context) {
	principal, ok := middleware.PrincipalID(c)
	if !ok {
		httputil.Abort(c, http.StatusUnauthorized, "Access Denied")
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(errors.NewInvalidInputError("Invalid request body."))
		return
	}

	// Identity fields are immutable after signup.
	if req.Username != nil || req.Email != nil {
		c.Error(errors.NewInvalidInputError("Username and email cannot be changed."))
		return
	}

	if err := req.validate(); err != nil {
		c.Error(err)
		return
	}

	user, err := h.userService.Update(c.Request.Context(), principal, ports.UpdateUserInput{
		Firstname:           req.Firstname,
		Lastname:            req.Lastname,
		Password:            req.Password,
		AvatarURL:           req.AvatarURL,
		Bio:                 req.Bio,
		Company:             req.Company,
		CompanyLocation:     req.CompanyLocation,
		Industry:            req.Industry,
		FieldOfStudy:        req.FieldOfStudy,
		GraduationStartYear: req.GraduationStartYear,
		GraduationEndYear:   req.GraduationEndYear,
		Location:            req.Location,
	})
	if err != nil {
		c.Error(err)
		return
	}

	httputil.Respond(c, http.StatusOK, "User updated successfully.", user)
}

func (h *UserHandler) Delete(c *gin.Context) {
	principal, ok := middleware.PrincipalID(c)
	if !ok {
		httputil.Abort(c, http.StatusUnauthorized, "Access Denied")
		return
	}

	if err := h.userService.Delete(c.Request.Context(), principal); err != nil {
		c.Error(err)
		return
	}

	httputil.RespondMessage(c, http.StatusOK, "User deleted successfully.")
}
