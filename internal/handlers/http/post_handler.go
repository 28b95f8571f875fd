package http

import (
	"net/http"

	"alumninet/internal/core/domain"
	"alumninet/internal/core/ports"
	"alumninet/internal/httputil"
	"alumninet/internal/infrastructure/middleware"
	"alumninet/pkg/errors"
	"alumninet/pkg/validation"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postService ports.PostService
	metrics     Metrics
}

func NewPostHandler(postService ports.PostService, metrics Metrics) *PostHandler {
	return &PostHandler{
		postService: postService,
		metrics:     metrics,
	}
}

func (h *PostHandler) SetupRoutes(router *gin.Engine, auth gin.HandlerFunc) {
	api := router.Group("/api/v1/post", auth)
	{
		api.POST("/create", h.Create)
		api.DELETE("/delete/:postId", h.Delete)
		api.POST("/:postId/comment", h.AddComment)
		api.DELETE("/:postId/comment/:commentId", h.DeleteComment)
		api.POST("/like/:postId", h.Like)
		api.DELETE("/unlike/:postId", h.Unlike)
	}
}

type CreatePostRequest struct {
	Content   string   `json:"content"`
	MediaURLs []string `json:"mediaUrls"`
}

func (r *CreatePostRequest) validate() error {
	v := validation.New()
	v.Require("content", r.Content)
	if r.Content != "" {
		v.Length("content", r.Content, 1, 1000)
	}
	v.URLs("mediaUrls", r.MediaURLs)
	return v.Err()
}

func (h *PostHandler) Create(c *gin.Context) {
	principal, ok := middleware.PrincipalID(c)
	if !ok {
		httputil.Abort(c, http.StatusUnauthorized, "Access Denied")
		return
	}

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(errors.NewInvalidInputError("Invalid request body."))
		return
	}

	if err := req.validate(); err != nil {
		c.Error(err)
		return
	}

	post, err := h.postService.CreatePost(c.Request.Context(), principal, req.Content, req.MediaURLs)
	if err != nil {
		c.Error(err)
		return
	}

	h.metrics.RecordPostCreated()
	httputil.Respond(c, http.StatusCreated, "Post created successfully.", post)
}

func (h *PostHandler) Delete(c *gin.Context) {
	principal, ok := middleware.PrincipalID(c)
	if !ok {
		httputil.Abort(c, http.StatusUnauthorized, "Access Denied")
		return
	}

	postID := domain.PostID(c.Param("postId"))
	if err := h.postService.DeletePost(c.Request.Context(), principal, postID); err != nil {
		c.Error(err)
		return
	}

	httputil.RespondMessage(c, http.StatusOK, "Post deleted successfully.")
}

type AddCommentRequest struct {
	Content string `json:"content"`
}

func (r *AddCommentRequest) validate() error {
	v := validation.New()
	v.Require("content", r.Content)
	if r.Content != "" {
		v.Length("content", r.Content, 1, 500)
	}
	return v.Err()
}

func (h *PostHandler) AddComment(c *gin.Context) {
	principal, ok := middleware.PrincipalID(c)
	if !ok {
		httputil.Abort(c, http.StatusUnauthorized, "Access Denied")
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(errors.NewInvalidInputError("Invalid request body."))
		return
	}

	if err := req.validate(); err != nil {
		c.Error(err)
		return
	}

	postID := domain.PostID(c.Param("postId"))
	comment, err := h.postService.AddComment(c.Request.Context(), principal, postID, req.Content)
	if err != nil {
		c.Error(err)
		return
	}

	httputil.Respond(c, http.StatusCreated, "Comment added successfully.", comment)
}

func (h *PostHandler) DeleteComment(c *gin.Context) {
	principal, ok := middleware.PrincipalID(c)
	if !ok {
		httputil.Abort(c, http.StatusUnauthorized, "Access Denied")
		return
	}

	postID := domain.PostID(c.Param("postId"))
	commentID := domain.CommentID(c.Param("commentId"))
	if err := h.postService.DeleteComment(c.Request.Context(), principal, postID, commentID); err != nil {
		c.Error(err)
		return
	}

	httputil.RespondMessage(c, http.StatusOK, "Comment deleted successfully.")
}

func (h *PostHandler) Like(c *gin.Context) {
	principal, ok := middleware.PrincipalID(c)
	if !ok {
		httputil.Abort(c, http.StatusUnauthorized, "Access Denied")
		return
	}

	postID := domain.PostID(c.Param("postId"))
	like, err := h.postService.LikePost(c.Request.Context(), principal, postID)
	if err != nil {
		c.Error(err)
		return
	}

	httputil.Respond(c, http.StatusCreated, "Post liked successfully.", like)
}

func (h *PostHandler) Unlike(c *gin.Context) {
	principal, ok := middleware.PrincipalID(c)
	if !ok {
		httputil.Abort(c, http.StatusUnauthorized, "Access Denied")
		return
	}

	postID := domain.PostID(c.Param("postId"))
	if err := h.postService.UnlikePost(c.Request.Context(), principal, postID); err != nil {
		c.Error(err)
		return
	}

	httputil.RespondMessage(c, http.StatusOK, "Post unliked successfully.")
}
