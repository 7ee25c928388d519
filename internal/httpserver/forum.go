package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"dollshop-backend/internal/service/forum"
)

func writePostHandler(svc *forum.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in forum.PostInput
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, err)
			return
		}
		p, err := svc.WritePost(c.Request.Context(), currentUser(c), in)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, p)
	}
}

func listPostsHandler(svc *forum.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		boardID, ok := paramID(c, "boardId")
		if !ok {
			return
		}
		posts, err := svc.ListPosts(c.Request.Context(), boardID)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, posts)
	}
}

func pagePostsHandler(svc *forum.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		boardID, ok := paramID(c, "boardId")
		if !ok {
			return
		}
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
		posts, err := svc.PagePosts(c.Request.Context(), boardID, page, size)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, posts)
	}
}

// viewPostHandler serves one post. Secret posts take the password as a
// query parameter.
func viewPostHandler(svc *forum.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}
		p, err := svc.ViewPost(c.Request.Context(), id, currentUser(c), c.Query("password"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

func updatePostHandler(svc *forum.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}
		var in forum.PostInput
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, err)
			return
		}
		p, err := svc.UpdatePost(c.Request.Context(), id, currentUser(c), in)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

func deletePostHandler(svc *forum.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}
		if err := svc.DeletePost(c.Request.Context(), id, currentUser(c)); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func writeCommentHandler(svc *forum.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in forum.CommentInput
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, err)
			return
		}
		cm, err := svc.WriteComment(c.Request.Context(), currentUser(c), in)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, cm)
	}
}

func listCommentsHandler(svc *forum.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		postID, ok := paramID(c, "postId")
		if !ok {
			return
		}
		comments, err := svc.ListComments(c.Request.Context(), postID)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, comments)
	}
}

func getCommentHandler(svc *forum.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}
		cm, err := svc.GetComment(c.Request.Context(), id)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, cm)
	}
}

func updateCommentHandler(svc *forum.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}
		var in struct {
			Content string `json:"content" binding:"required"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, err)
			return
		}
		cm, err := svc.UpdateComment(c.Request.Context(), id, currentUser(c), in.Content)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, cm)
	}
}

func deleteCommentHandler(svc *forum.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}
		if err := svc.DeleteComment(c.Request.Context(), id, currentUser(c)); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
