package web

import (
	"mime"
	"net/http"
	"path"

	"github.com/gin-gonic/gin"

	"github.com/topgunprogrammer/DocChat-AI/internal/core/domain"
	"github.com/topgunprogrammer/DocChat-AI/internal/core/ports/driving"
)

type handler struct {
	chat      driving.ChatService
	documents driving.DocumentService
	uploads   driving.UploadService
}

type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type urlResponse struct {
	URL string `json:"url"`
}

type textResponse struct {
	Text string `json:"text"`
}

// chatRequest is a pre-assembled conversation.
type chatRequest struct {
	Messages []domain.Message `json:"messages"`
}

// turnRequest is a new user message with the prior conversation.
type turnRequest struct {
	Messages []domain.Message `json:"messages"`
	Text     string           `json:"text"`
}

func (h *handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, healthResponse{Status: "ok", Message: "Server is running"})
}

func (h *handler) upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		badRequest(c, "No file uploaded")
		return
	}
	opened, err := file.Open()
	if err != nil {
		badRequest(c, "Failed to read uploaded file")
		return
	}
	defer opened.Close()

	upload, err := h.uploads.Upload(
		c.Request.Context(),
		file.Filename,
		opened,
		file.Size,
		file.Header.Get("Content-Type"),
	)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, upload)
}

func (h *handler) documentURL(c *gin.Context) {
	url, err := h.uploads.SignedURL(c.Request.Context(), c.Param("key"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, urlResponse{URL: url})
}

func (h *handler) documentText(c *gin.Context) {
	text, err := h.documents.GetText(c.Request.Context(), c.Param("key"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, textResponse{Text: text})
}

func (h *handler) file(c *gin.Context) {
	key := c.Param("key")
	data, err := h.uploads.Download(c.Request.Context(), key)
	if err != nil {
		handleError(c, err)
		return
	}
	contentType := mime.TypeByExtension(path.Ext(key))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Data(http.StatusOK, contentType, data)
}

// completion answers a pre-assembled conversation without document lookup.
func (h *handler) completion(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Messages) == 0 {
		badRequest(c, "Messages are required")
		return
	}
	reply, err := h.chat.Complete(c.Request.Context(), req.Messages)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, reply)
}

func (h *handler) documentChat(c *gin.Context) {
	var req turnRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Text == "" {
		badRequest(c, "Text is required")
		return
	}
	key := c.Param("key")
	reply, err := h.chat.HandleTurn(c.Request.Context(), &key, req.Messages, req.Text)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, reply)
}

func (h *handler) summarize(c *gin.Context) {
	key := c.Param("key")
	reply, err := h.chat.Summarize(c.Request.Context(), &key)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, reply)
}
