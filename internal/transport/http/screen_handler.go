package handlers

import (
	"errors"
	"net/http"

	"learningapp/internal/application/usecase"
	"learningapp/internal/domain"

	"github.com/gin-gonic/gin"
)

type ScreenHandler struct {
	screens *usecase.ScreenManager
}

func NewScreenHandler(sm *usecase.ScreenManager) *ScreenHandler {
	return &ScreenHandler{screens: sm}
}

func (h *ScreenHandler) Mount(c *gin.Context) {
	view := h.screens.Mount(c.Request.Context())
	c.JSON(http.StatusCreated, view)
}

func (h *ScreenHandler) Unmount(c *gin.Context) {
	if err := h.screens.Unmount(c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ScreenHandler) View(c *gin.Context) {
	view, err := h.screens.View(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

type selectBookReq struct {
	BookID string `json:"book_id" binding:"required"`
}

func (h *ScreenHandler) SelectBook(c *gin.Context) {
	var req selectBookReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := h.screens.SelectBook(c.Request.Context(), c.Param("id"), req.BookID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

type toggleChapterReq struct {
	ChapterID string `json:"chapter_id" binding:"required"`
}

func (h *ScreenHandler) ToggleChapter(c *gin.Context) {
	var req toggleChapterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := h.screens.ToggleChapter(c.Request.Context(), c.Param("id"), req.ChapterID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *ScreenHandler) DeselectBook(c *gin.Context) {
	view, err := h.screens.DeselectBook(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *ScreenHandler) respondError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrScreenNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Screen not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
