package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskcall/internal/adapter/http/dto"
	"taskcall/internal/adapter/http/mapper"
	"taskcall/internal/adapter/http/middleware"
	"taskcall/internal/adapter/http/validation"
	"taskcall/internal/core/domain"
	"taskcall/internal/core/ports"
	"taskcall/pkg/apierrors"
)

type SubtaskHandler struct {
	subtaskService ports.SubtaskService
}

func NewSubtaskHandler(subtaskService ports.SubtaskService) *SubtaskHandler {
	return &SubtaskHandler{subtaskService: subtaskService}
}

func (h *SubtaskHandler) CreateSubtask(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID, _ := middleware.GetUserID(c)

	taskID, err := strconv.ParseUint(c.Param("task_id"), 10, 64)
	if err != nil || taskID == 0 {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskID, lang),
		)
		return
	}

	var req dto.CreateSubtaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidSubtaskPayload, lang),
		)
		return
	}

	status, err := validation.SubtaskStatus(req.Status)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidSubtaskPayload, lang),
		)
		return
	}

	subtask, err := h.subtaskService.CreateSubtask(c.Request.Context(), userID, taskID, status)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to create subtask", zap.Uint64("task_id", taskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateSubtask, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToSubtaskItem(*subtask))
}

func (h *SubtaskHandler) ListSubtasks(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID, _ := middleware.GetUserID(c)

	var taskID *uint64
	if value := c.Query("task_id"); value != "" {
		parsed, err := strconv.ParseUint(value, 10, 64)
		if err != nil || parsed == 0 {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskID, lang),
			)
			return
		}
		taskID = &parsed
	}

	subtasks, err := h.subtaskService.ListSubtasks(c.Request.Context(), userID, taskID)
	if err != nil {
		zap.L().Error("failed to list subtasks", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListSubtasks, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToSubtaskItems(subtasks))
}

func (h *SubtaskHandler) UpdateSubtask(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID, _ := middleware.GetUserID(c)

	subtaskID, err := strconv.ParseUint(c.Param("subtask_id"), 10, 64)
	if err != nil || subtaskID == 0 {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidSubtaskID, lang),
		)
		return
	}

	var req dto.UpdateSubtaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidSubtaskPayload, lang),
		)
		return
	}

	status, err := validation.SubtaskStatus(req.Status)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidSubtaskPayload, lang),
		)
		return
	}

	subtask, err := h.subtaskService.UpdateSubtask(c.Request.Context(), userID, subtaskID, status)
	if err != nil {
		if errors.Is(err, domain.ErrSubtaskNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgSubtaskNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to update subtask", zap.Uint64("subtask_id", subtaskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUpdateSubtask, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToSubtaskItem(*subtask))
}

func (h *SubtaskHandler) DeleteSubtask(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID, _ := middleware.GetUserID(c)

	subtaskID, err := strconv.ParseUint(c.Param("subtask_id"), 10, 64)
	if err != nil || subtaskID == 0 {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidSubtaskID, lang),
		)
		return
	}

	if err := h.subtaskService.DeleteSubtask(c.Request.Context(), userID, subtaskID); err != nil {
		if errors.Is(err, domain.ErrSubtaskNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgSubtaskNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to delete subtask", zap.Uint64("subtask_id", subtaskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDeleteSubtask, lang),
		)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Subtask deleted successfully"})
}
