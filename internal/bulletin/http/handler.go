package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nekogravitycat/bulletin-board-backend/internal/bulletin"
	"github.com/nekogravitycat/bulletin-board-backend/internal/pkg/apperror"
	"github.com/nekogravitycat/bulletin-board-backend/internal/pkg/response"
)

type Handler struct {
	service bulletin.Service
}

func NewHandler(service bulletin.Service) *Handler {
	return &Handler{service: service}
}

// Get returns one bulletin by id, the first bulletin of a category, or all bulletins.
func (h *Handler) Get(c *gin.Context) {
	var req GetRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, apperror.InvalidArgument("invalid query parameters"))
		return
	}
	if err := req.Validate(); err != nil {
		response.Error(c, err)
		return
	}

	ctx := c.Request.Context()

	id, err := bulletin.ParseBulletinID(req.BulletinID)
	if err != nil {
		response.Error(c, err)
		return
	}

	switch {
	case id != nil:
		b, err := h.service.GetByID(ctx, *id)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, http.StatusOK, b, "")
	case req.Category != "":
		b, err := h.service.GetByCategory(ctx, req.Category)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, http.StatusOK, b, "")
	default:
		list, err := h.service.List(ctx)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, http.StatusOK, list, "")
	}
}

func (h *Handler) Create(c *gin.Context) {
	var body WriteBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, apperror.InvalidArgument("invalid request body"))
		return
	}

	req := bulletin.CreateRequest{
		UserID:   body.UserID,
		Category: body.Category,
		Message:  body.Message,
	}

	b, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusCreated, b, "Bulletin created OK")
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	var body WriteBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, apperror.InvalidArgument("invalid request body"))
		return
	}

	req := bulletin.UpdateRequest{
		UserID:   body.UserID,
		Category: body.Category,
		Message:  body.Message,
	}

	b, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, b, "Bulletin updated OK")
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, nil, "Bulletin deleted OK")
}

// bindID reads the required bulletinId query parameter, writing the error
// response itself when it is missing or malformed.
func bindID(c *gin.Context) (int64, bool) {
	var req ByIDRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, apperror.InvalidArgument("invalid query parameters"))
		return 0, false
	}

	id, err := bulletin.ParseBulletinID(req.BulletinID)
	if err != nil {
		response.Error(c, err)
		return 0, false
	}
	if id == nil {
		response.Error(c, apperror.InvalidArgument("bulletinId is required"))
		return 0, false
	}
	return *id, true
}
