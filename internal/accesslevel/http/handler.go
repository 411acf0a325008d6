package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nekogravitycat/bulletin-board-backend/internal/accesslevel"
	"github.com/nekogravitycat/bulletin-board-backend/internal/pkg/apperror"
	"github.com/nekogravitycat/bulletin-board-backend/internal/pkg/response"
)

type Handler struct {
	service accesslevel.Service
}

func NewHandler(service accesslevel.Service) *Handler {
	return &Handler{service: service}
}

// Get returns one access level by id or tier name, or all of them.
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

	id, ok, err := parseLevelID(req.AccessLevelID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !ok && req.Level != "" {
		id, err = accesslevel.ParseLevelName(req.Level)
		if err != nil {
			response.Error(c, err)
			return
		}
		ok = true
	}

	if ok {
		a, err := h.service.GetByID(ctx, id)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, http.StatusOK, a, "")
		return
	}

	list, err := h.service.List(ctx)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, http.StatusOK, list, "")
}

func (h *Handler) Create(c *gin.Context) {
	var body WriteBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, apperror.InvalidArgument("invalid request body"))
		return
	}

	a, err := h.service.Create(c.Request.Context(), body.Description)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusCreated, a, "Access level created OK")
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

	a, err := h.service.Update(c.Request.Context(), id, body.Description)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, a, "Access level updated OK")
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

	response.OK(c, http.StatusOK, nil, "Access level deleted OK")
}

func bindID(c *gin.Context) (accesslevel.Level, bool) {
	var req ByIDRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, apperror.InvalidArgument("invalid query parameters"))
		return 0, false
	}

	id, ok, err := parseLevelID(req.AccessLevelID)
	if err != nil {
		response.Error(c, err)
		return 0, false
	}
	if !ok {
		response.Error(c, apperror.InvalidArgument("accessLevelId is required"))
		return 0, false
	}
	return id, true
}
