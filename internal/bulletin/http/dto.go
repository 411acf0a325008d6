package http

import (
	"strings"

	"github.com/nekogravitycat/bulletin-board-backend/internal/pkg/apperror"
)

// GetRequest defines the query parameters of GET /bulletin.
// With neither parameter set, every bulletin is returned.
type GetRequest struct {
	BulletinID string `form:"bulletinId"`
	Category   string `form:"category"`
}

// Validate performs custom validation for GetRequest.
func (r *GetRequest) Validate() error {
	if strings.TrimSpace(r.BulletinID) != "" && strings.TrimSpace(r.Category) != "" {
		return apperror.InvalidArgument("use either bulletinId or category, not both")
	}
	return nil
}

// ByIDRequest carries the bulletin id for PUT and DELETE.
type ByIDRequest struct {
	BulletinID string `form:"bulletinId"`
}

// WriteBody is the JSON payload of POST and PUT /bulletin.
// Field rules are enforced by the bulletin entity.
type WriteBody struct {
	UserID   int64  `json:"userId"`
	Category string `json:"category"`
	Message  string `json:"message"`
}
