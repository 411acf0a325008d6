package http

import (
	"strconv"
	"strings"

	"github.com/nekogravitycat/bulletin-board-backend/internal/accesslevel"
	"github.com/nekogravitycat/bulletin-board-backend/internal/pkg/apperror"
)

// GetRequest defines the query parameters of GET /access-level.
type GetRequest struct {
	AccessLevelID string `form:"accessLevelId"`
	Level         string `form:"level"`
}

func (r *GetRequest) Validate() error {
	if strings.TrimSpace(r.AccessLevelID) != "" && strings.TrimSpace(r.Level) != "" {
		return apperror.InvalidArgument("use either accessLevelId or level, not both")
	}
	return nil
}

// ByIDRequest carries the access level id for PUT and DELETE.
type ByIDRequest struct {
	AccessLevelID string `form:"accessLevelId"`
}

// WriteBody is the JSON payload of POST and PUT /access-level.
type WriteBody struct {
	Description string `json:"description"`
}

// parseLevelID converts the raw query value; ok is false when it is empty.
func parseLevelID(raw string) (accesslevel.Level, bool, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false, apperror.InvalidArgument("accessLevelId invalid")
	}
	l, err := accesslevel.ParseLevel(v)
	if err != nil {
		return 0, false, err
	}
	return l, true, nil
}
