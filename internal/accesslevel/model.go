package accesslevel

import (
	"encoding/json"
	"net/http"

	"github.com/nekogravitycat/bulletin-board-backend/internal/pkg/apperror"
	"github.com/nekogravitycat/bulletin-board-backend/internal/pkg/sanitize"
)

var (
	ErrNotFound         = apperror.Persistence(http.StatusNotFound, "access level not found", nil)
	ErrExists           = apperror.Persistence(http.StatusConflict, "existing access level", nil)
	ErrNoDelete         = apperror.Persistence(http.StatusBadRequest, "unable to delete an access level that does not exist", nil)
	ErrNoUpdate         = apperror.Persistence(http.StatusBadRequest, "unable to update an access level that does not exist", nil)
	ErrDescriptionTaken = apperror.Persistence(http.StatusConflict, "description already used", nil)
	ErrNoFreeLevel      = apperror.Persistence(http.StatusConflict, "every access level is already defined", nil)
)

// AccessLevel pairs a Level with a human readable description.
type AccessLevel struct {
	id          *Level // nil until the store assigns one
	description string
}

// Snapshot is a copy of an access level's fields, used for serialization.
type Snapshot struct {
	AccessLevelID *Level `json:"accessLevelId"`
	Description   string `json:"description"`
}

// New builds a validated access level. A nil id means it has never been persisted.
func New(id *Level, description string) (*AccessLevel, error) {
	a := &AccessLevel{}
	if err := a.SetAccessLevelID(id); err != nil {
		return nil, err
	}
	if err := a.SetDescription(description); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *AccessLevel) AccessLevelID() *Level {
	if a.id == nil {
		return nil
	}
	l := *a.id
	return &l
}

// SetAccessLevelID accepts nil or a defined Level.
func (a *AccessLevel) SetAccessLevelID(id *Level) error {
	if id == nil {
		a.id = nil
		return nil
	}
	if !id.Valid() {
		return apperror.InvalidArgument("accessLevelId invalid")
	}
	l := *id
	a.id = &l
	return nil
}

func (a *AccessLevel) Description() string { return a.description }

// SetDescription sanitizes the value and requires 1 to 32 characters.
func (a *AccessLevel) SetDescription(description string) error {
	description = sanitize.String(description)
	if description == "" {
		return apperror.InvalidArgument("description is invalid")
	}
	if sanitize.Length(description) > sanitize.MaxShortText {
		return apperror.Range("description too large")
	}
	a.description = description
	return nil
}

func (a *AccessLevel) Snapshot() Snapshot {
	return Snapshot{
		AccessLevelID: a.AccessLevelID(),
		Description:   a.description,
	}
}

func (a *AccessLevel) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Snapshot())
}
