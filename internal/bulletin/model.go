package bulletin

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/nekogravitycat/bulletin-board-backend/internal/pkg/apperror"
	"github.com/nekogravitycat/bulletin-board-backend/internal/pkg/sanitize"
)

var (
	ErrNotFound = apperror.Persistence(http.StatusNotFound, "bulletin not found", nil)
	ErrExists   = apperror.Persistence(http.StatusConflict, "existing bulletin", nil)
	ErrNoDelete = apperror.Persistence(http.StatusBadRequest, "unable to delete a bulletin that does not exist", nil)
	ErrNoUpdate = apperror.Persistence(http.StatusBadRequest, "unable to update a bulletin that does not exist", nil)
)

// Bulletin is a single message posted to the board under a category.
// The zero value is not valid; use New.
type Bulletin struct {
	id        *int64 // nil until the store assigns one
	userID    int64
	category  string
	message   string
	timestamp time.Time
}

// Snapshot is a copy of a bulletin's fields, used for serialization.
type Snapshot struct {
	BulletinID *int64    `json:"bulletinId"`
	UserID     int64     `json:"userId"`
	Category   string    `json:"category"`
	Message    string    `json:"message"`
	Timestamp  time.Time `json:"timestamp"`
}

// New builds a validated bulletin. A nil id means it has never been persisted.
// The first failing field is reported with its message and kind.
func New(id *int64, userID int64, category, message string, timestamp time.Time) (*Bulletin, error) {
	b := &Bulletin{}
	if err := b.SetBulletinID(id); err != nil {
		return nil, err
	}
	if err := b.SetUserID(userID); err != nil {
		return nil, err
	}
	if err := b.SetCategory(category); err != nil {
		return nil, err
	}
	if err := b.SetMessage(message); err != nil {
		return nil, err
	}
	if err := b.SetTimestamp(timestamp); err != nil {
		return nil, err
	}
	return b, nil
}

// ParseBulletinID converts a raw request value to a bulletin id.
// An empty string yields nil.
func ParseBulletinID(raw string) (*int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return nil, apperror.InvalidArgument("bulletinId invalid")
	}
	return &id, nil
}

// BulletinID returns the store-assigned id, or nil for an unpersisted bulletin.
func (b *Bulletin) BulletinID() *int64 {
	if b.id == nil {
		return nil
	}
	id := *b.id
	return &id
}

// SetBulletinID accepts nil or a positive id. Once assigned, the id cannot change.
func (b *Bulletin) SetBulletinID(id *int64) error {
	if id == nil {
		if b.id != nil {
			return apperror.InvalidArgument("bulletinId cannot be cleared once assigned")
		}
		return nil
	}
	if *id < 1 {
		return apperror.InvalidArgument("bulletinId invalid")
	}
	if b.id != nil && *b.id != *id {
		return apperror.InvalidArgument("bulletinId cannot be changed once assigned")
	}
	v := *id
	b.id = &v
	return nil
}

func (b *Bulletin) UserID() int64 { return b.userID }

func (b *Bulletin) SetUserID(userID int64) error {
	if userID < 1 {
		return apperror.InvalidArgument("userId invalid")
	}
	b.userID = userID
	return nil
}

func (b *Bulletin) Category() string { return b.category }

// SetCategory sanitizes the value and requires 1 to 32 characters.
func (b *Bulletin) SetCategory(category string) error {
	category = sanitize.String(category)
	if category == "" {
		return apperror.InvalidArgument("category invalid")
	}
	if sanitize.Length(category) > sanitize.MaxShortText {
		return apperror.Range("category name too large")
	}
	b.category = category
	return nil
}

func (b *Bulletin) Message() string { return b.message }

// SetMessage sanitizes the value and requires it to be non-empty.
func (b *Bulletin) SetMessage(message string) error {
	message = sanitize.String(message)
	if message == "" {
		return apperror.InvalidArgument("message invalid")
	}
	b.message = message
	return nil
}

func (b *Bulletin) Timestamp() time.Time { return b.timestamp }

func (b *Bulletin) SetTimestamp(ts time.Time) error {
	if ts.IsZero() {
		return apperror.InvalidArgument("timestamp invalid")
	}
	b.timestamp = ts
	return nil
}

// Snapshot returns a copy of the current field values.
func (b *Bulletin) Snapshot() Snapshot {
	return Snapshot{
		BulletinID: b.BulletinID(),
		UserID:     b.userID,
		Category:   b.category,
		Message:    b.message,
		Timestamp:  b.timestamp,
	}
}

func (b *Bulletin) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.Snapshot())
}
