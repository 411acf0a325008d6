package bulletin

import (
	"context"
	"time"
)

type CreateRequest struct {
	UserID   int64
	Category string
	Message  string
}

type UpdateRequest struct {
	UserID   int64
	Category string
	Message  string
}

// Service is what the HTTP layer uses to work with bulletins.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Bulletin, error)
	GetByID(ctx context.Context, id int64) (*Bulletin, error)
	GetByCategory(ctx context.Context, category string) (*Bulletin, error)
	List(ctx context.Context) ([]*Bulletin, error)
	Update(ctx context.Context, id int64, req UpdateRequest) (*Bulletin, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Bulletin, error) {
	b, err := New(nil, req.UserID, req.Category, req.Message, s.now())
	if err != nil {
		return nil, err
	}
	if err := b.Insert(ctx, s.repo); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*Bulletin, error) {
	return GetByID(ctx, s.repo, id)
}

func (s *service) GetByCategory(ctx context.Context, category string) (*Bulletin, error) {
	return GetByCategory(ctx, s.repo, category)
}

func (s *service) List(ctx context.Context) ([]*Bulletin, error) {
	return GetAll(ctx, s.repo)
}

// Update replaces the editable fields of an existing bulletin.
// The posting time is kept.
func (s *service) Update(ctx context.Context, id int64, req UpdateRequest) (*Bulletin, error) {
	existing, err := GetByID(ctx, s.repo, id)
	if err != nil {
		return nil, err
	}

	b, err := New(existing.BulletinID(), req.UserID, req.Category, req.Message, existing.Timestamp())
	if err != nil {
		return nil, err
	}
	if err := b.Update(ctx, s.repo); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	// Check existence first
	b, err := GetByID(ctx, s.repo, id)
	if err != nil {
		return err
	}
	return b.Delete(ctx, s.repo)
}
