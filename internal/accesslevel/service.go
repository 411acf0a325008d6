package accesslevel

import (
	"context"
)

type Service interface {
	Create(ctx context.Context, description string) (*AccessLevel, error)
	GetByID(ctx context.Context, id Level) (*AccessLevel, error)
	List(ctx context.Context) ([]*AccessLevel, error)
	Update(ctx context.Context, id Level, description string) (*AccessLevel, error)
	Delete(ctx context.Context, id Level) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, description string) (*AccessLevel, error) {
	a, err := New(nil, description)
	if err != nil {
		return nil, err
	}
	if err := a.Insert(ctx, s.repo); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *service) GetByID(ctx context.Context, id Level) (*AccessLevel, error) {
	return GetByID(ctx, s.repo, id)
}

func (s *service) List(ctx context.Context) ([]*AccessLevel, error) {
	return GetAll(ctx, s.repo)
}

func (s *service) Update(ctx context.Context, id Level, description string) (*AccessLevel, error) {
	existing, err := GetByID(ctx, s.repo, id)
	if err != nil {
		return nil, err
	}
	if err := existing.SetDescription(description); err != nil {
		return nil, err
	}
	if err := existing.Update(ctx, s.repo); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *service) Delete(ctx context.Context, id Level) error {
	existing, err := GetByID(ctx, s.repo, id)
	if err != nil {
		return err
	}
	return existing.Delete(ctx, s.repo)
}
