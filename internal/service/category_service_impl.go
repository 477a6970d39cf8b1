package service

import (
	"context"
	"time"

	"github.com/albertocester96/programma-manutenzioni/internal/domain"
	"github.com/albertocester96/programma-manutenzioni/internal/repository"
	"github.com/google/uuid"
)

type categoryService struct {
	categories repository.CategoryRepo
}

func NewCategoryService(categories repository.CategoryRepo) CategoryService {
	return &categoryService{categories: categories}
}

func (s *categoryService) Create(ctx context.Context, c *domain.Category) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now
	if err := c.Validate(); err != nil {
		return err
	}
	return s.categories.Create(ctx, c)
}

func (s *categoryService) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	return s.categories.GetByID(ctx, id)
}

// List returns all categories, or only those of type t when t is non-empty.
func (s *categoryService) List(ctx context.Context, t domain.CategoryType) ([]*domain.Category, error) {
	if t == "" {
		return s.categories.List(ctx)
	}
	if !domain.ValidCategoryTypes[string(t)] {
		return nil, &domain.ValidationError{Field: "type", Msg: "unknown category type " + string(t)}
	}
	return s.categories.ListByType(ctx, t)
}

func (s *categoryService) Delete(ctx context.Context, id string) error {
	return s.categories.Delete(ctx, id)
}
