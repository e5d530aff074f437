package property

import (
	"context"
	"strings"
	"unicode/utf8"

	"webby.dev/backend/internal/pkg/weberr"
)

type Service struct {
	PropertyRepo *Repo
}

func NewService(propertyRepo *Repo) *Service {
	return &Service{
		PropertyRepo: propertyRepo,
	}
}

func (s *Service) ListProperties(ctx context.Context) ([]*Model, error) {
	return s.PropertyRepo.ListProperties(ctx)
}

// normalizeName trims name. A blank result is ErrEmptyName; bytes that are not
// UTF-8 are rejected before they reach the store.
func normalizeName(name string) (string, error) {
	if !utf8.ValidString(name) {
		return "", weberr.ErrInvalidReq.Msg("invalid request: property name must be valid UTF-8")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}
	return name, nil
}

// CreateProperty trims name and inserts it. A blank name yields ErrEmptyName and inserts nothing.
func (s *Service) CreateProperty(ctx context.Context, name string) (*Model, error) {
	name, err := normalizeName(name)
	if err != nil {
		return nil, err
	}
	return s.PropertyRepo.CreateProperty(ctx, name)
}

func (s *Service) DeleteProperty(ctx context.Context, id int64) error {
	return s.PropertyRepo.DeleteProperty(ctx, id)
}

// UpdateProperty follows the same name rule as CreateProperty.
func (s *Service) UpdateProperty(ctx context.Context, id int64, name string) error {
	name, err := normalizeName(name)
	if err != nil {
		return err
	}
	return s.PropertyRepo.UpdateProperty(ctx, id, name)
}

func (s *Service) GetProperty(ctx context.Context, id int64) (*Model, error) {
	return s.PropertyRepo.GetProperty(ctx, id)
}
