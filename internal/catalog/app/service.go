package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kuaizhixiang/storefront/internal/catalog/domain"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

// searchSynonyms maps a query term to equivalents in the other storefront
// languages, so "moving" also matches the Chinese and Japanese copy.
var searchSynonyms = map[string][]string{
	"搬家":        {"moving", "引越し", "引越し用"},
	"moving":    {"搬家", "引越し", "引越し用"},
	"引越し":       {"moving", "搬家"},
	"storage":   {"存储", "保管", "書類"},
	"wine":      {"酒", "ワイン", "酒瓶"},
	"ecommerce": {"电商", "EC", "包装"},
}

type Service struct {
	repo ProductRepo
}

func NewService(repo ProductRepo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Product{}, ErrInvalidInput
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) GetProductBySlug(ctx context.Context, slug string) (domain.Product, error) {
	if strings.TrimSpace(slug) == "" {
		return domain.Product{}, ErrInvalidInput
	}
	return s.repo.GetBySlug(ctx, slug)
}

func (s *Service) ListBySize(ctx context.Context, sizeCode int) ([]domain.Product, error) {
	return s.filter(ctx, func(p domain.Product) bool {
		return p.SizeCode == sizeCode
	})
}

func (s *Service) ListByUsage(ctx context.Context, usage domain.UsageCategory) ([]domain.Product, error) {
	return s.filter(ctx, func(p domain.Product) bool {
		return p.HasUsage(usage)
	})
}

func (s *Service) ListHot(ctx context.Context) ([]domain.Product, error) {
	return s.filter(ctx, func(p domain.Product) bool {
		return p.IsHot
	})
}

// Search matches against the localized name, description and the
// dimension string, expanding known synonyms across languages.
func (s *Service) Search(ctx context.Context, query, locale string) ([]domain.Product, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil, ErrInvalidInput
	}

	terms := []string{query}
	terms = append(terms, searchSynonyms[query]...)

	return s.filter(ctx, func(p domain.Product) bool {
		name := strings.ToLower(p.Name.In(locale))
		desc := strings.ToLower(p.Description.In(locale))
		dims := fmt.Sprintf("%g×%g×%g", p.Dimensions.Length, p.Dimensions.Width, p.Dimensions.Height)

		if strings.Contains(dims, query) {
			return true
		}
		for _, term := range terms {
			if strings.Contains(name, term) || strings.Contains(desc, term) {
				return true
			}
		}
		return false
	})
}

func (s *Service) filter(ctx context.Context, keep func(domain.Product) bool) ([]domain.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	var out []domain.Product
	for _, p := range products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out, nil
}
