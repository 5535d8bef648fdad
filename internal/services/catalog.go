package service

import (
	"context"
	"errors"
	"slices"
	"strings"

	appErrors "github.com/aaravmahajanofficial/turbokart-storefront/internal/errors"
	"github.com/aaravmahajanofficial/turbokart-storefront/internal/models"
	repository "github.com/aaravmahajanofficial/turbokart-storefront/internal/repositories"
)

type CatalogService interface {
	ListProducts(ctx context.Context) ([]*models.Product, error)
	GetProduct(ctx context.Context, slug string) (*models.Product, error)
	BuildLineItem(ctx context.Context, req *models.AddCartItemRequest) (models.LineItemInput, error)
}

type catalogService struct {
	repo repository.ProductRepository
}

func NewCatalogService(repo repository.ProductRepository) CatalogService {
	return &catalogService{repo: repo}
}

// ListProducts implements CatalogService.
func (s *catalogService) ListProducts(ctx context.Context) ([]*models.Product, error) {
	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, appErrors.InternalError("Failed to list products").WithError(err)
	}

	return products, nil
}

// GetProduct implements CatalogService.
func (s *catalogService) GetProduct(ctx context.Context, slug string) (*models.Product, error) {
	product, err := s.repo.GetProductBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, appErrors.NotFoundError("Product not found").WithError(err)
		}
		return nil, appErrors.InternalError("Failed to fetch product").WithError(err)
	}

	return product, nil
}

// BuildLineItem prices a product configuration from the catalog. Prices sent
// by the client are never used.
func (s *catalogService) BuildLineItem(ctx context.Context, req *models.AddCartItemRequest) (models.LineItemInput, error) {

	product, err := s.GetProduct(ctx, req.Slug)
	if err != nil {
		return models.LineItemInput{}, err
	}

	if !slices.Contains(product.Colors, req.Color) {
		return models.LineItemInput{}, appErrors.AddValidationError("color", "not offered for "+product.Name)
	}

	if !slices.Contains(product.Tires, req.Tire) {
		return models.LineItemInput{}, appErrors.AddValidationError("tire", "not offered for "+product.Name)
	}

	names := slices.Clone(req.AddOns)
	slices.Sort(names)
	names = slices.Compact(names)

	addOns := make([]models.AddOn, 0, len(names))
	for _, name := range names {
		addOn, ok := product.AddOn(name)
		if !ok {
			return models.LineItemInput{}, appErrors.AddValidationError("add_ons", name+" is not offered for "+product.Name)
		}
		addOns = append(addOns, addOn)
	}

	return models.LineItemInput{
		ID:                LineItemID(product.Slug, req.Color, req.Tire, names),
		Slug:              product.Slug,
		Name:              product.Name,
		UnitPrice:         product.Price,
		OriginalUnitPrice: product.OriginalPrice,
		Image:             product.MainImage,
		Color:             req.Color,
		Tires:             req.Tire,
		AddOns:            addOns,
	}, nil
}

var idEscaper = strings.NewReplacer("%", "%25", "~", "%7E")

// LineItemID derives the cart line id for a configuration. Components are
// escaped before joining, so distinct configurations never collide. addOns
// must already be sorted.
func LineItemID(slug, color, tire string, addOns []string) string {

	parts := make([]string, 0, 3+len(addOns))
	parts = append(parts, idEscaper.Replace(slug), idEscaper.Replace(color), idEscaper.Replace(tire))
	for _, name := range addOns {
		parts = append(parts, idEscaper.Replace(name))
	}

	return strings.Join(parts, "~")
}
