package repository

import (
	"context"
	"errors"

	"github.com/aaravmahajanofficial/turbokart-storefront/internal/models"
)

var ErrProductNotFound = errors.New("product not found")

type ProductRepository interface {
	GetProductBySlug(ctx context.Context, slug string) (*models.Product, error)
	ListProducts(ctx context.Context) ([]*models.Product, error)
}

// productRepository serves the fixed TurboKart line-up. Returned products are
// copies; callers can modify them freely.
type productRepository struct {
	products []models.Product
}

func NewProductRepo() ProductRepository {
	return &productRepository{products: catalog()}
}

func NewProductRepoWith(products []models.Product) ProductRepository {
	return &productRepository{products: products}
}

func (r *productRepository) GetProductBySlug(_ context.Context, slug string) (*models.Product, error) {
	for i := range r.products {
		if r.products[i].Slug == slug {
			p := cloneProduct(r.products[i])
			return &p, nil
		}
	}

	return nil, ErrProductNotFound
}

func (r *productRepository) ListProducts(_ context.Context) ([]*models.Product, error) {
	out := make([]*models.Product, 0, len(r.products))
	for i := range r.products {
		p := cloneProduct(r.products[i])
		out = append(out, &p)
	}

	return out, nil
}

func cloneProduct(p models.Product) models.Product {
	p.Colors = append([]string(nil), p.Colors...)
	p.Tires = append([]string(nil), p.Tires...)
	p.AddOns = append([]models.AddOn(nil), p.AddOns...)
	p.Gallery = append([]string(nil), p.Gallery...)
	p.Features = append([]string(nil), p.Features...)

	return p
}

func gallery(slug string) []string {
	base := "/images/products/" + slug
	return []string{base + ".jpg", base + "-side.jpg", base + "-action.jpg"}
}

func catalog() []models.Product {
	return []models.Product{
		{
			Slug:          "nighthawk",
			Name:          "Nighthawk",
			Tagline:       "Sleek Entry Model",
			Description:   "The Nighthawk combines sleek design with impressive performance, perfect for beginners and casual riders looking for an exhilarating experience without breaking the bank.",
			Price:         models.Dollars(279),
			OriginalPrice: models.Dollars(559),
			Inventory:     7,
			Specs: models.ProductSpecs{
				MaxSpeed:          "25 mph",
				BatteryLife:       "2 hours",
				Weight:            "65 lbs",
				AgeRecommendation: "12+",
				WeightCapacity:    "220 lbs",
			},
			Colors: []string{"Stealth Black", "Inferno Red", "Ghost White"},
			Tires:  []string{"Standard Grip", "Phantom Drifters"},
			AddOns: []models.AddOn{
				{Name: "LED Underglow Kit", Price: models.Dollars(49)},
				{Name: "Racing Stripes", Price: models.Dollars(29)},
				{Name: "Smartphone Mount", Price: models.Dollars(19)},
			},
			MainImage: "/images/products/nighthawk.jpg",
			Gallery:   gallery("nighthawk"),
			Features: []string{
				"Lightweight aluminum frame",
				"Responsive electric motor",
				"Adjustable seat position",
				"Integrated LED headlights",
				"Dual disc brakes",
			},
		},
		{
			Slug:          "trackhawk",
			Name:          "Trackhawk",
			Tagline:       "Balanced Performance & Handling",
			Description:   "The Trackhawk delivers exceptional balance between raw power and precise handling. Designed for enthusiasts who demand more from their ride without stepping into professional territory.",
			Price:         models.Dollars(399),
			OriginalPrice: models.Dollars(799),
			Inventory:     4,
			Specs: models.ProductSpecs{
				MaxSpeed:          "35 mph",
				BatteryLife:       "3 hours",
				Weight:            "72 lbs",
				AgeRecommendation: "14+",
				WeightCapacity:    "250 lbs",
			},
			Colors: []string{"Stealth Black", "Inferno Red", "Ghost White", "Cobalt Blue"},
			Tires:  []string{"Performance Grip", "Urban Burnouts", "All-Terrain"},
			AddOns: []models.AddOn{
				{Name: "LED Underglow Kit", Price: models.Dollars(49)},
				{Name: "Racing Stripes", Price: models.Dollars(29)},
				{Name: "Performance Spoiler", Price: models.Dollars(59)},
				{Name: "Smartphone Mount", Price: models.Dollars(19)},
			},
			MainImage: "/images/products/trackhawk.jpg",
			Gallery:   gallery("trackhawk"),
			Features: []string{
				"Reinforced steel frame",
				"High-torque electric motor",
				"Adjustable suspension",
				"Advanced LED lighting system",
				"Hydraulic disc brakes",
				"Digital speedometer",
			},
		},
		{
			Slug:          "viper-x",
			Name:          "Viper X",
			Tagline:       "Ultimate Performance Machine",
			Description:   "The Viper X represents the pinnacle of go-kart engineering. Built with premium materials and cutting-edge technology, this limited edition model delivers an unmatched riding experience for true enthusiasts.",
			Price:         models.Dollars(549),
			OriginalPrice: models.Dollars(1099),
			Inventory:     5,
			Specs: models.ProductSpecs{
				MaxSpeed:          "45 mph",
				BatteryLife:       "4 hours",
				Weight:            "78 lbs",
				AgeRecommendation: "16+",
				WeightCapacity:    "280 lbs",
			},
			Colors: []string{"Stealth Black", "Inferno Red", "Ghost White", "Carbon Fiber"},
			Tires:  []string{"Pro Racing", "Urban Burnouts", "All-Terrain Pro"},
			AddOns: []models.AddOn{
				{Name: "Premium LED Underglow Kit", Price: models.Dollars(79)},
				{Name: "Carbon Fiber Accents", Price: models.Dollars(99)},
				{Name: "Performance Spoiler", Price: models.Dollars(59)},
				{Name: "Smartphone Mount", Price: models.Dollars(19)},
				{Name: "Racing Harness", Price: models.Dollars(49)},
			},
			MainImage: "/images/products/viper-x.jpg",
			Gallery:   gallery("viper-x"),
			Features: []string{
				"Carbon fiber reinforced frame",
				"Dual high-output electric motors",
				"Premium adjustable suspension",
				"Advanced LED lighting system with customizable patterns",
				"Performance hydraulic disc brakes",
				"Digital dashboard with Bluetooth connectivity",
				"Selectable driving modes (Eco, Sport, Race)",
			},
		},
	}
}
