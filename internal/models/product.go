package models

import "github.com/shopspring/decimal"

type ProductSpecs struct {
	MaxSpeed          string `json:"max_speed"`
	BatteryLife       string `json:"battery_life"`
	Weight            string `json:"weight"`
	AgeRecommendation string `json:"age_recommendation"`
	WeightCapacity    string `json:"weight_capacity"`
}

type Product struct {
	Slug          string       `json:"slug"`
	Name          string       `json:"name"`
	Tagline       string       `json:"tagline"`
	Description   string       `json:"description"`
	Price         Money        `json:"price"`
	OriginalPrice Money        `json:"original_price"`
	Inventory     int          `json:"inventory"`
	Specs         ProductSpecs `json:"specs"`
	Colors        []string     `json:"colors"`
	Tires         []string     `json:"tires"`
	AddOns        []AddOn      `json:"add_ons"`
	MainImage     string       `json:"main_image"`
	Gallery       []string     `json:"gallery_images"`
	Features      []string     `json:"features"`
}

// DiscountPercent is the saving shown on the product page, rounded to the
// nearest percent.
func (p Product) DiscountPercent() int {
	if p.OriginalPrice <= 0 || p.OriginalPrice <= p.Price {
		return 0
	}

	saved := p.OriginalPrice.Decimal().Sub(p.Price.Decimal())

	return int(saved.Mul(decimal.NewFromInt(100)).Div(p.OriginalPrice.Decimal()).Round(0).IntPart())
}

func (p Product) AddOn(name string) (AddOn, bool) {
	for _, a := range p.AddOns {
		if a.Name == name {
			return a, true
		}
	}

	return AddOn{}, false
}
