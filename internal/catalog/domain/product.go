package domain

type UsageCategory string

const (
	UsageMoving    UsageCategory = "moving"
	UsageEcommerce UsageCategory = "ecommerce"
	UsageStorage   UsageCategory = "storage"
	UsageWine      UsageCategory = "wine"
)

// LocalizedText holds the storefront's three display languages.
type LocalizedText struct {
	ZH string `yaml:"zh" json:"zh"`
	JA string `yaml:"ja" json:"ja"`
	EN string `yaml:"en" json:"en"`
}

// In returns the text for the given locale, falling back to Chinese,
// the storefront's primary language.
func (t LocalizedText) In(locale string) string {
	switch locale {
	case "ja":
		return t.JA
	case "en":
		return t.EN
	default:
		return t.ZH
	}
}

type Dimensions struct {
	Length float64 `yaml:"length" json:"length"`
	Width  float64 `yaml:"width" json:"width"`
	Height float64 `yaml:"height" json:"height"`
}

// PriceTier is one quantity bracket of a product's volume pricing.
// MaxQuantity == 0 means the bracket is unbounded above.
type PriceTier struct {
	MinQuantity int64 `yaml:"minQuantity" json:"minQuantity"`
	MaxQuantity int64 `yaml:"maxQuantity,omitempty" json:"maxQuantity,omitempty"`
	Price       int64 `yaml:"price" json:"price"`
}

// Product is a catalog entry. Prices are JPY, which has no subunit.
// Catalog data is loaded once at startup and never mutated.
type Product struct {
	ID               string          `yaml:"id" json:"id"`
	Slug             string          `yaml:"slug" json:"slug"`
	Name             LocalizedText   `yaml:"name" json:"name"`
	Description      LocalizedText   `yaml:"description" json:"description"`
	SizeCode         int             `yaml:"sizeCode" json:"sizeCode"`
	Dimensions       Dimensions      `yaml:"dimensions" json:"dimensions"`
	WeightCapacity   float64         `yaml:"weightCapacity" json:"weightCapacity"`
	Thickness        float64         `yaml:"thickness" json:"thickness"`
	HasHandHoles     bool            `yaml:"hasHandHoles" json:"hasHandHoles"`
	UsageCategories  []UsageCategory `yaml:"usageCategories" json:"usageCategories"`
	Price            int64           `yaml:"price" json:"price"`
	PriceTiers       []PriceTier     `yaml:"priceTiers" json:"priceTiers"`
	MinOrderQuantity int64           `yaml:"minOrderQuantity" json:"minOrderQuantity"`
	MaxOrderQuantity int64           `yaml:"maxOrderQuantity" json:"maxOrderQuantity"`
	IsHot            bool            `yaml:"isHot" json:"isHot"`
	IsNew            bool            `yaml:"isNew" json:"isNew"`
	MainImage        string          `yaml:"mainImage" json:"mainImage"`
	GalleryImages    []string        `yaml:"galleryImages" json:"galleryImages"`
	Material         string          `yaml:"material" json:"material"`
	SuitableFor      string          `yaml:"suitableFor,omitempty" json:"suitableFor,omitempty"`
}

func (p Product) HasUsage(u UsageCategory) bool {
	for _, c := range p.UsageCategories {
		if c == u {
			return true
		}
	}
	return false
}
