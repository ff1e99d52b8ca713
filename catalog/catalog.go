// Package catalog holds the shop-seeded portion of the cloth catalog and the
// store used to persist it. Seeding goes through the Store interface instead
// of a process-global slice, so the seed set lives in the database like every
// other cloth.
package catalog

import (
	"errors"

	"github.com/kusk24/restyle-api/models"
	"gorm.io/gorm"
)

// Store persists shop catalog items.
type Store interface {
	// Ensure inserts the item unless an identically named shop item already
	// exists. Returns true when a row was created.
	Ensure(item models.Cloth) (bool, error)
}

type gormStore struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) Ensure(item models.Cloth) (bool, error) {
	var existing models.Cloth
	err := s.db.Where("name = ? AND user_id IS NULL", item.Name).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	return true, s.db.Create(&item).Error
}

// Seed writes the built-in shop catalog through the store. It is idempotent:
// items already present are left untouched. Returns the number created.
func Seed(store Store) (int, error) {
	created := 0
	for _, item := range Items() {
		ok, err := store.Ensure(item)
		if err != nil {
			return created, err
		}
		if ok {
			created++
		}
	}
	return created, nil
}

func price(v float64) *float64 { return &v }

// Items returns the shop-seeded catalog. Shop items have no owner and no
// listing status; they are always purchasable.
func Items() []models.Cloth {
	return []models.Cloth{
		{
			Name:        "Classic White Tee",
			Price:       19.99,
			Description: "Heavyweight cotton crew-neck tee.",
			Image:       "/uploads/catalog/classic-white-tee.jpg",
			Category:    models.CategoryTops,
			Sizes:       []string{"S", "M", "L", "XL"},
			Brand:       "ReStyle Basics",
			Rating:      4.6,
			Reviews:     128,
			InStock:     true,
		},
		{
			Name:          "Slim Fit Denim Jeans",
			Price:         49.99,
			OriginalPrice: price(69.99),
			Description:   "Stretch denim, mid-rise, slim through the leg.",
			Image:         "/uploads/catalog/slim-fit-jeans.jpg",
			Category:      models.CategoryBottoms,
			Sizes:         []string{"28", "30", "32", "34", "36"},
			Brand:         "ReStyle Denim",
			Sale:          true,
			Rating:        4.4,
			Reviews:       86,
			InStock:       true,
		},
		{
			Name:        "Floral Midi Dress",
			Price:       59.99,
			Description: "Lightweight viscose midi with a floral print.",
			Image:       "/uploads/catalog/floral-midi-dress.jpg",
			Category:    models.CategoryDresses,
			Sizes:       []string{"XS", "S", "M", "L"},
			Brand:       "Petal & Stem",
			Rating:      4.8,
			Reviews:     203,
			InStock:     true,
		},
		{
			Name:          "Wool Blend Overcoat",
			Price:         129.99,
			OriginalPrice: price(179.99),
			Description:   "Single-breasted overcoat in a warm wool blend.",
			Image:         "/uploads/catalog/wool-overcoat.jpg",
			Category:      models.CategoryOuterwear,
			Sizes:         []string{"S", "M", "L"},
			Brand:         "Northline",
			Sale:          true,
			Rating:        4.7,
			Reviews:       54,
			InStock:       true,
		},
		{
			Name:        "Canvas Low-Top Sneakers",
			Price:       39.99,
			Description: "Vulcanized canvas sneakers with a rubber sole.",
			Image:       "/uploads/catalog/canvas-sneakers.jpg",
			Category:    models.CategoryShoes,
			Sizes:       []string{"39", "40", "41", "42", "43", "44"},
			Brand:       "Pavement",
			Rating:      4.3,
			Reviews:     311,
			InStock:     true,
		},
		{
			Name:        "Leather Belt",
			Price:       24.99,
			Description: "Full-grain leather belt with a matte buckle.",
			Image:       "/uploads/catalog/leather-belt.jpg",
			Category:    models.CategoryAccessories,
			Sizes:       []string{"85", "90", "95", "100"},
			Brand:       "ReStyle Basics",
			Rating:      4.5,
			Reviews:     47,
			InStock:     true,
		},
		{
			Name:        "Ribbed Knit Sweater",
			Price:       44.99,
			Description: "Relaxed ribbed knit in a cotton-wool mix.",
			Image:       "/uploads/catalog/ribbed-sweater.jpg",
			Category:    models.CategoryTops,
			Sizes:       []string{"S", "M", "L", "XL"},
			Brand:       "Northline",
			Rating:      4.2,
			Reviews:     73,
			InStock:     true,
		},
		{
			Name:          "Pleated Tennis Skirt",
			Price:         29.99,
			OriginalPrice: price(39.99),
			Description:   "High-waisted pleated skirt with inner shorts.",
			Image:         "/uploads/catalog/tennis-skirt.jpg",
			Category:      models.CategoryBottoms,
			Sizes:         []string{"XS", "S", "M", "L"},
			Brand:         "Petal & Stem",
			Sale:          true,
			Rating:        4.6,
			Reviews:       159,
			InStock:       true,
		},
		{
			Name:        "Quilted Puffer Jacket",
			Price:       89.99,
			Description: "Water-resistant shell with recycled fill.",
			Image:       "/uploads/catalog/puffer-jacket.jpg",
			Category:    models.CategoryOuterwear,
			Sizes:       []string{"S", "M", "L", "XL"},
			Brand:       "Northline",
			Rating:      4.9,
			Reviews:     98,
			InStock:     true,
		},
		{
			Name:        "Silk Square Scarf",
			Price:       34.99,
			Description: "Printed silk twill scarf, hand-rolled edges.",
			Image:       "/uploads/catalog/silk-scarf.jpg",
			Category:    models.CategoryAccessories,
			Sizes:       []string{"One Size"},
			Brand:       "Petal & Stem",
			Rating:      4.4,
			Reviews:     22,
			InStock:     true,
		},
	}
}
