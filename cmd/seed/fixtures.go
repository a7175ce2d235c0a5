package main

import (
	"encoding/json"
	"os"
	"strings"

	"directorio/internal/domain/entity"
	"directorio/internal/domain/hours"

	"github.com/pkg/errors"
)

// businessFixture mirrors the public business JSON with plain strings for the tagged fields.
type businessFixture struct {
	Name        string            `json:"name"`
	Category    string            `json:"category"`
	Description string            `json:"description"`
	ImageURL    string            `json:"image_url"`
	Address     string            `json:"address"`
	City        string            `json:"city"`
	State       string            `json:"state"`
	ZipCode     string            `json:"zip_code"`
	Zone        string            `json:"zone"`
	Latitude    float64           `json:"latitude"`
	Longitude   float64           `json:"longitude"`
	Phone       string            `json:"phone"`
	Email       string            `json:"email"`
	Website     string            `json:"website"`
	Rating      *float64          `json:"rating"`
	ReviewCount *int              `json:"review_count"`
	PriceRange  string            `json:"price_range"`
	Hours       map[string]string `json:"hours"`
	Tags        []string          `json:"tags"`
}

func loadFixtures(path string, locale hours.Locale, approved bool) ([]*entity.Business, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read fixtures")
	}

	var fixtures []businessFixture
	if err := json.Unmarshal(data, &fixtures); err != nil {
		return nil, errors.Wrap(err, "failed to parse fixtures")
	}

	businesses := make([]*entity.Business, 0, len(fixtures))
	for i, f := range fixtures {
		b, err := f.toEntity(locale, approved)
		if err != nil {
			return nil, errors.Wrapf(err, "fixture %d (%s)", i, f.Name)
		}
		businesses = append(businesses, b)
	}

	return businesses, nil
}

func (f businessFixture) toEntity(locale hours.Locale, approved bool) (*entity.Business, error) {
	name := strings.TrimSpace(f.Name)
	if name == "" {
		return nil, errors.New("name is required")
	}

	category, ok := entity.ParseCategory(f.Category)
	if !ok {
		return nil, errors.Errorf("unknown category %q", f.Category)
	}

	zone := entity.ZoneCentro
	if strings.TrimSpace(f.Zone) != "" {
		if zone, ok = entity.ParseZone(f.Zone); !ok {
			return nil, errors.Errorf("unknown zone %q", f.Zone)
		}
	}

	var tier *entity.PriceTier
	if f.PriceRange != "" {
		p := entity.PriceTier(f.PriceRange)
		if !p.IsValid() {
			return nil, errors.Errorf("unknown price range %q", f.PriceRange)
		}
		tier = &p
	}

	if f.Rating != nil && (*f.Rating < 0 || *f.Rating > 5) {
		return nil, errors.Errorf("rating %.1f out of range", *f.Rating)
	}

	schedule, err := hours.Normalize(locale, f.Hours)
	if err != nil {
		return nil, errors.Wrap(err, "invalid hours")
	}

	return &entity.Business{
		Name:        name,
		Category:    category,
		Description: strings.TrimSpace(f.Description),
		ImageURL:    f.ImageURL,
		Address:     f.Address,
		City:        f.City,
		State:       f.State,
		ZipCode:     f.ZipCode,
		Zone:        zone,
		Latitude:    f.Latitude,
		Longitude:   f.Longitude,
		Phone:       f.Phone,
		Email:       f.Email,
		Website:     f.Website,
		Rating:      f.Rating,
		ReviewCount: f.ReviewCount,
		PriceTier:   tier,
		Hours:       schedule,
		Tags:        f.Tags,
		IsApproved:  approved,
	}, nil
}
