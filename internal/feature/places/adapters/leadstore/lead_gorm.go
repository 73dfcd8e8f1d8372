// Package leadstore persists scraped leads with GORM.
package leadstore

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/wmastover/labupops-lead-qualifier/internal/feature/places/domain/entity"
)

// LeadModel is the database row for one scraped establishment.
type LeadModel struct {
	ID               uint   `gorm:"primaryKey"`
	PlaceID          string `gorm:"uniqueIndex;size:255;not null"`
	Town             string `gorm:"index;size:255"`
	Name             string `gorm:"size:255"`
	Address          string `gorm:"size:512"`
	Latitude         float64
	Longitude        float64
	Rating           float64
	UserRatingsTotal int
	PriceLevel       int
	Types            string `gorm:"size:512"`
	BusinessStatus   string `gorm:"size:64"`
	PhoneNumber      string `gorm:"size:64"`
	Website          string `gorm:"size:512"`
	OpeningHours     string `gorm:"size:1024"`
	CreatedAt        int64  `gorm:"autoCreateTime"`
	UpdatedAt        int64  `gorm:"autoUpdateTime"`
}

// TableName fixes the table name regardless of pluralization settings.
func (LeadModel) TableName() string { return "leads" }

// LeadStore reads and writes leads.
type LeadStore struct {
	db *gorm.DB
}

// NewLeadStore creates a LeadStore on the given gorm.DB connection.
func NewLeadStore(db *gorm.DB) *LeadStore {
	return &LeadStore{db: db}
}

// SaveAll upserts the places for one town. A re-run of the same town updates
// existing rows in place instead of failing on the place_id unique index.
func (s *LeadStore) SaveAll(ctx context.Context, town string, places []entity.Place) error {
	if len(places) == 0 {
		return nil
	}
	rows := make([]LeadModel, 0, len(places))
	for _, p := range places {
		rows = append(rows, toModel(town, p))
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "place_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"town", "name", "address", "latitude", "longitude", "rating",
			"user_ratings_total", "price_level", "types", "business_status",
			"phone_number", "website", "opening_hours", "updated_at",
		}),
	}).Create(&rows).Error
}

// ListByTown returns the stored leads for a town in insertion order.
func (s *LeadStore) ListByTown(ctx context.Context, town string) ([]entity.Place, error) {
	var rows []LeadModel
	if err := s.db.WithContext(ctx).Where("town = ?", town).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	places := make([]entity.Place, 0, len(rows))
	for _, r := range rows {
		places = append(places, toEntity(r))
	}
	return places, nil
}

func toModel(town string, p entity.Place) LeadModel {
	return LeadModel{
		PlaceID:          p.PlaceID,
		Town:             town,
		Name:             p.Name,
		Address:          p.Address,
		Latitude:         p.Latitude,
		Longitude:        p.Longitude,
		Rating:           p.Rating,
		UserRatingsTotal: p.UserRatingsTotal,
		PriceLevel:       p.PriceLevel,
		Types:            strings.Join(p.Types, ", "),
		BusinessStatus:   p.BusinessStatus,
		PhoneNumber:      p.PhoneNumber,
		Website:          p.Website,
		OpeningHours:     p.OpeningHours,
	}
}

func toEntity(r LeadModel) entity.Place {
	var types []string
	if r.Types != "" {
		types = strings.Split(r.Types, ", ")
	}
	return entity.Place{
		Name:             r.Name,
		PlaceID:          r.PlaceID,
		Address:          r.Address,
		Latitude:         r.Latitude,
		Longitude:        r.Longitude,
		Rating:           r.Rating,
		UserRatingsTotal: r.UserRatingsTotal,
		PriceLevel:       r.PriceLevel,
		Types:            types,
		BusinessStatus:   r.BusinessStatus,
		PhoneNumber:      r.PhoneNumber,
		Website:          r.Website,
		OpeningHours:     r.OpeningHours,
	}
}
