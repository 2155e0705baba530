package seeder

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/frostbnb/seedctl/internal/synth"
	"github.com/frostbnb/seedctl/internal/vocab"
)

type AccommodationRow struct {
	HostAccountID int64
	Title         string
	AddressID     int64
	PriceCents    int
	IsActive      bool
	CreatedAt     time.Time
}

func (r AccommodationRow) values() []any {
	return []any{r.HostAccountID, r.Title, r.AddressID, r.PriceCents, r.IsActive, r.CreatedAt}
}

// BuildAccommodations synthesizes N listings. Hosts are drawn with
// replacement; addresses are assigned round-robin so every address ends up
// referenced by at least one accommodation.
func BuildAccommodations(rng *rand.Rand, v *vocab.Vocabulary, hostIDs, addressIDs []int64) ([]AccommodationRow, error) {
	if len(hostIDs) == 0 {
		return nil, fmt.Errorf("no host accounts available")
	}
	if len(addressIDs) == 0 {
		return nil, fmt.Errorf("addresses table is empty")
	}

	p := v.Params
	rows := make([]AccommodationRow, 0, p.RowCount)
	for i := 0; i < p.RowCount; i++ {
		rows = append(rows, AccommodationRow{
			HostAccountID: hostIDs[rng.Intn(len(hostIDs))],
			Title:         synth.Title(rng, v.TitleWords),
			AddressID:     addressIDs[i%len(addressIDs)],
			PriceCents:    (50 + rng.Intn(451)) * 100,
			IsActive:      rng.Intn(2) == 0,
			CreatedAt:     synth.Timestamp(rng, p.WindowStart, p.WindowEnd),
		})
	}
	return rows, nil
}

type AmenityRow struct {
	Name     string
	Category string
}

func (r AmenityRow) values() []any {
	return []any{r.Name, r.Category}
}

// BuildAmenities emits the full amenity pool once, so names stay unique.
func BuildAmenities(rng *rand.Rand, v *vocab.Vocabulary) []AmenityRow {
	rows := make([]AmenityRow, 0, len(v.AmenityNames))
	for _, name := range v.AmenityNames {
		rows = append(rows, AmenityRow{
			Name:     name,
			Category: v.AmenityCategories[rng.Intn(len(v.AmenityCategories))],
		})
	}
	return rows
}

type AccommodationAmenityRow struct {
	AccommodationID int64
	AmenityID       int64
}

func (r AccommodationAmenityRow) values() []any {
	return []any{r.AccommodationID, r.AmenityID}
}

// BuildAccommodationAmenities links every accommodation to 1-5 distinct
// amenities.
func BuildAccommodationAmenities(rng *rand.Rand, accommodationIDs, amenityIDs []int64) ([]AccommodationAmenityRow, error) {
	if len(accommodationIDs) == 0 {
		return nil, fmt.Errorf("accommodations table is empty")
	}
	if len(amenityIDs) == 0 {
		return nil, fmt.Errorf("amenities table is empty")
	}

	var rows []AccommodationAmenityRow
	for _, accID := range accommodationIDs {
		n := 1 + rng.Intn(5)
		if n > len(amenityIDs) {
			n = len(amenityIDs)
		}
		for _, idx := range rng.Perm(len(amenityIDs))[:n] {
			rows = append(rows, AccommodationAmenityRow{
				AccommodationID: accID,
				AmenityID:       amenityIDs[idx],
			})
		}
	}
	return rows, nil
}

type CalendarRow struct {
	AccommodationID int64
	Day             time.Time
	IsBlocked       bool
	PriceCents      int
	MinNights       int
}

func (r CalendarRow) values() []any {
	return []any{r.AccommodationID, r.Day, r.IsBlocked, r.PriceCents, r.MinNights}
}

// BuildCalendar generates one availability row per accommodation per day
// over the configured horizon, starting at from (normalized to midnight
// UTC). Roughly one day in ten is blocked.
func BuildCalendar(rng *rand.Rand, v *vocab.Vocabulary, accommodationIDs []int64, from time.Time) ([]CalendarRow, error) {
	if len(accommodationIDs) == 0 {
		return nil, fmt.Errorf("accommodations table is empty")
	}

	start := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	rows := make([]CalendarRow, 0, len(accommodationIDs)*v.Params.CalendarDays)
	for _, accID := range accommodationIDs {
		for d := 0; d < v.Params.CalendarDays; d++ {
			rows = append(rows, CalendarRow{
				AccommodationID: accID,
				Day:             start.AddDate(0, 0, d),
				IsBlocked:       rng.Intn(10) == 0,
				PriceCents:      (50 + rng.Intn(451)) * 100,
				MinNights:       1 + rng.Intn(7),
			})
		}
	}
	return rows, nil
}
