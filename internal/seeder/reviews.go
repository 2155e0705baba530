package seeder

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/frostbnb/seedctl/internal/synth"
	"github.com/frostbnb/seedctl/internal/vocab"
)

type ReviewRow struct {
	AccommodationID int64
	AuthorAccountID int64
	Rating          int
	Description     string
	CreatedAt       time.Time
}

func (r ReviewRow) values() []any {
	return []any{r.AccommodationID, r.AuthorAccountID, r.Rating, r.Description, r.CreatedAt}
}

// BuildReviews synthesizes 2N guest reviews. The text sentiment follows
// the rating: 1-2 stars read as a bad stay, 3-5 as a good one.
func BuildReviews(rng *rand.Rand, v *vocab.Vocabulary, accommodationIDs, guestIDs []int64) ([]ReviewRow, error) {
	if len(accommodationIDs) == 0 {
		return nil, fmt.Errorf("accommodations table is empty")
	}
	if len(guestIDs) == 0 {
		return nil, fmt.Errorf("no guest accounts available")
	}

	p := v.Params
	rows := make([]ReviewRow, 0, p.RowCount*2)
	for i := 0; i < p.RowCount*2; i++ {
		rating := 1 + rng.Intn(5)
		rows = append(rows, ReviewRow{
			AccommodationID: accommodationIDs[rng.Intn(len(accommodationIDs))],
			AuthorAccountID: guestIDs[rng.Intn(len(guestIDs))],
			Rating:          rating,
			Description:     synth.ReviewText(rng, v.Reviews, synth.SentimentForRating(rating)),
			CreatedAt:       synth.Timestamp(rng, p.WindowStart, p.WindowEnd),
		})
	}
	return rows, nil
}
