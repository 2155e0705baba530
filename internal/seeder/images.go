package seeder

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/frostbnb/seedctl/internal/synth"
	"github.com/frostbnb/seedctl/internal/vocab"
)

type ImageRow struct {
	Mime       string
	StorageKey string
	CreatedAt  time.Time
}

func (r ImageRow) values() []any {
	return []any{r.Mime, r.StorageKey, r.CreatedAt}
}

// BuildImages synthesizes the shared image pool, sized at four images per
// configured row so that both review and listing galleries can draw from
// it without running dry in the common case.
func BuildImages(rng *rand.Rand, v *vocab.Vocabulary) []ImageRow {
	p := v.Params
	rows := make([]ImageRow, 0, p.RowCount*4)
	for i := 0; i < p.RowCount*4; i++ {
		mime := v.ImageMimes[rng.Intn(len(v.ImageMimes))]
		rows = append(rows, ImageRow{
			Mime:       mime,
			StorageKey: synth.StorageKey(rng, mime),
			CreatedAt:  synth.Timestamp(rng, p.WindowStart, p.WindowEnd),
		})
	}
	return rows
}

type ReviewImageRow struct {
	ReviewID int64
	ImageID  int64
}

func (r ReviewImageRow) values() []any {
	return []any{r.ReviewID, r.ImageID}
}

// BuildReviewImages attaches 1-3 photos to the first half of the reviews,
// drawing from the image pool without replacement. It returns the rows and
// the image ids it consumed so the leftover pool can be handed to the
// listing galleries. Attachment stops early if the pool is exhausted.
func BuildReviewImages(rng *rand.Rand, reviewIDs, imageIDs []int64) ([]ReviewImageRow, map[int64]struct{}, error) {
	if len(reviewIDs) == 0 {
		return nil, nil, fmt.Errorf("reviews table is empty")
	}
	if len(imageIDs) == 0 {
		return nil, nil, fmt.Errorf("images table is empty")
	}

	pool := make([]int64, len(imageIDs))
	copy(pool, imageIDs)
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	used := make(map[int64]struct{})
	var rows []ReviewImageRow
	next := 0
	for _, reviewID := range reviewIDs[:len(reviewIDs)/2] {
		if next >= len(pool) {
			break
		}
		n := 1 + rng.Intn(3)
		for k := 0; k < n && next < len(pool); k++ {
			imageID := pool[next]
			next++
			rows = append(rows, ReviewImageRow{ReviewID: reviewID, ImageID: imageID})
			used[imageID] = struct{}{}
		}
	}
	return rows, used, nil
}

type AccommodationImageRow struct {
	AccommodationID int64
	ImageID         int64
	SortOrder       int
	IsCover         bool
	Caption         string
	RoomTag         string
}

func (r AccommodationImageRow) values() []any {
	return []any{r.AccommodationID, r.ImageID, r.SortOrder, r.IsCover, r.Caption, r.RoomTag}
}

// BuildAccommodationImages assigns the images not claimed by reviews to
// randomly chosen listings, with random sort order, cover flag, caption and
// room tag.
func BuildAccommodationImages(rng *rand.Rand, v *vocab.Vocabulary, accommodationIDs, imageIDs []int64, taken map[int64]struct{}) ([]AccommodationImageRow, error) {
	if len(accommodationIDs) == 0 {
		return nil, fmt.Errorf("accommodations table is empty")
	}

	var remaining []int64
	for _, id := range imageIDs {
		if _, ok := taken[id]; !ok {
			remaining = append(remaining, id)
		}
	}
	if len(remaining) == 0 {
		return nil, fmt.Errorf("image pool exhausted before listing galleries")
	}

	rows := make([]AccommodationImageRow, 0, len(remaining))
	for _, imageID := range remaining {
		rows = append(rows, AccommodationImageRow{
			AccommodationID: accommodationIDs[rng.Intn(len(accommodationIDs))],
			ImageID:         imageID,
			SortOrder:       rng.Intn(10),
			IsCover:         rng.Intn(2) == 0,
			Caption:         synth.Gibberish(rng, v.Gibberish, 2, 5),
			RoomTag:         v.RoomTags[rng.Intn(len(v.RoomTags))],
		})
	}
	return rows, nil
}
