package seeder

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/frostbnb/seedctl/internal/synth"
	"github.com/frostbnb/seedctl/internal/vocab"
)

type NotificationRow struct {
	AccountID int64
	Payload   string
	SentAt    time.Time
}

func (r NotificationRow) values() []any {
	return []any{r.AccountID, r.Payload, r.SentAt}
}

// BuildNotifications synthesizes N notifications addressed to random
// accounts, each carrying a small JSON payload.
func BuildNotifications(rng *rand.Rand, v *vocab.Vocabulary, accountIDs []int64) ([]NotificationRow, error) {
	if len(accountIDs) == 0 {
		return nil, fmt.Errorf("accounts table is empty")
	}

	p := v.Params
	rows := make([]NotificationRow, 0, p.RowCount)
	for i := 0; i < p.RowCount; i++ {
		payload, err := synth.NotificationPayload(rng, v.Gibberish)
		if err != nil {
			return nil, err
		}
		rows = append(rows, NotificationRow{
			AccountID: accountIDs[rng.Intn(len(accountIDs))],
			Payload:   payload,
			SentAt:    synth.Timestamp(rng, p.WindowStart, p.WindowEnd),
		})
	}
	return rows, nil
}
