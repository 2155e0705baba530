package seeder

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/frostbnb/seedctl/internal/synth"
	"github.com/frostbnb/seedctl/internal/vocab"
)

type ConversationRow struct {
	CreatedAt time.Time
}

func (r ConversationRow) values() []any {
	return []any{r.CreatedAt}
}

// BuildConversations synthesizes N conversation shells.
func BuildConversations(rng *rand.Rand, v *vocab.Vocabulary) []ConversationRow {
	p := v.Params
	rows := make([]ConversationRow, 0, p.RowCount)
	for i := 0; i < p.RowCount; i++ {
		rows = append(rows, ConversationRow{
			CreatedAt: synth.Timestamp(rng, p.WindowStart, p.WindowEnd),
		})
	}
	return rows
}

// ConversationRef is a conversation as read back from the database.
type ConversationRef struct {
	ID        int64
	CreatedAt time.Time
}

type MessageRow struct {
	SenderID       int64
	ReceiverID     int64
	ConversationID int64
	Body           string
	SentAt         time.Time
	IsRead         bool
}

func (r MessageRow) values() []any {
	return []any{r.SenderID, r.ReceiverID, r.ConversationID, r.Body, r.SentAt, r.IsRead}
}

// BuildMessages fills every conversation with a 1-15 message thread
// between one guest and one host. Only about 70% of the hosts take part
// in messaging at all. Within a thread the two parties alternate, sent
// times grow strictly from the conversation's creation, and every message
// except the newest is read.
func BuildMessages(rng *rand.Rand, v *vocab.Vocabulary, conversations []ConversationRef, guestIDs, hostIDs []int64) ([]MessageRow, error) {
	if len(conversations) == 0 {
		return nil, fmt.Errorf("conversations table is empty")
	}
	if len(guestIDs) == 0 {
		return nil, fmt.Errorf("no guest accounts available")
	}
	if len(hostIDs) == 0 {
		return nil, fmt.Errorf("no host accounts available")
	}

	sampled := make([]int64, len(hostIDs))
	copy(sampled, hostIDs)
	rng.Shuffle(len(sampled), func(i, j int) { sampled[i], sampled[j] = sampled[j], sampled[i] })
	keep := (len(sampled)*7 + 9) / 10
	if keep == 0 {
		keep = 1
	}
	sampled = sampled[:keep]

	var rows []MessageRow
	for _, conv := range conversations {
		guest := guestIDs[rng.Intn(len(guestIDs))]
		host := sampled[rng.Intn(len(sampled))]

		length := 1 + rng.Intn(15)
		sentAt := conv.CreatedAt
		for i := 0; i < length; i++ {
			sender, receiver := guest, host
			if i%2 == 1 {
				sender, receiver = host, guest
			}
			sentAt = sentAt.Add(time.Duration(1+rng.Intn(300)) * time.Minute)

			isRead := true
			if i == length-1 {
				isRead = rng.Intn(2) == 0
			}
			rows = append(rows, MessageRow{
				SenderID:       sender,
				ReceiverID:     receiver,
				ConversationID: conv.ID,
				Body:           synth.Gibberish(rng, v.Gibberish, 3, 12),
				SentAt:         sentAt,
				IsRead:         isRead,
			})
		}
	}
	return rows, nil
}
