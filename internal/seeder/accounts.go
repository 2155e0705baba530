package seeder

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/frostbnb/seedctl/internal/synth"
	"github.com/frostbnb/seedctl/internal/vocab"
)

const (
	RoleGuest = "guest"
	RoleHost  = "host"
	RoleAdmin = "admin"
)

type AccountRow struct {
	Email     string
	FirstName string
	LastName  string
	Role      string
	CreatedAt time.Time
}

func (r AccountRow) values() []any {
	return []any{r.Email, r.FirstName, r.LastName, r.Role, r.CreatedAt}
}

// BuildAccounts synthesizes N accounts with unique emails. The last
// AdminCount rows get role admin; the rest are split guest/host uniformly
// at random, with one row of each forced when the split would otherwise
// leave a role empty (downstream generators need at least one host and one
// guest to exist).
func BuildAccounts(rng *rand.Rand, v *vocab.Vocabulary) ([]AccountRow, error) {
	p := v.Params
	rows := make([]AccountRow, 0, p.RowCount)
	taken := make(map[string]struct{}, p.RowCount)

	nonAdmin := p.RowCount - p.AdminCount
	hosts := 0
	for i := 0; i < p.RowCount; i++ {
		first, last, email, err := synth.UniqueEmail(rng, v, taken)
		if err != nil {
			return nil, fmt.Errorf("account %d: %w", i, err)
		}
		taken[email] = struct{}{}

		role := RoleAdmin
		if i < nonAdmin {
			role = RoleGuest
			if rng.Intn(2) == 0 {
				role = RoleHost
			}
			// keep both roles represented
			if i == nonAdmin-2 && hosts == 0 {
				role = RoleHost
			}
			if i == nonAdmin-1 && hosts == i {
				role = RoleGuest
			}
			if role == RoleHost {
				hosts++
			}
		}

		rows = append(rows, AccountRow{
			Email:     email,
			FirstName: first,
			LastName:  last,
			Role:      role,
			CreatedAt: synth.Timestamp(rng, p.WindowStart, p.WindowEnd),
		})
	}
	return rows, nil
}

type CredentialRow struct {
	AccountID         int64
	PasswordHash      string
	PasswordUpdatedAt time.Time
}

func (r CredentialRow) values() []any {
	return []any{r.AccountID, r.PasswordHash, r.PasswordUpdatedAt}
}

// BuildCredentials produces exactly one row per existing account id: the
// cardinality follows the live accounts table, never the configured row
// count.
func BuildCredentials(rng *rand.Rand, v *vocab.Vocabulary, accountIDs []int64) ([]CredentialRow, error) {
	if len(accountIDs) == 0 {
		return nil, fmt.Errorf("accounts table is empty")
	}

	p := v.Params
	rows := make([]CredentialRow, 0, len(accountIDs))
	for _, id := range accountIDs {
		rows = append(rows, CredentialRow{
			AccountID:         id,
			PasswordHash:      synth.PasswordHash(rng, p.PasswordHashLength),
			PasswordUpdatedAt: synth.Timestamp(rng, p.WindowStart, p.WindowEnd),
		})
	}
	return rows, nil
}
