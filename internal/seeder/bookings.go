package seeder

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/frostbnb/seedctl/internal/synth"
	"github.com/frostbnb/seedctl/internal/vocab"
)

type BookingRow struct {
	GuestAccountID  int64
	AccommodationID int64
	StartDate       time.Time
	EndDate         time.Time
	PaymentID       any
	Status          string
	CreatedAt       time.Time
}

func (r BookingRow) values() []any {
	return []any{r.GuestAccountID, r.AccommodationID, r.StartDate, r.EndDate, r.PaymentID, r.Status, r.CreatedAt}
}

// BuildBookings synthesizes 2N stays of 1-14 nights. Roughly four out of
// five reference a payment; the rest are unpaid (pending or cancelled
// before charge) and carry a NULL payment id.
func BuildBookings(rng *rand.Rand, v *vocab.Vocabulary, guestIDs, accommodationIDs, paymentIDs []int64) ([]BookingRow, error) {
	if len(guestIDs) == 0 {
		return nil, fmt.Errorf("no guest accounts available")
	}
	if len(accommodationIDs) == 0 {
		return nil, fmt.Errorf("accommodations table is empty")
	}
	if len(paymentIDs) == 0 {
		return nil, fmt.Errorf("payments table is empty")
	}

	p := v.Params
	rows := make([]BookingRow, 0, p.RowCount*2)
	for i := 0; i < p.RowCount*2; i++ {
		created := synth.Timestamp(rng, p.WindowStart, p.WindowEnd)
		start := time.Date(created.Year(), created.Month(), created.Day(), 0, 0, 0, 0, time.UTC).
			AddDate(0, 0, 1+rng.Intn(60))
		end := start.AddDate(0, 0, 1+rng.Intn(14))

		var paymentID any
		if rng.Intn(10) < 8 {
			paymentID = paymentIDs[rng.Intn(len(paymentIDs))]
		}
		rows = append(rows, BookingRow{
			GuestAccountID:  guestIDs[rng.Intn(len(guestIDs))],
			AccommodationID: accommodationIDs[rng.Intn(len(accommodationIDs))],
			StartDate:       start,
			EndDate:         end,
			PaymentID:       paymentID,
			Status:          v.BookingStatuses[rng.Intn(len(v.BookingStatuses))],
			CreatedAt:       created,
		})
	}
	return rows, nil
}

type PayoutAccountRow struct {
	HostAccountID int64
	Type          string
	IsDefault     bool
}

func (r PayoutAccountRow) values() []any {
	return []any{r.HostAccountID, r.Type, r.IsDefault}
}

// BuildPayoutAccounts gives every host 1-2 payout destinations; the first
// one per host is the default.
func BuildPayoutAccounts(rng *rand.Rand, v *vocab.Vocabulary, hostIDs []int64) ([]PayoutAccountRow, error) {
	if len(hostIDs) == 0 {
		return nil, fmt.Errorf("no host accounts available")
	}

	var rows []PayoutAccountRow
	for _, hostID := range hostIDs {
		n := 1 + rng.Intn(2)
		for k := 0; k < n; k++ {
			rows = append(rows, PayoutAccountRow{
				HostAccountID: hostID,
				Type:          v.PayoutAccountTypes[rng.Intn(len(v.PayoutAccountTypes))],
				IsDefault:     k == 0,
			})
		}
	}
	return rows, nil
}

// PayoutAccountRef is a payout destination as read back from the database.
type PayoutAccountRef struct {
	ID            int64
	HostAccountID int64
}

type PayoutRow struct {
	HostAccountID   int64
	PayoutAccountID int64
	BookingID       int64
	AmountCents     int
	Currency        string
	Status          string
}

func (r PayoutRow) values() []any {
	return []any{r.HostAccountID, r.PayoutAccountID, r.BookingID, r.AmountCents, r.Currency, r.Status}
}

// BuildPayouts synthesizes N payouts, each tied to a random payout account
// and attributed to that account's host.
func BuildPayouts(rng *rand.Rand, v *vocab.Vocabulary, accounts []PayoutAccountRef, bookingIDs []int64) ([]PayoutRow, error) {
	if len(accounts) == 0 {
		return nil, fmt.Errorf("payout_accounts table is empty")
	}
	if len(bookingIDs) == 0 {
		return nil, fmt.Errorf("bookings table is empty")
	}

	p := v.Params
	rows := make([]PayoutRow, 0, p.RowCount)
	for i := 0; i < p.RowCount; i++ {
		acc := accounts[rng.Intn(len(accounts))]
		rows = append(rows, PayoutRow{
			HostAccountID:   acc.HostAccountID,
			PayoutAccountID: acc.ID,
			BookingID:       bookingIDs[rng.Intn(len(bookingIDs))],
			AmountCents:     (20 + rng.Intn(981)) * 100,
			Currency:        v.Currencies[rng.Intn(len(v.Currencies))],
			Status:          v.PayoutStatuses[rng.Intn(len(v.PayoutStatuses))],
		})
	}
	return rows, nil
}
