package seeder

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/frostbnb/seedctl/internal/synth"
	"github.com/frostbnb/seedctl/internal/vocab"
)

const (
	MethodCard   = "card"
	MethodPaypal = "paypal"
)

type PaymentMethodRow struct {
	CustomerID int64
	Type       string
	CreatedAt  time.Time
}

func (r PaymentMethodRow) values() []any {
	return []any{r.CustomerID, r.Type, r.CreatedAt}
}

// BuildPaymentMethods gives every account 1-3 stored payment methods of
// random type.
func BuildPaymentMethods(rng *rand.Rand, v *vocab.Vocabulary, accountIDs []int64) ([]PaymentMethodRow, error) {
	if len(accountIDs) == 0 {
		return nil, fmt.Errorf("accounts table is empty")
	}

	p := v.Params
	var rows []PaymentMethodRow
	for _, accID := range accountIDs {
		n := 1 + rng.Intn(3)
		for k := 0; k < n; k++ {
			rows = append(rows, PaymentMethodRow{
				CustomerID: accID,
				Type:       v.PaymentMethodTypes[rng.Intn(len(v.PaymentMethodTypes))],
				CreatedAt:  synth.Timestamp(rng, p.WindowStart, p.WindowEnd),
			})
		}
	}
	return rows, nil
}

type CreditCardRow struct {
	PaymentMethodID int64
	Brand           string
	Last4           int
	ExpMonth        int
	ExpYear         int
}

func (r CreditCardRow) values() []any {
	return []any{r.PaymentMethodID, r.Brand, r.Last4, r.ExpMonth, r.ExpYear}
}

// BuildCreditCards fills in card details for every payment method of type
// card.
func BuildCreditCards(rng *rand.Rand, v *vocab.Vocabulary, methods []MethodRef) []CreditCardRow {
	var rows []CreditCardRow
	for _, m := range methods {
		if m.Type != MethodCard {
			continue
		}
		rows = append(rows, CreditCardRow{
			PaymentMethodID: m.ID,
			Brand:           v.CardBrands[rng.Intn(len(v.CardBrands))],
			Last4:           1000 + rng.Intn(9000),
			ExpMonth:        1 + rng.Intn(12),
			ExpYear:         2023 + rng.Intn(31),
		})
	}
	return rows
}

type PaypalRow struct {
	PaymentMethodID int64
	PaypalUserID    string
	Email           string
}

func (r PaypalRow) values() []any {
	return []any{r.PaymentMethodID, r.PaypalUserID, r.Email}
}

// BuildPaypal fills in paypal details for every payment method of type
// paypal. Emails are drawn fresh from the syllable pools and deduplicated
// within the batch.
func BuildPaypal(rng *rand.Rand, v *vocab.Vocabulary, methods []MethodRef) ([]PaypalRow, error) {
	taken := make(map[string]struct{})
	var rows []PaypalRow
	for _, m := range methods {
		if m.Type != MethodPaypal {
			continue
		}
		_, _, email, err := synth.UniqueEmail(rng, v, taken)
		if err != nil {
			return nil, fmt.Errorf("paypal email for method %d: %w", m.ID, err)
		}
		taken[email] = struct{}{}
		rows = append(rows, PaypalRow{
			PaymentMethodID: m.ID,
			PaypalUserID:    "PP-" + strings.ToUpper(synth.RandomString(rng, 8)),
			Email:           email,
		})
	}
	return rows, nil
}

// MethodRef is a stored payment method as read back from the database:
// its id, owning customer, and type discriminator.
type MethodRef struct {
	ID         int64
	CustomerID int64
	Type       string
}

type PaymentRow struct {
	CustomerID      int64
	AmountCents     int
	Status          string
	PaymentMethodID int64
}

func (r PaymentRow) values() []any {
	return []any{r.CustomerID, r.AmountCents, r.Status, r.PaymentMethodID}
}

// BuildPayments synthesizes 2N payments, each charged to a random stored
// method and attributed to that method's owner so customer and method
// always agree.
func BuildPayments(rng *rand.Rand, v *vocab.Vocabulary, methods []MethodRef) ([]PaymentRow, error) {
	if len(methods) == 0 {
		return nil, fmt.Errorf("payment_methods table is empty")
	}

	p := v.Params
	rows := make([]PaymentRow, 0, p.RowCount*2)
	for i := 0; i < p.RowCount*2; i++ {
		m := methods[rng.Intn(len(methods))]
		rows = append(rows, PaymentRow{
			CustomerID:      m.CustomerID,
			AmountCents:     (20 + rng.Intn(981)) * 100,
			Status:          v.PaymentStatuses[rng.Intn(len(v.PaymentStatuses))],
			PaymentMethodID: m.ID,
		})
	}
	return rows, nil
}
