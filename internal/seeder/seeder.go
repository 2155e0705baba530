// Package seeder generates the synthetic dataset. Pure Build functions
// produce row slices from a randomness source and the vocabulary; the
// Seeder wires them to the datastore in dependency order.
package seeder

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/fatih/color"

	"github.com/frostbnb/seedctl/internal/database"
	"github.com/frostbnb/seedctl/internal/schema"
	"github.com/frostbnb/seedctl/internal/vocab"
)

// Seeder replaces the contents of every registered table with freshly
// generated rows. A run is destructive and idempotent: the tables end up
// at their target cardinalities no matter what they held before.
type Seeder struct {
	store database.Datastore
	vocab *vocab.Vocabulary
	rng   *rand.Rand

	// image ids claimed by review attachments within the current run, so
	// the listing galleries only consume the remainder of the pool
	takenImages map[int64]struct{}
}

func New(store database.Datastore, v *vocab.Vocabulary, seed int64) *Seeder {
	return &Seeder{
		store: store,
		vocab: v,
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// Run clears and repopulates all tables in dependency order.
func (s *Seeder) Run(ctx context.Context) error {
	order, err := NewDependencyGraph(schema.Tables).BuildInsertionOrder()
	if err != nil {
		return fmt.Errorf("resolve insertion order: %w", err)
	}

	s.takenImages = nil

	generators := map[string]func(context.Context) error{
		"accounts":                s.seedAccounts,
		"credentials":             s.seedCredentials,
		"addresses":               s.seedAddresses,
		"amenities":               s.seedAmenities,
		"accommodations":          s.seedAccommodations,
		"accommodation_amenities": s.seedAccommodationAmenities,
		"accommodation_calendar":  s.seedCalendar,
		"images":                  s.seedImages,
		"payment_methods":         s.seedPaymentMethods,
		"credit_cards":            s.seedCreditCards,
		"paypal":                  s.seedPaypal,
		"payments":                s.seedPayments,
		"bookings":                s.seedBookings,
		"payout_accounts":         s.seedPayoutAccounts,
		"payouts":                 s.seedPayouts,
		"reviews":                 s.seedReviews,
		"review_images":           s.seedReviewImages,
		"accommodation_images":    s.seedAccommodationImages,
		"conversations":           s.seedConversations,
		"messages":                s.seedMessages,
		"notifications":           s.seedNotifications,
	}

	start := time.Now()
	for _, table := range order {
		gen, ok := generators[table]
		if !ok {
			return fmt.Errorf("no generator registered for table: %s", table)
		}
		if err := gen(ctx); err != nil {
			return fmt.Errorf("seed %s: %w", table, err)
		}
		color.Green("✓ %s seeded", table)
	}
	color.Cyan("🎄 Seeded %d tables in %s", len(order), time.Since(start).Round(time.Millisecond))
	return nil
}

// replace clears a table and inserts the given rows.
func (s *Seeder) replace(ctx context.Context, table string, rows [][]any) error {
	if err := s.store.ClearTable(ctx, table); err != nil {
		return fmt.Errorf("clear: %w", err)
	}
	if err := s.store.InsertRows(ctx, table, rows); err != nil {
		return fmt.Errorf("insert: %w", err)
	}
	return nil
}

func (s *Seeder) seedAccounts(ctx context.Context) error {
	rows, err := BuildAccounts(s.rng, s.vocab)
	if err != nil {
		return err
	}
	return s.replace(ctx, "accounts", values(rows))
}

func (s *Seeder) seedCredentials(ctx context.Context) error {
	accountIDs, err := s.store.FetchIDs(ctx, "accounts", "")
	if err != nil {
		return err
	}
	rows, err := BuildCredentials(s.rng, s.vocab, accountIDs)
	if err != nil {
		return err
	}
	return s.replace(ctx, "credentials", values(rows))
}

func (s *Seeder) seedAddresses(ctx context.Context) error {
	return s.replace(ctx, "addresses", values(BuildAddresses(s.rng, s.vocab)))
}

func (s *Seeder) seedAmenities(ctx context.Context) error {
	return s.replace(ctx, "amenities", values(BuildAmenities(s.rng, s.vocab)))
}

func (s *Seeder) seedAccommodations(ctx context.Context) error {
	hostIDs, err := s.store.FetchIDs(ctx, "accounts", "role = 'host'")
	if err != nil {
		return err
	}
	addressIDs, err := s.store.FetchIDs(ctx, "addresses", "")
	if err != nil {
		return err
	}
	rows, err := BuildAccommodations(s.rng, s.vocab, hostIDs, addressIDs)
	if err != nil {
		return err
	}
	return s.replace(ctx, "accommodations", values(rows))
}

func (s *Seeder) seedAccommodationAmenities(ctx context.Context) error {
	accommodationIDs, err := s.store.FetchIDs(ctx, "accommodations", "")
	if err != nil {
		return err
	}
	amenityIDs, err := s.store.FetchIDs(ctx, "amenities", "")
	if err != nil {
		return err
	}
	rows, err := BuildAccommodationAmenities(s.rng, accommodationIDs, amenityIDs)
	if err != nil {
		return err
	}
	return s.replace(ctx, "accommodation_amenities", values(rows))
}

func (s *Seeder) seedCalendar(ctx context.Context) error {
	accommodationIDs, err := s.store.FetchIDs(ctx, "accommodations", "")
	if err != nil {
		return err
	}
	rows, err := BuildCalendar(s.rng, s.vocab, accommodationIDs, time.Now().UTC())
	if err != nil {
		return err
	}
	return s.replace(ctx, "accommodation_calendar", values(rows))
}

func (s *Seeder) seedImages(ctx context.Context) error {
	return s.replace(ctx, "images", values(BuildImages(s.rng, s.vocab)))
}

func (s *Seeder) seedPaymentMethods(ctx context.Context) error {
	accountIDs, err := s.store.FetchIDs(ctx, "accounts", "")
	if err != nil {
		return err
	}
	rows, err := BuildPaymentMethods(s.rng, s.vocab, accountIDs)
	if err != nil {
		return err
	}
	return s.replace(ctx, "payment_methods", values(rows))
}

func (s *Seeder) seedCreditCards(ctx context.Context) error {
	methods, err := s.fetchMethodRefs(ctx)
	if err != nil {
		return err
	}
	return s.replace(ctx, "credit_cards", values(BuildCreditCards(s.rng, s.vocab, methods)))
}

func (s *Seeder) seedPaypal(ctx context.Context) error {
	methods, err := s.fetchMethodRefs(ctx)
	if err != nil {
		return err
	}
	rows, err := BuildPaypal(s.rng, s.vocab, methods)
	if err != nil {
		return err
	}
	return s.replace(ctx, "paypal", values(rows))
}

func (s *Seeder) seedPayments(ctx context.Context) error {
	methods, err := s.fetchMethodRefs(ctx)
	if err != nil {
		return err
	}
	rows, err := BuildPayments(s.rng, s.vocab, methods)
	if err != nil {
		return err
	}
	return s.replace(ctx, "payments", values(rows))
}

func (s *Seeder) seedBookings(ctx context.Context) error {
	guestIDs, err := s.store.FetchIDs(ctx, "accounts", "role = 'guest'")
	if err != nil {
		return err
	}
	accommodationIDs, err := s.store.FetchIDs(ctx, "accommodations", "")
	if err != nil {
		return err
	}
	paymentIDs, err := s.store.FetchIDs(ctx, "payments", "")
	if err != nil {
		return err
	}
	rows, err := BuildBookings(s.rng, s.vocab, guestIDs, accommodationIDs, paymentIDs)
	if err != nil {
		return err
	}
	return s.replace(ctx, "bookings", values(rows))
}

func (s *Seeder) seedPayoutAccounts(ctx context.Context) error {
	hostIDs, err := s.store.FetchIDs(ctx, "accounts", "role = 'host'")
	if err != nil {
		return err
	}
	rows, err := BuildPayoutAccounts(s.rng, s.vocab, hostIDs)
	if err != nil {
		return err
	}
	return s.replace(ctx, "payout_accounts", values(rows))
}

func (s *Seeder) seedPayouts(ctx context.Context) error {
	records, err := s.store.Query(ctx, "SELECT id, host_account_id FROM payout_accounts ORDER BY id")
	if err != nil {
		return err
	}
	accounts := make([]PayoutAccountRef, 0, len(records))
	for _, rec := range records {
		id, err := toInt64(rec["id"])
		if err != nil {
			return fmt.Errorf("payout account id: %w", err)
		}
		host, err := toInt64(rec["host_account_id"])
		if err != nil {
			return fmt.Errorf("payout account host: %w", err)
		}
		accounts = append(accounts, PayoutAccountRef{ID: id, HostAccountID: host})
	}
	bookingIDs, err := s.store.FetchIDs(ctx, "bookings", "")
	if err != nil {
		return err
	}
	rows, err := BuildPayouts(s.rng, s.vocab, accounts, bookingIDs)
	if err != nil {
		return err
	}
	return s.replace(ctx, "payouts", values(rows))
}

func (s *Seeder) seedReviews(ctx context.Context) error {
	accommodationIDs, err := s.store.FetchIDs(ctx, "accommodations", "")
	if err != nil {
		return err
	}
	guestIDs, err := s.store.FetchIDs(ctx, "accounts", "role = 'guest'")
	if err != nil {
		return err
	}
	rows, err := BuildReviews(s.rng, s.vocab, accommodationIDs, guestIDs)
	if err != nil {
		return err
	}
	return s.replace(ctx, "reviews", values(rows))
}

func (s *Seeder) seedReviewImages(ctx context.Context) error {
	reviewIDs, err := s.store.FetchIDs(ctx, "reviews", "")
	if err != nil {
		return err
	}
	imageIDs, err := s.store.FetchIDs(ctx, "images", "")
	if err != nil {
		return err
	}
	rows, taken, err := BuildReviewImages(s.rng, reviewIDs, imageIDs)
	if err != nil {
		return err
	}
	s.takenImages = taken
	return s.replace(ctx, "review_images", values(rows))
}

func (s *Seeder) seedAccommodationImages(ctx context.Context) error {
	accommodationIDs, err := s.store.FetchIDs(ctx, "accommodations", "")
	if err != nil {
		return err
	}
	imageIDs, err := s.store.FetchIDs(ctx, "images", "")
	if err != nil {
		return err
	}
	rows, err := BuildAccommodationImages(s.rng, s.vocab, accommodationIDs, imageIDs, s.takenImages)
	if err != nil {
		return err
	}
	return s.replace(ctx, "accommodation_images", values(rows))
}

func (s *Seeder) seedConversations(ctx context.Context) error {
	return s.replace(ctx, "conversations", values(BuildConversations(s.rng, s.vocab)))
}

func (s *Seeder) seedMessages(ctx context.Context) error {
	records, err := s.store.Query(ctx, "SELECT id, created_at FROM conversations ORDER BY id")
	if err != nil {
		return err
	}
	conversations := make([]ConversationRef, 0, len(records))
	for _, rec := range records {
		id, err := toInt64(rec["id"])
		if err != nil {
			return fmt.Errorf("conversation id: %w", err)
		}
		createdAt, err := toTime(rec["created_at"])
		if err != nil {
			return fmt.Errorf("conversation %d created_at: %w", id, err)
		}
		conversations = append(conversations, ConversationRef{ID: id, CreatedAt: createdAt})
	}
	guestIDs, err := s.store.FetchIDs(ctx, "accounts", "role = 'guest'")
	if err != nil {
		return err
	}
	hostIDs, err := s.store.FetchIDs(ctx, "accounts", "role = 'host'")
	if err != nil {
		return err
	}
	rows, err := BuildMessages(s.rng, s.vocab, conversations, guestIDs, hostIDs)
	if err != nil {
		return err
	}
	return s.replace(ctx, "messages", values(rows))
}

func (s *Seeder) seedNotifications(ctx context.Context) error {
	accountIDs, err := s.store.FetchIDs(ctx, "accounts", "")
	if err != nil {
		return err
	}
	rows, err := BuildNotifications(s.rng, s.vocab, accountIDs)
	if err != nil {
		return err
	}
	return s.replace(ctx, "notifications", values(rows))
}

func (s *Seeder) fetchMethodRefs(ctx context.Context) ([]MethodRef, error) {
	records, err := s.store.Query(ctx, "SELECT id, customer_id, type FROM payment_methods ORDER BY id")
	if err != nil {
		return nil, err
	}
	methods := make([]MethodRef, 0, len(records))
	for _, rec := range records {
		id, err := toInt64(rec["id"])
		if err != nil {
			return nil, fmt.Errorf("payment method id: %w", err)
		}
		customer, err := toInt64(rec["customer_id"])
		if err != nil {
			return nil, fmt.Errorf("payment method customer: %w", err)
		}
		typ, _ := rec["type"].(string)
		methods = append(methods, MethodRef{ID: id, CustomerID: customer, Type: typ})
	}
	return methods, nil
}

type valuer interface {
	values() []any
}

// values flattens typed row slices into the [][]any the datastore expects.
func values[T valuer](rows []T) [][]any {
	out := make([][]any, len(rows))
	for i, r := range rows {
		out[i] = r.values()
	}
	return out
}

func toInt64(v any) (int64, error) {
	switch n := v.(type) {
	case int64:
		return n, nil
	case int32:
		return int64(n), nil
	case int:
		return int64(n), nil
	case uint64:
		return int64(n), nil
	case float64:
		return int64(n), nil
	case string:
		return strconv.ParseInt(n, 10, 64)
	default:
		return 0, fmt.Errorf("unexpected numeric type %T", v)
	}
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func toTime(v any) (time.Time, error) {
	switch t := v.(type) {
	case time.Time:
		return t, nil
	case string:
		for _, layout := range timeLayouts {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed, nil
			}
		}
		return time.Time{}, fmt.Errorf("unparseable timestamp %q", t)
	default:
		return time.Time{}, fmt.Errorf("unexpected timestamp type %T", v)
	}
}
