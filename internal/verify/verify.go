// Package verify runs the post-seed integrity battery. Checks never abort
// each other: every check reports its own result and the caller decides
// what a failure means.
package verify

import (
	"context"
	"fmt"

	"github.com/frostbnb/seedctl/internal/database"
	"github.com/frostbnb/seedctl/internal/schema"
)

// CheckResult is the outcome of a single integrity check.
type CheckResult struct {
	Name   string
	Passed bool
	Detail string
}

// Verifier runs read-only checks against a seeded database.
type Verifier struct {
	store   database.Datastore
	minRows int
}

func New(store database.Datastore, minRows int) *Verifier {
	return &Verifier{store: store, minRows: minRows}
}

// fkCheck declares one child-to-parent reference. Nullable references are
// vacuously valid where the child column is NULL.
type fkCheck struct {
	child    string
	childCol string
	parent   string
	parentID string
}

var fkChecks = []fkCheck{
	{"credentials", "account_id", "accounts", "id"},
	{"accommodations", "host_account_id", "accounts", "id"},
	{"accommodations", "address_id", "addresses", "id"},
	{"accommodation_amenities", "accommodation_id", "accommodations", "id"},
	{"accommodation_amenities", "amenity_id", "amenities", "id"},
	{"accommodation_calendar", "accommodation_id", "accommodations", "id"},
	{"accommodation_images", "accommodation_id", "accommodations", "id"},
	{"accommodation_images", "image_id", "images", "id"},
	{"review_images", "review_id", "reviews", "id"},
	{"review_images", "image_id", "images", "id"},
	{"reviews", "accommodation_id", "accommodations", "id"},
	{"reviews", "author_account_id", "accounts", "id"},
	{"messages", "sender_id", "accounts", "id"},
	{"messages", "receiver_id", "accounts", "id"},
	{"messages", "conversation_id", "conversations", "id"},
	{"payment_methods", "customer_id", "accounts", "id"},
	{"credit_cards", "payment_method_id", "payment_methods", "id"},
	{"paypal", "payment_method_id", "payment_methods", "id"},
	{"payments", "customer_id", "accounts", "id"},
	{"payments", "payment_method_id", "payment_methods", "id"},
	{"bookings", "guest_account_id", "accounts", "id"},
	{"bookings", "accommodation_id", "accommodations", "id"},
	{"bookings", "payment_id", "payments", "id"},
	{"payout_accounts", "host_account_id", "accounts", "id"},
	{"payouts", "host_account_id", "accounts", "id"},
	{"payouts", "payout_account_id", "payout_accounts", "id"},
	{"payouts", "booking_id", "bookings", "id"},
	{"notifications", "account_id", "accounts", "id"},
}

// Run executes the full battery and returns one result per check. A query
// error fails the affected check but never stops the rest of the battery.
func (v *Verifier) Run(ctx context.Context) []CheckResult {
	var results []CheckResult

	for _, name := range schema.Names() {
		results = append(results, v.checkPopulation(ctx, name))
	}
	results = append(results, v.checkCredentialsOneToOne(ctx))
	results = append(results, v.checkAddressesReferenced(ctx))
	for _, fk := range fkChecks {
		results = append(results, v.checkForeignKey(ctx, fk))
	}
	results = append(results, v.checkPaymentDetailPartition(ctx)...)

	return results
}

// Failed filters a battery down to the checks that did not pass.
func Failed(results []CheckResult) []CheckResult {
	var failed []CheckResult
	for _, r := range results {
		if !r.Passed {
			failed = append(failed, r)
		}
	}
	return failed
}

func (v *Verifier) count(ctx context.Context, query string, args ...any) (int64, error) {
	records, err := v.store.Query(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	if len(records) != 1 {
		return 0, fmt.Errorf("expected one row, got %d", len(records))
	}
	for _, value := range records[0] {
		return toCount(value)
	}
	return 0, fmt.Errorf("count query returned no columns")
}

func (v *Verifier) checkPopulation(ctx context.Context, table string) CheckResult {
	name := "population: " + table
	n, err := v.count(ctx, "SELECT COUNT(*) FROM "+table)
	if err != nil {
		return CheckResult{Name: name, Detail: err.Error()}
	}
	if n < int64(v.minRows) {
		return CheckResult{Name: name, Detail: fmt.Sprintf("%d rows, want at least %d", n, v.minRows)}
	}
	return CheckResult{Name: name, Passed: true, Detail: fmt.Sprintf("%d rows", n)}
}

// checkCredentialsOneToOne verifies credentials and accounts pair up
// exactly: equal counts and no account missing its credential row.
func (v *Verifier) checkCredentialsOneToOne(ctx context.Context) CheckResult {
	const name = "credentials match accounts 1:1"

	accounts, err := v.count(ctx, "SELECT COUNT(*) FROM accounts")
	if err != nil {
		return CheckResult{Name: name, Detail: err.Error()}
	}
	credentials, err := v.count(ctx, "SELECT COUNT(*) FROM credentials")
	if err != nil {
		return CheckResult{Name: name, Detail: err.Error()}
	}
	if accounts != credentials {
		return CheckResult{Name: name, Detail: fmt.Sprintf("%d accounts vs %d credentials", accounts, credentials)}
	}

	missing, err := v.count(ctx,
		"SELECT COUNT(*) FROM accounts a LEFT JOIN credentials c ON c.account_id = a.id WHERE c.account_id IS NULL")
	if err != nil {
		return CheckResult{Name: name, Detail: err.Error()}
	}
	if missing > 0 {
		return CheckResult{Name: name, Detail: fmt.Sprintf("%d accounts without credentials", missing)}
	}
	return CheckResult{Name: name, Passed: true, Detail: fmt.Sprintf("%d pairs", accounts)}
}

// checkAddressesReferenced verifies the reverse direction of the
// address/accommodation link: no address is left dangling unused.
func (v *Verifier) checkAddressesReferenced(ctx context.Context) CheckResult {
	const name = "every address backs an accommodation"

	unused, err := v.count(ctx,
		"SELECT COUNT(*) FROM addresses a LEFT JOIN accommodations acc ON acc.address_id = a.id WHERE acc.id IS NULL")
	if err != nil {
		return CheckResult{Name: name, Detail: err.Error()}
	}
	if unused > 0 {
		return CheckResult{Name: name, Detail: fmt.Sprintf("%d unreferenced addresses", unused)}
	}
	return CheckResult{Name: name, Passed: true, Detail: "all addresses referenced"}
}

func (v *Verifier) checkForeignKey(ctx context.Context, fk fkCheck) CheckResult {
	name := fmt.Sprintf("fk: %s.%s -> %s", fk.child, fk.childCol, fk.parent)

	query := fmt.Sprintf(
		"SELECT COUNT(*) FROM %s c LEFT JOIN %s p ON p.%s = c.%s WHERE c.%s IS NOT NULL AND p.%s IS NULL",
		fk.child, fk.parent, fk.parentID, fk.childCol, fk.childCol, fk.parentID)
	orphans, err := v.count(ctx, query)
	if err != nil {
		return CheckResult{Name: name, Detail: err.Error()}
	}
	if orphans > 0 {
		return CheckResult{Name: name, Detail: fmt.Sprintf("%d orphaned rows", orphans)}
	}
	return CheckResult{Name: name, Passed: true, Detail: "no orphans"}
}

// checkPaymentDetailPartition verifies the type discriminator and the
// detail tables agree: every card method has card details and no paypal
// details, and the other way around.
func (v *Verifier) checkPaymentDetailPartition(ctx context.Context) []CheckResult {
	cases := []struct {
		name  string
		query string
	}{
		{
			"card methods have card details",
			"SELECT COUNT(*) FROM payment_methods m LEFT JOIN credit_cards d ON d.payment_method_id = m.id WHERE m.type = 'card' AND d.id IS NULL",
		},
		{
			"paypal methods have paypal details",
			"SELECT COUNT(*) FROM payment_methods m LEFT JOIN paypal d ON d.payment_method_id = m.id WHERE m.type = 'paypal' AND d.id IS NULL",
		},
		{
			"card details only on card methods",
			"SELECT COUNT(*) FROM credit_cards d JOIN payment_methods m ON m.id = d.payment_method_id WHERE m.type <> 'card'",
		},
		{
			"paypal details only on paypal methods",
			"SELECT COUNT(*) FROM paypal d JOIN payment_methods m ON m.id = d.payment_method_id WHERE m.type <> 'paypal'",
		},
	}

	results := make([]CheckResult, 0, len(cases))
	for _, c := range cases {
		n, err := v.count(ctx, c.query)
		switch {
		case err != nil:
			results = append(results, CheckResult{Name: c.name, Detail: err.Error()})
		case n > 0:
			results = append(results, CheckResult{Name: c.name, Detail: fmt.Sprintf("%d mismatched rows", n)})
		default:
			results = append(results, CheckResult{Name: c.name, Passed: true, Detail: "consistent"})
		}
	}
	return results
}

func toCount(v any) (int64, error) {
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
		var parsed int64
		if _, err := fmt.Sscan(n, &parsed); err != nil {
			return 0, fmt.Errorf("unparseable count %q", n)
		}
		return parsed, nil
	default:
		return 0, fmt.Errorf("unexpected count type %T", v)
	}
}
