package schema

import "fmt"

// Table describes one table of the fixed rental schema: the column order
// used for inserts, the surrogate-key column (empty for join tables
// without one), and the tables that must be populated first.
type Table struct {
	Name         string
	Columns      []string
	IDColumn     string
	Dependencies []string
}

// Tables is the closed set of known tables. Identifiers used in SQL come
// exclusively from this registry, never from caller input.
var Tables = []Table{
	{
		Name:     "accounts",
		Columns:  []string{"email", "first_name", "last_name", "role", "created_at"},
		IDColumn: "id",
	},
	{
		Name:         "credentials",
		Columns:      []string{"account_id", "password_hash", "password_updated_at"},
		IDColumn:     "account_id",
		Dependencies: []string{"accounts"},
	},
	{
		Name:     "addresses",
		Columns:  []string{"line1", "line2", "city", "postal_code", "country"},
		IDColumn: "id",
	},
	{
		Name:     "amenities",
		Columns:  []string{"name", "category"},
		IDColumn: "id",
	},
	{
		Name:         "accommodations",
		Columns:      []string{"host_account_id", "title", "address_id", "price_cents", "is_active", "created_at"},
		IDColumn:     "id",
		Dependencies: []string{"accounts", "addresses"},
	},
	{
		Name:         "accommodation_amenities",
		Columns:      []string{"accommodation_id", "amenity_id"},
		Dependencies: []string{"accommodations", "amenities"},
	},
	{
		Name:         "accommodation_calendar",
		Columns:      []string{"accommodation_id", "day", "is_blocked", "price_cents", "min_nights"},
		Dependencies: []string{"accommodations"},
	},
	{
		Name:     "images",
		Columns:  []string{"mime", "storage_key", "created_at"},
		IDColumn: "id",
	},
	{
		Name:         "payment_methods",
		Columns:      []string{"customer_id", "type", "created_at"},
		IDColumn:     "id",
		Dependencies: []string{"accounts"},
	},
	{
		Name:         "credit_cards",
		Columns:      []string{"payment_method_id", "brand", "last4", "exp_month", "exp_year"},
		IDColumn:     "id",
		Dependencies: []string{"payment_methods"},
	},
	{
		Name:         "paypal",
		Columns:      []string{"payment_method_id", "paypal_user_id", "email"},
		IDColumn:     "id",
		Dependencies: []string{"payment_methods"},
	},
	{
		Name:         "payments",
		Columns:      []string{"customer_id", "amount_cents", "status", "payment_method_id"},
		IDColumn:     "id",
		Dependencies: []string{"accounts", "payment_methods"},
	},
	{
		Name:         "bookings",
		Columns:      []string{"guest_account_id", "accommodation_id", "start_date", "end_date", "payment_id", "status", "created_at"},
		IDColumn:     "id",
		Dependencies: []string{"accounts", "accommodations", "payments"},
	},
	{
		Name:         "payout_accounts",
		Columns:      []string{"host_account_id", "type", "is_default"},
		IDColumn:     "id",
		Dependencies: []string{"accounts"},
	},
	{
		Name:         "payouts",
		Columns:      []string{"host_account_id", "payout_account_id", "booking_id", "amount_cents", "currency", "status"},
		IDColumn:     "id",
		Dependencies: []string{"accounts", "payout_accounts", "bookings"},
	},
	{
		Name:         "reviews",
		Columns:      []string{"accommodation_id", "author_account_id", "rating", "description", "created_at"},
		IDColumn:     "id",
		Dependencies: []string{"accommodations", "accounts"},
	},
	{
		Name:         "review_images",
		Columns:      []string{"review_id", "image_id"},
		Dependencies: []string{"reviews", "images"},
	},
	{
		// Depends on review_images so that it always runs after the review
		// generator has claimed its share of the image pool.
		Name:         "accommodation_images",
		Columns:      []string{"accommodation_id", "image_id", "sort_order", "is_cover", "caption", "room_tag"},
		Dependencies: []string{"accommodations", "images", "review_images"},
	},
	{
		Name:     "conversations",
		Columns:  []string{"created_at"},
		IDColumn: "id",
	},
	{
		Name:         "messages",
		Columns:      []string{"sender_id", "receiver_id", "conversation_id", "body", "sent_at", "is_read"},
		IDColumn:     "id",
		Dependencies: []string{"accounts", "conversations"},
	},
	{
		Name:         "notifications",
		Columns:      []string{"account_id", "payload", "sent_at"},
		IDColumn:     "id",
		Dependencies: []string{"accounts"},
	},
}

var byName = func() map[string]Table {
	m := make(map[string]Table, len(Tables))
	for _, t := range Tables {
		m[t.Name] = t
	}
	return m
}()

// Lookup returns the registry entry for a table name.
func Lookup(name string) (Table, error) {
	t, ok := byName[name]
	if !ok {
		return Table{}, fmt.Errorf("unknown table: %s", name)
	}
	return t, nil
}

// Names returns the registered table names in declaration order.
func Names() []string {
	names := make([]string, len(Tables))
	for i, t := range Tables {
		names[i] = t.Name
	}
	return names
}
