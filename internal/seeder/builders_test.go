package seeder

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/frostbnb/seedctl/internal/vocab"
)

func testVocab(t *testing.T, n int) *vocab.Vocabulary {
	t.Helper()
	p := vocab.DefaultParams()
	p.RowCount = n
	p.CalendarDays = 30
	v, err := vocab.New(p)
	if err != nil {
		t.Fatalf("Failed to build vocabulary: %v", err)
	}
	return v
}

func ids(n int) []int64 {
	out := make([]int64, n)
	for i := range out {
		out[i] = int64(i + 1)
	}
	return out
}

func TestBuildAccountsCardinalityAndRoles(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	v := testVocab(t, 10)

	rows, err := BuildAccounts(rng, v)
	if err != nil {
		t.Fatalf("BuildAccounts failed: %v", err)
	}
	if len(rows) != 10 {
		t.Fatalf("Got %d accounts, want 10", len(rows))
	}

	counts := map[string]int{}
	emails := map[string]struct{}{}
	for _, r := range rows {
		counts[r.Role]++
		if _, dup := emails[r.Email]; dup {
			t.Errorf("Duplicate email %q", r.Email)
		}
		emails[r.Email] = struct{}{}
	}

	if counts[RoleAdmin] != v.Params.AdminCount {
		t.Errorf("Got %d admins, want %d", counts[RoleAdmin], v.Params.AdminCount)
	}
	if counts[RoleHost] == 0 {
		t.Error("Expected at least one host")
	}
	if counts[RoleGuest] == 0 {
		t.Error("Expected at least one guest")
	}

	// admins occupy the tail
	for _, r := range rows[len(rows)-v.Params.AdminCount:] {
		if r.Role != RoleAdmin {
			t.Errorf("Expected admin in tail, got %s", r.Role)
		}
	}
}

func TestBuildCredentialsFollowsLiveAccounts(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	v := testVocab(t, 10)

	accountIDs := ids(7)
	rows, err := BuildCredentials(rng, v, accountIDs)
	if err != nil {
		t.Fatalf("BuildCredentials failed: %v", err)
	}
	if len(rows) != len(accountIDs) {
		t.Fatalf("Got %d credentials, want %d", len(rows), len(accountIDs))
	}
	for i, r := range rows {
		if r.AccountID != accountIDs[i] {
			t.Errorf("Credential %d references account %d, want %d", i, r.AccountID, accountIDs[i])
		}
		if len(r.PasswordHash) != v.Params.PasswordHashLength {
			t.Errorf("Password hash length %d, want %d", len(r.PasswordHash), v.Params.PasswordHashLength)
		}
	}

	if _, err := BuildCredentials(rng, v, nil); err == nil {
		t.Error("Expected error for empty account ids")
	}
}

func TestBuildAddressesConsistentCityTuples(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	v := testVocab(t, 25)

	rows := BuildAddresses(rng, v)
	if len(rows) != 25 {
		t.Fatalf("Got %d addresses, want 25", len(rows))
	}
	for _, r := range rows {
		if v.CityPostal[r.City] != r.PostalCode {
			t.Errorf("City %q has postal %q, want %q", r.City, r.PostalCode, v.CityPostal[r.City])
		}
		if v.CityCountry[r.City] != r.Country {
			t.Errorf("City %q has country %q, want %q", r.City, r.Country, v.CityCountry[r.City])
		}
	}
}

func TestBuildAccommodationsCoversAllAddresses(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	v := testVocab(t, 10)

	hostIDs := ids(3)
	addressIDs := ids(10)
	rows, err := BuildAccommodations(rng, v, hostIDs, addressIDs)
	if err != nil {
		t.Fatalf("BuildAccommodations failed: %v", err)
	}
	if len(rows) != 10 {
		t.Fatalf("Got %d accommodations, want 10", len(rows))
	}

	seen := map[int64]bool{}
	for _, r := range rows {
		seen[r.AddressID] = true
		if r.HostAccountID < 1 || r.HostAccountID > 3 {
			t.Errorf("Unknown host id %d", r.HostAccountID)
		}
	}
	for _, id := range addressIDs {
		if !seen[id] {
			t.Errorf("Address %d never referenced", id)
		}
	}

	if _, err := BuildAccommodations(rng, v, nil, addressIDs); err == nil {
		t.Error("Expected error for empty host ids")
	}
}

func TestBuildAmenitiesCoversPool(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	v := testVocab(t, 10)

	rows := BuildAmenities(rng, v)
	if len(rows) != len(v.AmenityNames) {
		t.Fatalf("Got %d amenities, want %d", len(rows), len(v.AmenityNames))
	}

	names := map[string]struct{}{}
	for _, r := range rows {
		if _, dup := names[r.Name]; dup {
			t.Errorf("Duplicate amenity %q", r.Name)
		}
		names[r.Name] = struct{}{}
	}
}

func TestBuildAccommodationAmenitiesDistinctPerListing(t *testing.T) {
	rng := rand.New(rand.NewSource(6))

	rows, err := BuildAccommodationAmenities(rng, ids(8), ids(12))
	if err != nil {
		t.Fatalf("BuildAccommodationAmenities failed: %v", err)
	}

	perListing := map[int64]map[int64]struct{}{}
	for _, r := range rows {
		set := perListing[r.AccommodationID]
		if set == nil {
			set = map[int64]struct{}{}
			perListing[r.AccommodationID] = set
		}
		if _, dup := set[r.AmenityID]; dup {
			t.Errorf("Listing %d links amenity %d twice", r.AccommodationID, r.AmenityID)
		}
		set[r.AmenityID] = struct{}{}
	}
	for id, set := range perListing {
		if len(set) < 1 || len(set) > 5 {
			t.Errorf("Listing %d has %d amenities, want 1-5", id, len(set))
		}
	}
	if len(perListing) != 8 {
		t.Errorf("Got %d listings with amenities, want 8", len(perListing))
	}
}

func TestBuildCalendarHorizon(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	v := testVocab(t, 10)

	from := time.Date(2024, 12, 1, 13, 45, 0, 0, time.UTC)
	rows, err := BuildCalendar(rng, v, ids(4), from)
	if err != nil {
		t.Fatalf("BuildCalendar failed: %v", err)
	}
	if want := 4 * v.Params.CalendarDays; len(rows) != want {
		t.Fatalf("Got %d calendar rows, want %d", len(rows), want)
	}

	first := rows[0]
	if first.Day.Hour() != 0 || first.Day.Minute() != 0 {
		t.Errorf("Calendar day %s not normalized to midnight", first.Day)
	}
	for _, r := range rows {
		if r.MinNights < 1 || r.MinNights > 7 {
			t.Errorf("min_nights %d outside 1-7", r.MinNights)
		}
	}
}

func TestBuildImagesCardinality(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	v := testVocab(t, 10)

	rows := BuildImages(rng, v)
	if len(rows) != 40 {
		t.Fatalf("Got %d images, want 40", len(rows))
	}

	keys := map[string]struct{}{}
	for _, r := range rows {
		if _, dup := keys[r.StorageKey]; dup {
			t.Errorf("Duplicate storage key %q", r.StorageKey)
		}
		keys[r.StorageKey] = struct{}{}
	}
}

func TestImagePoolPartition(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	v := testVocab(t, 10)

	reviewIDs := ids(20)
	imageIDs := ids(40)

	reviewRows, taken, err := BuildReviewImages(rng, reviewIDs, imageIDs)
	if err != nil {
		t.Fatalf("BuildReviewImages failed: %v", err)
	}

	perReview := map[int64]int{}
	for _, r := range reviewRows {
		perReview[r.ReviewID]++
		if _, ok := taken[r.ImageID]; !ok {
			t.Errorf("Image %d attached but not marked taken", r.ImageID)
		}
	}
	for id, n := range perReview {
		if id > 10 {
			t.Errorf("Review %d beyond first half got images", id)
		}
		if n < 1 || n > 3 {
			t.Errorf("Review %d has %d images, want 1-3", id, n)
		}
	}

	listingRows, err := BuildAccommodationImages(rng, v, ids(10), imageIDs, taken)
	if err != nil {
		t.Fatalf("BuildAccommodationImages failed: %v", err)
	}
	if want := len(imageIDs) - len(taken); len(listingRows) != want {
		t.Fatalf("Got %d listing images, want %d", len(listingRows), want)
	}

	for _, r := range listingRows {
		if _, clash := taken[r.ImageID]; clash {
			t.Errorf("Image %d used by both a review and a listing", r.ImageID)
		}
		if r.RoomTag == "" || r.Caption == "" {
			t.Errorf("Listing image %d missing caption or room tag", r.ImageID)
		}
	}
}

func TestBuildPaymentMethodsPerAccount(t *testing.T) {
	rng := rand.New(rand.NewSource(10))
	v := testVocab(t, 10)

	rows, err := BuildPaymentMethods(rng, v, ids(10))
	if err != nil {
		t.Fatalf("BuildPaymentMethods failed: %v", err)
	}

	perAccount := map[int64]int{}
	for _, r := range rows {
		perAccount[r.CustomerID]++
		if r.Type != MethodCard && r.Type != MethodPaypal {
			t.Errorf("Unknown method type %q", r.Type)
		}
	}
	if len(perAccount) != 10 {
		t.Errorf("Got methods for %d accounts, want 10", len(perAccount))
	}
	for id, n := range perAccount {
		if n < 1 || n > 3 {
			t.Errorf("Account %d has %d methods, want 1-3", id, n)
		}
	}
}

func TestPaymentDetailPartition(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	v := testVocab(t, 10)

	methods := []MethodRef{
		{ID: 1, CustomerID: 1, Type: MethodCard},
		{ID: 2, CustomerID: 1, Type: MethodPaypal},
		{ID: 3, CustomerID: 2, Type: MethodCard},
		{ID: 4, CustomerID: 3, Type: MethodPaypal},
	}

	cards := BuildCreditCards(rng, v, methods)
	if len(cards) != 2 {
		t.Fatalf("Got %d cards, want 2", len(cards))
	}
	for _, c := range cards {
		if c.Last4 < 1000 || c.Last4 > 9999 {
			t.Errorf("last4 %d outside 1000-9999", c.Last4)
		}
		if c.ExpMonth < 1 || c.ExpMonth > 12 {
			t.Errorf("exp_month %d outside 1-12", c.ExpMonth)
		}
	}

	paypals, err := BuildPaypal(rng, v, methods)
	if err != nil {
		t.Fatalf("BuildPaypal failed: %v", err)
	}
	if len(paypals) != 2 {
		t.Fatalf("Got %d paypal rows, want 2", len(paypals))
	}

	cardMethods := map[int64]struct{}{1: {}, 3: {}}
	for _, c := range cards {
		if _, ok := cardMethods[c.PaymentMethodID]; !ok {
			t.Errorf("Card details on non-card method %d", c.PaymentMethodID)
		}
	}
	for _, p := range paypals {
		if _, clash := cardMethods[p.PaymentMethodID]; clash {
			t.Errorf("Paypal details on card method %d", p.PaymentMethodID)
		}
	}
}

func TestBuildPaymentsAttributedToMethodOwner(t *testing.T) {
	rng := rand.New(rand.NewSource(12))
	v := testVocab(t, 10)

	methods := []MethodRef{
		{ID: 1, CustomerID: 11, Type: MethodCard},
		{ID: 2, CustomerID: 22, Type: MethodPaypal},
	}
	owner := map[int64]int64{1: 11, 2: 22}

	rows, err := BuildPayments(rng, v, methods)
	if err != nil {
		t.Fatalf("BuildPayments failed: %v", err)
	}
	if len(rows) != 20 {
		t.Fatalf("Got %d payments, want 20", len(rows))
	}
	for _, r := range rows {
		if owner[r.PaymentMethodID] != r.CustomerID {
			t.Errorf("Payment via method %d attributed to %d, want %d",
				r.PaymentMethodID, r.CustomerID, owner[r.PaymentMethodID])
		}
	}
}

func TestBuildBookingsDates(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	v := testVocab(t, 10)

	rows, err := BuildBookings(rng, v, ids(5), ids(10), ids(20))
	if err != nil {
		t.Fatalf("BuildBookings failed: %v", err)
	}
	if len(rows) != 20 {
		t.Fatalf("Got %d bookings, want 20", len(rows))
	}

	withPayment := 0
	for _, r := range rows {
		if !r.EndDate.After(r.StartDate) {
			t.Errorf("Booking end %s not after start %s", r.EndDate, r.StartDate)
		}
		if r.PaymentID != nil {
			withPayment++
		}
	}
	if withPayment == 0 {
		t.Error("Expected some bookings with a payment reference")
	}
}

func TestBuildPayoutAccountsOneDefaultPerHost(t *testing.T) {
	rng := rand.New(rand.NewSource(14))
	v := testVocab(t, 10)

	rows, err := BuildPayoutAccounts(rng, v, ids(6))
	if err != nil {
		t.Fatalf("BuildPayoutAccounts failed: %v", err)
	}

	defaults := map[int64]int{}
	perHost := map[int64]int{}
	for _, r := range rows {
		perHost[r.HostAccountID]++
		if r.IsDefault {
			defaults[r.HostAccountID]++
		}
	}
	if len(perHost) != 6 {
		t.Errorf("Got payout accounts for %d hosts, want 6", len(perHost))
	}
	for host, n := range perHost {
		if n < 1 || n > 2 {
			t.Errorf("Host %d has %d payout accounts, want 1-2", host, n)
		}
		if defaults[host] != 1 {
			t.Errorf("Host %d has %d defaults, want 1", host, defaults[host])
		}
	}
}

func TestBuildPayoutsAttributedToAccountHost(t *testing.T) {
	rng := rand.New(rand.NewSource(15))
	v := testVocab(t, 10)

	accounts := []PayoutAccountRef{
		{ID: 1, HostAccountID: 100},
		{ID: 2, HostAccountID: 200},
	}
	owner := map[int64]int64{1: 100, 2: 200}

	rows, err := BuildPayouts(rng, v, accounts, ids(20))
	if err != nil {
		t.Fatalf("BuildPayouts failed: %v", err)
	}
	if len(rows) != 10 {
		t.Fatalf("Got %d payouts, want 10", len(rows))
	}
	for _, r := range rows {
		if owner[r.PayoutAccountID] != r.HostAccountID {
			t.Errorf("Payout via account %d attributed to host %d, want %d",
				r.PayoutAccountID, r.HostAccountID, owner[r.PayoutAccountID])
		}
	}
}

func TestBuildReviewsRatings(t *testing.T) {
	rng := rand.New(rand.NewSource(16))
	v := testVocab(t, 10)

	guestIDs := ids(5)
	rows, err := BuildReviews(rng, v, ids(10), guestIDs)
	if err != nil {
		t.Fatalf("BuildReviews failed: %v", err)
	}
	if len(rows) != 20 {
		t.Fatalf("Got %d reviews, want 20", len(rows))
	}
	for _, r := range rows {
		if r.Rating < 1 || r.Rating > 5 {
			t.Errorf("Rating %d outside 1-5", r.Rating)
		}
		if r.AuthorAccountID < 1 || r.AuthorAccountID > 5 {
			t.Errorf("Author %d not a guest", r.AuthorAccountID)
		}
		if r.Description == "" {
			t.Error("Empty review description")
		}
	}
}

// TestBuildReviewsSentimentMatchesRating checks the text of a low-rated
// review opens from the negative pool and a high-rated one from the
// positive pool.
func TestBuildReviewsSentimentMatchesRating(t *testing.T) {
	rng := rand.New(rand.NewSource(19))
	v := testVocab(t, 40)

	rows, err := BuildReviews(rng, v, ids(10), ids(5))
	if err != nil {
		t.Fatalf("BuildReviews failed: %v", err)
	}

	inPool := func(pool []string, opening string) bool {
		for _, entry := range pool {
			if entry == opening {
				return true
			}
		}
		return false
	}

	sawLow, sawHigh := false, false
	for _, r := range rows {
		bang := strings.Index(r.Description, "!")
		if bang < 0 {
			t.Fatalf("Review %q has no opening", r.Description)
		}
		opening := r.Description[:bang]

		if r.Rating < 3 {
			sawLow = true
			if !inPool(v.Reviews.Openings.Negative, opening) {
				t.Errorf("Rating %d review opens with %q, want a negative opening", r.Rating, opening)
			}
		} else {
			sawHigh = true
			if !inPool(v.Reviews.Openings.Positive, opening) {
				t.Errorf("Rating %d review opens with %q, want a positive opening", r.Rating, opening)
			}
		}
	}
	if !sawLow || !sawHigh {
		t.Fatal("Expected both low and high ratings among 80 reviews")
	}
}

func TestBuildMessagesThreads(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	v := testVocab(t, 10)

	created := time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)
	conversations := make([]ConversationRef, 10)
	for i := range conversations {
		conversations[i] = ConversationRef{ID: int64(i + 1), CreatedAt: created}
	}

	guestIDs := ids(5)
	hostIDs := []int64{10, 11, 12, 13}
	rows, err := BuildMessages(rng, v, conversations, guestIDs, hostIDs)
	if err != nil {
		t.Fatalf("BuildMessages failed: %v", err)
	}

	byConv := map[int64][]MessageRow{}
	for _, r := range rows {
		byConv[r.ConversationID] = append(byConv[r.ConversationID], r)
	}
	if len(byConv) != 10 {
		t.Fatalf("Got threads in %d conversations, want 10", len(byConv))
	}

	for convID, thread := range byConv {
		if len(thread) < 1 || len(thread) > 15 {
			t.Errorf("Conversation %d has %d messages, want 1-15", convID, len(thread))
		}

		first := thread[0]
		prev := created
		for i, m := range thread {
			if !m.SentAt.After(prev) {
				t.Errorf("Conversation %d message %d sent at %s, not after %s", convID, i, m.SentAt, prev)
			}
			prev = m.SentAt

			// the two parties alternate
			if i%2 == 0 {
				if m.SenderID != first.SenderID || m.ReceiverID != first.ReceiverID {
					t.Errorf("Conversation %d message %d breaks alternation", convID, i)
				}
			} else {
				if m.SenderID != first.ReceiverID || m.ReceiverID != first.SenderID {
					t.Errorf("Conversation %d message %d breaks alternation", convID, i)
				}
			}

			if i < len(thread)-1 && !m.IsRead {
				t.Errorf("Conversation %d message %d unread but not the newest", convID, i)
			}
		}
	}
}

func TestBuildNotificationsCardinality(t *testing.T) {
	rng := rand.New(rand.NewSource(18))
	v := testVocab(t, 10)

	rows, err := BuildNotifications(rng, v, ids(10))
	if err != nil {
		t.Fatalf("BuildNotifications failed: %v", err)
	}
	if len(rows) != 10 {
		t.Fatalf("Got %d notifications, want 10", len(rows))
	}
}
