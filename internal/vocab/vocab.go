// Package vocab holds the seed vocabulary and the scalar generation
// parameters. A Vocabulary is built once at startup and passed explicitly
// into synthesizers and table generators; nothing in here is mutated after
// construction.
package vocab

import (
	"fmt"
	"time"
)

// Params are the scalar knobs of a generation run.
type Params struct {
	// RowCount is N, the base number of rows per table. Several tables use
	// a documented multiple of it (images 4N, reviews and bookings 2N) or
	// derive their cardinality from parent rows instead.
	RowCount int

	// AdminCount of the generated accounts get role admin.
	AdminCount int

	// WindowStart and WindowEnd bound every generated timestamp, inclusive.
	WindowStart time.Time
	WindowEnd   time.Time

	// PasswordHashLength is the exact length of generated password hashes.
	PasswordHashLength int

	// CalendarDays is how many days of availability each accommodation gets.
	CalendarDays int
}

// Vocabulary bundles the value pools with the run parameters.
type Vocabulary struct {
	Params Params

	CityPostal       map[string]string
	CityCountry      map[string]string
	CityStreets      map[string][]string
	CityAddressTerms map[string][2]string

	FirstNameSylls []string
	LastNameSylls  []string
	FirstNameMin   int
	FirstNameMax   int
	LastNameMin    int
	LastNameMax    int
	EmailDomains   []string

	TitleWords TitleWords
	ImageMimes []string
	CardBrands []string
	Reviews    ReviewTemplates
	Gibberish  []string
	RoomTags   []string

	AmenityNames      []string
	AmenityCategories []string

	PaymentMethodTypes []string
	PaymentStatuses    []string
	BookingStatuses    []string
	PayoutStatuses     []string
	PayoutAccountTypes []string
	Currencies         []string
}

// DefaultParams returns the standard generation knobs.
func DefaultParams() Params {
	return Params{
		RowCount:           40,
		AdminCount:         3,
		WindowStart:        time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC),
		WindowEnd:          time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
		PasswordHashLength: 32,
		CalendarDays:       365,
	}
}

// New returns a Vocabulary with the default pools and the given params.
func New(p Params) (*Vocabulary, error) {
	v := &Vocabulary{
		Params:           p,
		CityPostal:       cityPostal,
		CityCountry:      cityCountry,
		CityStreets:      cityStreets,
		CityAddressTerms: cityAddressTerms,

		FirstNameSylls: firstNameSylls,
		LastNameSylls:  lastNameSylls,
		FirstNameMin:   1,
		FirstNameMax:   1,
		LastNameMin:    1,
		LastNameMax:    3,
		EmailDomains:   emailDomains,

		TitleWords: titleWords,
		ImageMimes: imageMimes,
		CardBrands: cardBrands,
		Reviews:    reviewTemplates,
		Gibberish:  gibberishWords,
		RoomTags:   roomTags,

		AmenityNames:      amenityNames,
		AmenityCategories: amenityCategories,

		PaymentMethodTypes: paymentMethodTypes,
		PaymentStatuses:    paymentStatuses,
		BookingStatuses:    bookingStatuses,
		PayoutStatuses:     payoutStatuses,
		PayoutAccountTypes: payoutAccountTypes,
		Currencies:         currencies,
	}
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return v, nil
}

// Validate checks pool consistency once at load. Every city in the postal
// map must have a country and at least one street; address terms are
// optional per city (line2 is omitted when absent).
func (v *Vocabulary) Validate() error {
	p := v.Params
	if p.RowCount <= 0 {
		return fmt.Errorf("row count must be positive, got %d", p.RowCount)
	}
	if p.AdminCount < 0 || p.AdminCount > p.RowCount {
		return fmt.Errorf("admin count %d outside [0, %d]", p.AdminCount, p.RowCount)
	}
	if !p.WindowStart.Before(p.WindowEnd) {
		return fmt.Errorf("timestamp window start %s not before end %s", p.WindowStart, p.WindowEnd)
	}
	if p.PasswordHashLength <= 0 {
		return fmt.Errorf("password hash length must be positive, got %d", p.PasswordHashLength)
	}
	if p.CalendarDays <= 0 {
		return fmt.Errorf("calendar days must be positive, got %d", p.CalendarDays)
	}

	for city := range v.CityPostal {
		if _, ok := v.CityCountry[city]; !ok {
			return fmt.Errorf("city %q has no country entry", city)
		}
		if streets := v.CityStreets[city]; len(streets) == 0 {
			return fmt.Errorf("city %q has no street entries", city)
		}
	}

	pools := map[string]int{
		"first name syllables": len(v.FirstNameSylls),
		"last name syllables":  len(v.LastNameSylls),
		"email domains":        len(v.EmailDomains),
		"image mimes":          len(v.ImageMimes),
		"card brands":          len(v.CardBrands),
		"gibberish words":      len(v.Gibberish),
		"room tags":            len(v.RoomTags),
		"amenity names":        len(v.AmenityNames),
		"cities":               len(v.CityPostal),
	}
	for name, n := range pools {
		if n == 0 {
			return fmt.Errorf("empty pool: %s", name)
		}
	}
	return nil
}

// Cities returns the city names in no particular order.
func (v *Vocabulary) Cities() []string {
	cities := make([]string, 0, len(v.CityPostal))
	for city := range v.CityPostal {
		cities = append(cities, city)
	}
	return cities
}
