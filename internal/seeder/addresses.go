package seeder

import (
	"fmt"
	"math/rand"

	"github.com/frostbnb/seedctl/internal/vocab"
)

type AddressRow struct {
	Line1      string
	Line2      any // nil when the city defines no address terms
	City       string
	PostalCode string
	Country    string
}

func (r AddressRow) values() []any {
	return []any{r.Line1, r.Line2, r.City, r.PostalCode, r.Country}
}

// BuildAddresses draws one city per row and derives postal code, country
// and street from that same city, so every row is one consistent
// geographic tuple.
func BuildAddresses(rng *rand.Rand, v *vocab.Vocabulary) []AddressRow {
	cities := v.Cities()
	rows := make([]AddressRow, 0, v.Params.RowCount)

	for i := 0; i < v.Params.RowCount; i++ {
		city := cities[rng.Intn(len(cities))]
		streets := v.CityStreets[city]

		row := AddressRow{
			Line1:      fmt.Sprintf("%s %d", streets[rng.Intn(len(streets))], 1+rng.Intn(200)),
			City:       city,
			PostalCode: v.CityPostal[city],
			Country:    v.CityCountry[city],
		}
		if terms, ok := v.CityAddressTerms[city]; ok {
			row.Line2 = fmt.Sprintf("%s %d, %s %d", terms[0], 1+rng.Intn(10), terms[1], 1+rng.Intn(50))
		}
		rows = append(rows, row)
	}
	return rows
}
