// Package synth provides the pure value synthesizers. Every function takes
// an explicit randomness source and the pools it draws from; none of them
// touch the database or any global state.
package synth

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"github.com/frostbnb/seedctl/internal/vocab"
)

const alphanumeric = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

const passwordAlphabet = alphanumeric + "!@#$%^&*()"

// emailAttempts bounds the collision-retry loop in UniqueEmail. Exhausting
// it means the name/domain pools are too small for the requested row count.
const emailAttempts = 1000

// Sentiment selects between the positive and negative template pools.
type Sentiment int

const (
	Positive Sentiment = iota
	Negative
)

// SentimentForRating couples review text to the numeric rating: anything
// below 3 reads as a bad stay.
func SentimentForRating(rating int) Sentiment {
	if rating < 3 {
		return Negative
	}
	return Positive
}

func pick(rng *rand.Rand, pool []string) string {
	return pool[rng.Intn(len(pool))]
}

// Name concatenates a random-length run of syllables; the count is drawn
// from [min, max] inclusive.
func Name(rng *rand.Rand, sylls []string, min, max int) string {
	n := min + rng.Intn(max-min+1)
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteString(pick(rng, sylls))
	}
	return b.String()
}

// UniqueEmail draws a first/last name pair and builds first.last@domain.
// On collision with taken it redraws the whole pair; attempts are bounded
// so a too-small pool surfaces as an error instead of a spin.
func UniqueEmail(rng *rand.Rand, v *vocab.Vocabulary, taken map[string]struct{}) (first, last, email string, err error) {
	for attempt := 0; attempt < emailAttempts; attempt++ {
		first = Name(rng, v.FirstNameSylls, v.FirstNameMin, v.FirstNameMax)
		last = Name(rng, v.LastNameSylls, v.LastNameMin, v.LastNameMax)
		email = first + "." + last + "@" + pick(rng, v.EmailDomains)
		if _, dup := taken[email]; !dup {
			return first, last, email, nil
		}
	}
	return "", "", "", fmt.Errorf("no unused email after %d attempts: name/domain pools too small", emailAttempts)
}

// Timestamp returns a uniformly random instant in [t0, t1], bounds
// inclusive, at second granularity.
func Timestamp(rng *rand.Rand, t0, t1 time.Time) time.Time {
	delta := int64(t1.Sub(t0).Seconds())
	return t0.Add(time.Duration(rng.Int63n(delta+1)) * time.Second)
}

// StorageKey builds images/<uuid>.<ext> with the extension taken from the
// mime subtype. The UUID is drawn from rng so generation stays reproducible
// under a fixed seed.
func StorageKey(rng *rand.Rand, mime string) string {
	id, err := uuid.NewRandomFromReader(rng)
	if err != nil {
		// rand.Rand.Read never fails
		panic(err)
	}
	ext := mime
	if i := strings.Index(mime, "/"); i >= 0 {
		ext = mime[i+1:]
	}
	return "images/" + id.String() + "." + ext
}

// Title joins one draw from each of the five ordered title categories.
func Title(rng *rand.Rand, tw vocab.TitleWords) string {
	return strings.Join([]string{
		pick(rng, tw.AdjectivesGeneral),
		pick(rng, tw.AccommodationNouns),
		pick(rng, tw.LocationConnectors),
		pick(rng, tw.AdjectivesLocation),
		pick(rng, tw.PlaceNames),
	}, " ")
}

// ReviewText assembles a multi-clause review from the ordered template
// slots, filtered by sentiment where the slot has sentimented pools.
func ReviewText(rng *rand.Rand, t vocab.ReviewTemplates, s Sentiment) string {
	side := func(sl vocab.Sentimented) []string {
		if s == Negative {
			return sl.Negative
		}
		return sl.Positive
	}
	return fmt.Sprintf("%s! %s. %s, %s. %s %s. %s. %s. %s!",
		pick(rng, side(t.Openings)),
		pick(rng, side(t.Features)),
		capitalize(pick(rng, t.Intensifiers)),
		pick(rng, side(t.Experiences)),
		pick(rng, t.Connectors),
		pick(rng, side(t.HostDetails)),
		pick(rng, t.RandomDetails),
		capitalize(pick(rng, side(t.ComfortRatings))),
		pick(rng, side(t.FinalThoughts)),
	)
}

// Gibberish joins a random number of nonsense words, count in [min, max].
func Gibberish(rng *rand.Rand, pool []string, min, max int) string {
	n := min + rng.Intn(max-min+1)
	words := make([]string, n)
	for i := range words {
		words[i] = pick(rng, pool)
	}
	return strings.Join(words, " ")
}

// NotificationPayload builds the JSON payload of a notification: a random
// 1-4 word title with fixed body and type fields.
func NotificationPayload(rng *rand.Rand, gibberish []string) (string, error) {
	payload := struct {
		Title string `json:"title"`
		Body  string `json:"body"`
		Type  string `json:"type"`
	}{
		Title: Gibberish(rng, gibberish, 1, 4),
		Body:  "You have a new notification.",
		Type:  "info",
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal notification payload: %w", err)
	}
	return string(raw), nil
}

// RandomString returns n random alphanumeric characters.
func RandomString(rng *rand.Rand, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphanumeric[rng.Intn(len(alphanumeric))]
	}
	return string(b)
}

// PasswordHash returns a fixed-length string over the password alphabet.
func PasswordHash(rng *rand.Rand, length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = passwordAlphabet[rng.Intn(len(passwordAlphabet))]
	}
	return string(b)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
