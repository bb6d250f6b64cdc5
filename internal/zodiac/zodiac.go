package zodiac

import (
	"errors"
	"strings"
	"time"
)

// Tropical zodiac signs in calendar order starting from Aries.
const (
	Aries       = "aries"
	Taurus      = "taurus"
	Gemini      = "gemini"
	Cancer      = "cancer"
	Leo         = "leo"
	Virgo       = "virgo"
	Libra       = "libra"
	Scorpio     = "scorpio"
	Sagittarius = "sagittarius"
	Capricorn   = "capricorn"
	Aquarius    = "aquarius"
	Pisces      = "pisces"
)

var ErrUnknownSign = errors.New("unknown zodiac sign")

// signBound marks the first day of a sign within a calendar year.
type signBound struct {
	month time.Month
	day   int
	sign  string
}

// Boundaries use the common tropical dates. A birth date on the first
// day of a range belongs to the starting sign.
var bounds = []signBound{
	{time.January, 20, Aquarius},
	{time.February, 19, Pisces},
	{time.March, 21, Aries},
	{time.April, 20, Taurus},
	{time.May, 21, Gemini},
	{time.June, 21, Cancer},
	{time.July, 23, Leo},
	{time.August, 23, Virgo},
	{time.September, 23, Libra},
	{time.October, 23, Scorpio},
	{time.November, 22, Sagittarius},
	{time.December, 22, Capricorn},
}

// SignForDate returns the tropical zodiac sign for a birth date.
func SignForDate(t time.Time) string {
	sign := Capricorn // before Jan 20
	for _, b := range bounds {
		if t.Month() > b.month || (t.Month() == b.month && t.Day() >= b.day) {
			sign = b.sign
		}
	}
	return sign
}

var elements = map[string]string{
	Aries: "fire", Leo: "fire", Sagittarius: "fire",
	Taurus: "earth", Virgo: "earth", Capricorn: "earth",
	Gemini: "air", Libra: "air", Aquarius: "air",
	Cancer: "water", Scorpio: "water", Pisces: "water",
}

var modalities = map[string]string{
	Aries: "cardinal", Cancer: "cardinal", Libra: "cardinal", Capricorn: "cardinal",
	Taurus: "fixed", Leo: "fixed", Scorpio: "fixed", Aquarius: "fixed",
	Gemini: "mutable", Virgo: "mutable", Sagittarius: "mutable", Pisces: "mutable",
}

// complementary element pairings: fire feeds on air, earth holds water.
var harmonious = map[string]string{
	"fire":  "air",
	"air":   "fire",
	"earth": "water",
	"water": "earth",
}

// IsValid reports whether s names a known sign (case-insensitive).
func IsValid(s string) bool {
	_, ok := elements[strings.ToLower(s)]
	return ok
}

// Normalize lowercases a sign name, returning ErrUnknownSign for
// anything outside the twelve.
func Normalize(s string) (string, error) {
	n := strings.ToLower(strings.TrimSpace(s))
	if !IsValid(n) {
		return "", ErrUnknownSign
	}
	return n, nil
}

// Score computes an element/modality harmony score in [40, 95]. The
// function is symmetric: Score(a, b) == Score(b, a).
func Score(a, b string) (int, error) {
	a, err := Normalize(a)
	if err != nil {
		return 0, err
	}
	b, err = Normalize(b)
	if err != nil {
		return 0, err
	}

	score := 40
	ea, eb := elements[a], elements[b]
	switch {
	case a == b:
		score = 90
	case ea == eb:
		score = 82
	case harmonious[ea] == eb:
		score = 74
	default:
		score = 55
	}
	if a != b && modalities[a] == modalities[b] {
		score += 5
	}
	if score > 95 {
		score = 95
	}
	return score, nil
}

// Element returns the classical element of a normalized sign.
func Element(sign string) string {
	return elements[strings.ToLower(sign)]
}
