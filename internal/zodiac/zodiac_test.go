package zodiac

import (
	"testing"
	"time"
)

func date(m time.Month, d int) time.Time {
	return time.Date(1990, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSignForDateBoundaries(t *testing.T) {
	cases := []struct {
		when time.Time
		want string
	}{
		{date(time.January, 1), Capricorn},
		{date(time.January, 19), Capricorn},
		{date(time.January, 20), Aquarius},
		{date(time.March, 20), Pisces},
		{date(time.March, 21), Aries},
		{date(time.April, 19), Aries},
		{date(time.April, 20), Taurus},
		{date(time.August, 22), Leo},
		{date(time.August, 23), Virgo},
		{date(time.December, 21), Sagittarius},
		{date(time.December, 22), Capricorn},
		{date(time.December, 31), Capricorn},
	}
	for _, c := range cases {
		if got := SignForDate(c.when); got != c.want {
			t.Errorf("SignForDate(%s) = %s, want %s", c.when.Format("Jan 2"), got, c.want)
		}
	}
}

func TestScoreSymmetry(t *testing.T) {
	signs := []string{Aries, Taurus, Gemini, Cancer, Leo, Virgo, Libra, Scorpio, Sagittarius, Capricorn, Aquarius, Pisces}
	for _, a := range signs {
		for _, b := range signs {
			sa, err := Score(a, b)
			if err != nil {
				t.Fatalf("Score(%s, %s) error: %v", a, b, err)
			}
			sb, err := Score(b, a)
			if err != nil {
				t.Fatalf("Score(%s, %s) error: %v", b, a, err)
			}
			if sa != sb {
				t.Errorf("Score not symmetric for %s/%s: %d vs %d", a, b, sa, sb)
			}
			if sa < 40 || sa > 95 {
				t.Errorf("Score(%s, %s) = %d out of range", a, b, sa)
			}
		}
	}
}

func TestScoreRelations(t *testing.T) {
	same, _ := Score(Leo, Leo)
	element, _ := Score(Leo, Aries)
	complement, _ := Score(Leo, Libra)
	clash, _ := Score(Leo, Scorpio)

	if same != 90 {
		t.Errorf("same-sign score = %d, want 90", same)
	}
	if element <= complement {
		t.Errorf("same-element score %d should beat complementary %d", element, complement)
	}
	if complement <= clash {
		t.Errorf("complementary score %d should beat clashing %d", complement, clash)
	}
}

func TestScoreCaseInsensitive(t *testing.T) {
	a, err := Score("Leo", "ARIES")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, _ := Score(Leo, Aries)
	if a != b {
		t.Errorf("case-insensitive score mismatch: %d vs %d", a, b)
	}
}

func TestScoreUnknownSign(t *testing.T) {
	if _, err := Score("leo", "ophiuchus"); err == nil {
		t.Fatal("expected error for unknown sign")
	}
}
