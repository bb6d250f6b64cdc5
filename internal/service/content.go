package service

import (
	"fmt"
	"time"
)

const monthlyCalendarService = "Monthly Astro Calendar"

// generateReading produces the reading title and body for a purchased
// service. A few offerings get bespoke generated content; everything
// else receives the generic templated reading.
func generateReading(serviceName, customerEmail string, now time.Time) (title, content string) {
	if customerEmail == "" {
		customerEmail = "Valued Customer"
	}
	if serviceName == monthlyCalendarService {
		month := now.Month().String()
		return fmt.Sprintf("%s Astro Calendar", month), monthlyAstroCalendar(customerEmail, now)
	}
	title = fmt.Sprintf("Your %s Reading", serviceName)
	content = fmt.Sprintf(`# Your %s Reading

Thank you for your purchase! Your personalized reading has been generated.

## Your Reading

Based on your purchase of %s, here is your personalized cosmic guidance:

*This is a personalized reading generated specifically for you. The content reflects the cosmic energies at the time of your purchase.*

Your reading includes detailed insights tailored to your current cosmic profile. Please save this reading for future reference.

**Note:** For the most accurate readings, please ensure your birth information is complete in your profile.`, serviceName, serviceName)
	return title, content
}

// monthlyAstroCalendar renders the month-calendar reading with
// week-range section headers computed from the purchase month.
func monthlyAstroCalendar(customerEmail string, now time.Time) string {
	month := now.Month().String()
	year := now.Year()

	return fmt.Sprintf(`# %s %d Astro Calendar for %s

## This Month's Cosmic Highlights

Welcome to your personalized %s astro calendar! The stars have aligned some powerful energies for you this month.

### Key Dates to Watch:

**Week 1 (%s)**
- New Moon Energy: Fresh starts in love and career
- Best days for important conversations: Monday & Wednesday
- Mercury influence: Clear communication in relationships

**Week 2 (%s)**
- Venus Transit: Romance and creativity peak
- Ideal time for first dates or rekindling romance
- Financial opportunities may present themselves

**Week 3 (%s)**
- Full Moon Manifestation: Your intentions reach peak power
- Best time for major decisions and commitments
- Past relationships may resurface for closure

**Week 4 (%s)**
- Reflection and Planning: Prepare for next month's energies
- Perfect time for self-care and spiritual practices
- Career opportunities may emerge toward month's end

### Daily Affirmations for %s:
- "I am aligned with cosmic abundance"
- "Love flows to me effortlessly"
- "I trust the universe's perfect timing"

### Monthly Ritual Suggestion:
Light a white candle on the New Moon and set three intentions for love, career, and personal growth. Keep this energy alive throughout the month.

*Your astro calendar has been personally crafted based on current planetary movements and your purchase date.*`,
		month, year, customerEmail, month,
		weekRange(now, 1), weekRange(now, 2), weekRange(now, 3), weekRange(now, 4),
		month)
}

// weekRange formats the day span of the nth week of the current month,
// e.g. "8-14" for week 2.
func weekRange(now time.Time, week int) string {
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	start := startOfMonth.AddDate(0, 0, (week-1)*7)
	end := start.AddDate(0, 0, 6)
	return fmt.Sprintf("%d-%d", start.Day(), end.Day())
}
