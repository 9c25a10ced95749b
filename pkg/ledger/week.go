package ledger

import "time"

// WeeklyFreeLimit is the number of free AI usages per calendar week.
const WeeklyFreeLimit = 1

// Clock supplies the current time to the service.
type Clock interface {
	Now() time.Time
}

// NextMonday returns midnight UTC of the first Monday strictly after the UTC
// calendar day of now.
func NextMonday(now time.Time) time.Time {
	utc := now.UTC()
	days := (8 - int(utc.Weekday())) % 7
	if days == 0 {
		days = 7
	}
	midnight := time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)
	return midnight.AddDate(0, 0, days)
}

func weeklyFreeAvailable(account CreditAccount, now time.Time) bool {
	if !now.Before(account.WeeklyFreeReset) {
		return true
	}
	return account.WeeklyFreeUsed < WeeklyFreeLimit
}
