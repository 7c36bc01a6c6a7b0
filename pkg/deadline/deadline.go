// Package deadline formats the time remaining until a challenge deadline.
// The granularity intentionally coarsens as the deadline approaches: days,
// then hours, then "< 1 hour".
package deadline

import (
	"fmt"
	"time"
)

// TimeRemaining returns a localized countdown string for the given deadline.
// Supported locales are "de" and "en"; anything else falls back to German,
// the app's primary language.
func TimeRemaining(deadline time.Time, locale string) string {
	german := locale != "en"
	diff := time.Until(deadline)

	if diff <= 0 {
		if german {
			return "Abgelaufen"
		}
		return "Expired"
	}

	days := int(diff / (24 * time.Hour))
	if days > 0 {
		if german {
			if days == 1 {
				return "1 Tag"
			}
			return fmt.Sprintf("%d Tage", days)
		}
		if days == 1 {
			return "1 day"
		}
		return fmt.Sprintf("%d days", days)
	}

	hours := int(diff / time.Hour)
	if hours > 0 {
		if german {
			if hours == 1 {
				return "1 Stunde"
			}
			return fmt.Sprintf("%d Stunden", hours)
		}
		if hours == 1 {
			return "1 hour"
		}
		return fmt.Sprintf("%d hours", hours)
	}

	if german {
		return "< 1 Stunde"
	}
	return "< 1 hour"
}
