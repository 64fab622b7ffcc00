// Package timezone provides timezone utilities for the application.
//
// Usage Examples:
//
//  1. Basic usage after initialization:
//     now := timezone.Now()                    // Get current time in app timezone
//     today := timezone.Today()                // Midnight of the current calendar day
//
//  2. Calendar-day arithmetic used by the booking horizon:
//     tomorrow := timezone.StartOfDay(now).AddDate(0, 0, 1)
//
//  3. Parsing booking dates in app timezone:
//     t, err := timezone.Parse("2006-01-02", "2024-01-01")
//
// The timezone is configured via the APP_TIMEZONE environment variable
// and is automatically initialized when the package is imported.
// Use standard IANA timezone database names for reliable cross-platform compatibility.
package timezone
