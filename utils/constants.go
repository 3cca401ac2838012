package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = 10 * time.Minute

// BookingSessionPrefix is the prefix for booking-configurator session keys.
const BookingSessionPrefix = "booking:session:"

// WizardSessionPrefix is the prefix for class-creation wizard session keys.
const WizardSessionPrefix = "wizard:session:"

// SessionTTL is how long an idle booking or wizard session survives before
// Redis expires it. Sessions are memory-only; there is no resume after expiry.
const SessionTTL = 2 * time.Hour
