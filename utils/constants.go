// File: utils/constants.go
package utils

import "time"

// SessionCachePrefix is the prefix used for Redis booking session keys.
const SessionCachePrefix = "booking:sess:"

// SessionTTL is the time-to-live for booking sessions.
const SessionTTL = 30 * time.Minute

// CurrencyGlyph is the taka sign clients prepend to integer amounts.
const CurrencyGlyph = "৳"
