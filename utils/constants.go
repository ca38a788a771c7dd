// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = time.Hour

// OTPPrefix is the prefix of registration codes in the OTP store.
const OTPPrefix = "otp:"

// OTPTTL bounds how long a registration code stays valid.
const OTPTTL = 10 * time.Minute
