package constant

// Client types form a closed set; route metadata references these tags.
const (
	ClientTypeAdmin  = "admin"
	ClientTypeMember = "member"
)

// FingerprintCookieName is the http-only cookie carrying the random
// fingerprint value bound into every issued token.
const FingerprintCookieName = "__secure_fgp"

// ActiveClientLocalsKey is where the gate stashes the resolved identity
// for downstream handlers.
const ActiveClientLocalsKey = "activeClient"

// API paths.
const (
	SignUpPath       = "/api/v1/sign-up"
	SignInPath       = "/api/v1/sign-in"
	SignOutPath      = "/api/v1/sign-out"
	ActiveClientPath = "/api/v1/active-client"
)

// TokenTolerantPaths lists the endpoints where a missing bearer token is
// acceptable; everywhere else absence is an authorization failure.
var TokenTolerantPaths = []string{
	SignInPath,
	SignUpPath,
	SignOutPath,
	ActiveClientPath,
}

// DefaultLocale is used when neither the client record nor the request
// carries a locale.
const DefaultLocale = "ru"
