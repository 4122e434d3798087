// Package common contains constants and small helpers shared by the Zenora
// client packages.
package common

const (
	// AuthorizationHeaderName carries the session credential on outbound
	// requests as "Bearer <token>".
	AuthorizationHeaderName = "Authorization"
	BearerPrefix            = "Bearer "

	// SessionNamespace is the durable key the session record lives under.
	SessionNamespace = "zenora-auth"
)
