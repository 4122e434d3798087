// Package models defines the client-side records exchanged with the Zenora
// API and kept in the session store.
package models

// User is the identity issued by the auth backend. It is replaced
// wholesale on re-login, never patched.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AuthResponse is returned by both login and signup.
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
