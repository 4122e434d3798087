// Package cli provides the interactive Zenora command-line client.
//
// The App wires the session store, the route guard and the services into a
// read-eval-print loop. Commands that show personal data (history, journal,
// mood) pass through the guard first; a user without a session is sent to
// the login prompt.
//
// Assessment saves run in the background. The loop collects finished saves
// before each prompt and reports them as notices, so a slow backend never
// blocks input.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
