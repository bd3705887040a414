// Package cli provides the interactive shopkeeper terminal client.
//
// It wires configuration, the local session database, the API client and
// services, and an interactive REPL. The session is restored before the
// first prompt, so a previous login survives restarts.
//
// Key features:
//   - Login / Logout / Whoami
//   - Products: fetch and print the catalog
//   - Users: fetch, search locally, create
//
// The REPL is started via App.Run(ctx), which blocks until the user exits
// or stdin is closed. See App and runREPL for details.
package cli
