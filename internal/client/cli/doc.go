// Package cli provides the interactive PeerSphere command-line client.
//
// It wires the session store, the auth flow and the study workspace into a
// REPL. On start the client probes the backend health endpoint, then reads
// commands until EOF or "exit".
//
// Key features:
//   - Register / Login / Logout, with passwords read without echo
//   - Study spheres: create, join, list
//   - Decks and flashcards, notes, group chat, calendar events
//
// Commands that touch study data are protected: without a session they
// point the user to "login" and do nothing else. See App.Run and runREPL.
package cli
