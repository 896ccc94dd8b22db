// Package cli provides the interactive HirePilot command-line client.
//
// It wires configuration, the credential store, the file intake manager, the
// API client, and an interactive REPL driving the analysis workflow. Typical
// flow: log in (or register), paste a job description, attach resume files,
// run "analyze", and browse the ranked results.
//
// Commands behind the session guard refuse to run until the user logs in;
// everything else mirrors the workflow of the screening dashboard.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
