// Package cli provides the interactive planting-calendar command-line client.
//
// It wires configuration, local storage, schedule data, and an interactive
// REPL. Typical flow: register a profile, pick a country and crop, review the
// month-by-month planting schedule, and manage reminders that are emailed on
// their due date by a background sweep.
//
// Key features:
//   - Register / Logout (local profile, gates every other command)
//   - Country / Crop selection with persisted preferences
//   - Schedule view for the selected pair
//   - Reminders: add, list, edit, delete (with confirmation)
//   - Manual email send and coordinate-based location lookup
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
