// Package registration implements the boost-gated address registration
// gatekeeper.
//
// It keeps Discord gateway wiring, outcome rendering, and telemetry isolated
// from the domain ledger so the registration state machine remains the single
// source of truth for acceptance decisions and slot numbering.
package registration
