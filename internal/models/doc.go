// Package models defines the core domain models for settle.
//
// # Current Models
//
// The following models are actively used:
//   - Expense: One shared expense record from the ledger
//   - Roster: A reusable, ordered participant list
//
// Participants are identified by name strings (case-sensitive, no user
// accounts). A computation always runs against a fixed roster of names;
// expenses referencing unknown names are handled by the splitter with
// warnings, not errors.
//
// # Design Principles
//
//  1. **Values in, values out**: models are plain structs owned by the caller;
//     nothing here mutates shared state
//  2. **Raw fields preserved**: Expense.SharedWith keeps the spreadsheet's raw
//     comma-separated string so the splitter can apply its own resolution
//     rules (and warn) instead of losing information at the boundary
//  3. **Avoid circular references**: relationships use ID strings, not pointers
package models
