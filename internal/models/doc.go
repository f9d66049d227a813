// Package models defines the core domain models for SettleUp.
//
// # Models
//
//   - User: registered account, identified by UUID
//   - Group: a set of users who share expenses
//   - Expense: a shared cost with payer and split-recipient sets
//   - Payment: money actually moved between two users to settle debt
//   - Transfer: a recommended settlement payment (engine output, ephemeral)
//   - Balance: one user's net position in a group (engine output, ephemeral)
//
// # Design Principles
//
//  1. Monetary amounts are money.Amount (integer minor units) everywhere;
//     decimal strings exist only at the transport boundary.
//  2. Relationships use ID strings instead of pointers to avoid circular
//     references.
//  3. Transfer and Balance are never persisted: they are recomputed from the
//     expense/payment snapshot on every request.
package models
