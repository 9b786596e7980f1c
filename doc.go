// Package budget implements the core of a personal budgeting application:
// a settings document, an append-only transaction log, the aggregation
// engine that derives the monthly figures from it, and the chart projector
// that turns the log into display buckets.
//
// The core functionalities include:
//   - Ledger Management: Recording expenses, income, extra income, and
//     savings transfers in a chronological, append-only record.
//   - Aggregation: A stateless engine that recomputes disposable balance,
//     savings progress, and a spend-health verdict on every read.
//   - Chart Projection: Grouping the log into display buckets (by day or
//     by month) with stacked income/extra/expense series.
//   - Data Persistence: Two documents (settings and transaction log)
//     persisted through the Store interface, with a plain-file backend and
//     a sqlite backend.
//
// This package serves as the foundational logic for the `biq` command-line
// tool; all derived figures are pure functions of (Settings, Ledger) and
// are never cached.
package budget
