// Package order provides domain entities and business logic for the cake
// marketplace order lifecycle. It implements the Order aggregate root with
// quote competition, messaging, and time-windowed cancellation rules.
//
// The package includes:
//   - Order: The aggregate root owning quotes, messages, and lifecycle state
//   - Status: The order state machine (posted through delivered/cancelled)
//   - Quote: A baker's offer on a posted order, at most one active per baker
//   - ChatMessage: An append-only conversation log entry
//   - CakeDesign: The immutable design snapshot captured at order creation
//
// Key business rules:
//   - Orders start posted; delivered and cancelled are terminal
//   - Resubmitting a quote replaces the baker's previous quote in place
//   - A buyer may cancel a posted order at any time; after assignment only
//     within 24 hours of assignment and with more than 3 days of delivery
//     lead time remaining
//   - An assigned baker may decline within 24 hours of assignment,
//     regardless of delivery lead time (intentionally asymmetric)
//   - Guarded operations that are not permitted leave the order unchanged
//     and report false rather than returning an error
//
// Time-window predicates take an explicit evaluation instant so they stay
// pure functions of the aggregate.
package order
