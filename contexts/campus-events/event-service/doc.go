// Package eventservice implements campus events inside Terminal-Tribe.
//
// Layering:
// - domain: event/attendance entities, the status state machine, errors
// - application: commands/queries/workers using explicit ports
// - ports: stable boundaries for persistence, notifications, event publishing
// - adapters: concrete HTTP, memory, and postgres implementations
// - transport: module-private DTOs for HTTP contracts
//
// Status transitions are the only stateful part: PENDING moves to APPROVED or
// REJECTED under admin moderation, and any live event can be CANCELLED by its
// creator or an admin. CANCELLED is terminal.
package eventservice
