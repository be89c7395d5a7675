// Package directory implements the user directory inside Terminal-Tribe.
//
// Layering:
// - domain: directory records, roles, resolution results, errors
// - application: commands/queries using explicit ports
// - ports: stable boundaries for persistence
// - adapters: concrete HTTP, memory, and postgres implementations
// - transport: module-private DTOs for HTTP contracts
//
// Boundary notes:
// - The directory record is the single authoritative source of a user's role.
//   Identity-provider token claims never carry privilege into this module.
// - Role resolution fails closed: any lookup failure degrades to USER.
package directory
