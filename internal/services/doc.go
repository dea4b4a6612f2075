// Package services defines shared utilities consumed by the remote service
// clients.
//
// Key responsibilities:
//   - Context helpers that stamp correlation identifiers so requests can be
//     traced across client logs and server logs.
package services
