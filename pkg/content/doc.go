// Package content models the payloads accepted by the Kuverta content API.
//
// A Content bundles a recipient, one or more file parts and optional payment
// or context information (an invoice or a booking). Entities are plain value
// objects built up field by field; Validate reports whether an entity is
// complete and consistent, and Wire renders it into the exact map shape the
// platform expects, with unset fields omitted entirely.
//
// Validate and Wire are deliberately independent: Wire never rejects, so a
// partially built entity still serializes to a partial map. Callers that want
// the platform to see only well formed payloads should call Validate first,
// which is what the client package does before dispatching.
package content
