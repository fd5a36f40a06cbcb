package resolver

import "context"

// Resolver produces the assistant reply for a user utterance. Implementations
// never fail past this boundary: engine errors are handled internally and
// surfaced as fixed fallback text, so callers always get something to store.
type Resolver interface {
	Resolve(ctx context.Context, sessionID, text string) string
}
