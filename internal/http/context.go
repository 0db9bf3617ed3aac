package http

import (
	"context"

	"github.com/circlecat/mentorship-dashboard/internal/application"
)

type contextKey string

const (
	principalContextKey contextKey = "principal"
	roundIDContextKey   contextKey = "round_id"
	meetingIDContextKey contextKey = "meeting_id"
)

// ContextWithPrincipal returns a derived context containing the authenticated principal.
func ContextWithPrincipal(ctx context.Context, principal application.Principal) context.Context {
	return context.WithValue(ctx, principalContextKey, principal)
}

// PrincipalFromContext extracts the authenticated principal from context if available.
func PrincipalFromContext(ctx context.Context) (application.Principal, bool) {
	principal, ok := ctx.Value(principalContextKey).(application.Principal)
	return principal, ok
}

// ContextWithRoundID injects the round identifier resolved from the request path.
func ContextWithRoundID(ctx context.Context, roundID string) context.Context {
	return context.WithValue(ctx, roundIDContextKey, roundID)
}

// RoundIDFromContext extracts a round identifier previously associated with the context.
func RoundIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(roundIDContextKey).(string)
	return id, ok
}

// ContextWithMeetingID injects the meeting identifier resolved from the request path.
func ContextWithMeetingID(ctx context.Context, meetingID string) context.Context {
	return context.WithValue(ctx, meetingIDContextKey, meetingID)
}

// MeetingIDFromContext extracts a meeting identifier previously associated with the context.
func MeetingIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(meetingIDContextKey).(string)
	return id, ok
}
