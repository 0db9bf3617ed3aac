// Package http provides HTTP handlers and middleware for the mentorship
// dashboard API.
//
// The router exposes the following endpoints:
//   - POST /sessions: issues a session token. Body: {"email","password"}.
//     Response: {"token","expires_at","account"} with the token also surfaced
//     via the `X-Session-Token` header and a `session_token` cookie.
//   - DELETE /sessions/current: revokes the current session token extracted
//     from the Authorization header or session cookie and clears the cookie.
//   - DELETE /sessions/{token}: administrator controlled revocation of an
//     arbitrary session token.
//   - GET /rounds, POST /rounds, GET/PUT/DELETE /rounds/{id}: round catalog
//     endpoints exchanging the `roundDTO` payload defined in round_handler.go.
//     Listing and fetching are available to any authenticated principal while
//     mutations require admin privileges.
//   - GET /reports/overview and GET /reports/participants: admin reporting
//     endpoints aggregating mentorship statistics, filterable by the `round`
//     query parameter (default "all").
//   - GET /users: the admin user table, controlled by the `search`, `groups`,
//     `include_terminated`, `sort` and `direction` query parameters.
//   - GET /me/participations: the caller's round enrollments joined with
//     catalog state such as the registration deadline.
//   - POST /me/participations/{roundID}/meetings and
//     DELETE /me/participations/{roundID}/meetings/{meetingID}: meeting
//     scheduling and cancellation inside one participation.
//   - PUT /me/participations/{roundID}/registration: saves the caller's
//     next-round registration.
//   - GET /me/profile plus PUT /me/profile/{basics,experience,education,
//     training}: the caller's profile page and its section replacements.
//
// Request/response DTOs live alongside their respective handlers so tests and
// documentation share the same ground truth.
package http
