// Package api provides the HTTP REST API for Iso Tactics.
//
// Endpoints:
//
// Session Management:
//   - POST /api/sessions - Create new session ({"config_id": "classic"})
//   - GET /api/sessions - List sessions (?sort=created|accessed&order=asc|desc&limit=n)
//   - GET /api/sessions/unified - Several sessions side by side
//   - GET /api/sessions/{id} - Get specific session
//   - DELETE /api/sessions/{id} - Delete a session
//
// Game Operations:
//   - GET /api/sessions/{id}/state - Current GameState
//   - POST /api/sessions/{id}/select - Select own unit at {"x","y"}
//   - POST /api/sessions/{id}/clear-selection - Drop the selection
//   - POST /api/sessions/{id}/move - Move the selected unit to {"x","y"}
//   - POST /api/sessions/{id}/shoot - Fire at {"x","y"}; the AI answers
//   - POST /api/sessions/{id}/pass - Skip the shot; the AI answers
//   - POST /api/sessions/{id}/hover - Movement preview of the unit at {"x","y"}
//   - POST /api/sessions/{id}/reset - Start the scenario over
//
// Configuration:
//   - GET /api/configs - List scenarios
//   - GET /api/configs/{name} - Get one scenario
//   - POST /api/configs - Validate and save a scenario
//
// Other:
//   - GET /ws?session={id} - WebSocket state updates
//   - GET /health - Liveness
//
// Commands the rules refuse still answer 200 with "applied": false and a
// message; unknown sessions and scenarios answer 404, bad bodies 400.
// Errors are JSON:
//
//	{"error": "session not found: ..."}
//
// Every applied command is pushed to the session's websocket clients and
// logged as one line, for example:
//
//	[MOVE] session=3f9a1c2e target=(2,0) turn=0 phase=shoot events=2 status=OK
package api
