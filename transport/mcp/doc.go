// Package mcp exposes Iso Tactics to AI agents over the Model Context Protocol.
//
// Client is a thin proxy: every tool call becomes a request to the REST API,
// so agents, browsers and the terminal UI all see the same sessions.
//
// MCP Tools:
//   - create_session, list_sessions, get_session
//   - game_state: board drawing, unit list, side and phase
//   - select_unit, move_unit, shoot, pass_shot: the turn commands
//   - reachable_cells: movement preview of any unit
//   - describe_cell: terrain and occupant of one cell
//   - reset_game, list_configs, game_rules
//
// Transport Modes:
//   - Stdio: server.ServeStdio(client.GetMCPServer())
//   - HTTP: POST /mcp on the main server, handled with HandleMessage
//
// Usage:
//
//	client := mcp.NewClient("http://localhost:8080")
//	if err := server.ServeStdio(client.GetMCPServer()); err != nil {
//		log.Fatal(err)
//	}
package mcp
