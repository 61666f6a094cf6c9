package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/wricardo/isotactics/game/engine"
	"github.com/wricardo/isotactics/game/grid"
	"github.com/wricardo/isotactics/game/service"
)

// Client is a thin MCP client that proxies to the REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
}

// NewClient creates a new MCP client that calls the REST API
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	c.initMCPServer()
	return c
}

// initMCPServer initializes the MCP server with all tools
func (c *Client) initMCPServer() {
	c.mcpServer = server.NewMCPServer(
		"Iso Tactics",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`Iso Tactics - MCP Interface

This is a thin client that proxies all requests to the REST API server.

You command side A on a grid against an AI that commands side B. Each turn you
select one of your units, move it, then shoot along a straight line or pass.
The AI answers before your next turn starts. Destroy every B unit.

AVAILABLE TOOLS:
- create_session / list_sessions / get_session: manage games
- game_state: board, units and whose turn it is
- select_unit: pick one of your units and see where it can go
- move_unit: move the selected unit (optionally select it in the same call)
- shoot / pass_shot: finish your turn
- reachable_cells: movement preview of any unit, yours or the AI's
- describe_cell: terrain and occupant of a single cell
- reset_game, list_configs, game_rules

Coordinates are 0-based; x grows to the right, y grows downward.`),
	)

	c.registerTools()
}

func sessionProp() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Session ID",
	}
}

func coordProp(desc string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "integer",
		"description": desc,
	}
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	// Session management
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "create_session",
		Description: "Create a new game session with optional scenario selection",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"config_id": map[string]interface{}{
					"type":        "string",
					"description": "Scenario to use (optional, see list_configs)",
				},
			},
		},
	}, c.handleCreateSession)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_sessions",
		Description: "List all active game sessions",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListSessions)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "get_session",
		Description: "Get details of a specific session",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{"session_id": sessionProp()},
			Required:   []string{"session_id"},
		},
	}, c.handleGetSession)

	// Game operations
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_state",
		Description: "Get the current board, units, active side and phase",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{"session_id": sessionProp()},
			Required:   []string{"session_id"},
		},
	}, c.handleGameState)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "select_unit",
		Description: "Select your unit at (x,y) and list the cells it can move to",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionProp(),
				"x":          coordProp("Column of your unit (0-based)"),
				"y":          coordProp("Row of your unit (0-based)"),
			},
			Required: []string{"session_id", "x", "y"},
		},
	}, c.handleSelectUnit)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "move_unit",
		Description: "Move the selected unit to (x,y). Moving onto an enemy destroys it. Pass unit_x/unit_y to select the unit first.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionProp(),
				"x":          coordProp("Destination column"),
				"y":          coordProp("Destination row"),
				"unit_x":     coordProp("Column of the unit to select first (optional)"),
				"unit_y":     coordProp("Row of the unit to select first (optional)"),
				"intent": map[string]interface{}{
					"type":        "string",
					"description": "Brief explanation of the intent behind this move",
				},
			},
			Required: []string{"session_id", "x", "y"},
		},
	}, c.handleMoveUnit)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "shoot",
		Description: "Fire the unit that just moved at (x,y), which must lie in one of its firing lanes. The AI then takes its turn.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionProp(),
				"x":          coordProp("Target column"),
				"y":          coordProp("Target row"),
			},
			Required: []string{"session_id", "x", "y"},
		},
	}, c.handleShoot)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "pass_shot",
		Description: "Skip the shot after moving. The AI then takes its turn.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{"session_id": sessionProp()},
			Required:   []string{"session_id"},
		},
	}, c.handlePassShot)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "reachable_cells",
		Description: "List the cells the unit at (x,y) could move to this turn. Works for AI units, useful to check threats.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionProp(),
				"x":          coordProp("Column of the unit"),
				"y":          coordProp("Row of the unit"),
			},
			Required: []string{"session_id", "x", "y"},
		},
	}, c.handleReachableCells)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "describe_cell",
		Description: "Get the terrain and occupant of one cell",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionProp(),
				"x":          coordProp("X coordinate (column) of the cell (0-based)"),
				"y":          coordProp("Y coordinate (row) of the cell (0-based)"),
			},
			Required: []string{"session_id", "x", "y"},
		},
	}, c.handleDescribeCell)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "reset_game",
		Description: "Start the session's scenario over",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{"session_id": sessionProp()},
			Required:   []string{"session_id"},
		},
	}, c.handleReset)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_configs",
		Description: "List available scenarios",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListConfigs)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_rules",
		Description: "Get the complete rules of the game",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleGameRules)
}

// GetMCPServer returns the underlying MCP server for serving
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// Helper methods for API calls

func (c *Client) apiCall(ctx context.Context, method, path string, body interface{}, result interface{}) error {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]string
		json.NewDecoder(resp.Body).Decode(&errResp)
		if msg, ok := errResp["error"]; ok {
			return fmt.Errorf("%s", msg)
		}
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

func arguments(request mcp.CallToolRequest) map[string]interface{} {
	args, _ := request.Params.Arguments.(map[string]interface{})
	if args == nil {
		args = map[string]interface{}{}
	}
	return args
}

// intArg reads a JSON number argument
func intArg(args map[string]interface{}, name string) (int, bool) {
	switch v := args[name].(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	}
	return 0, false
}

func positionArgs(args map[string]interface{}, xName, yName string) (grid.Position, error) {
	x, okX := intArg(args, xName)
	y, okY := intArg(args, yName)
	if !okX || !okY {
		return grid.Position{}, fmt.Errorf("%s and %s must be integers", xName, yName)
	}
	return grid.Position{X: x, Y: y}, nil
}

// Tool handlers

func (c *Client) handleCreateSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	configID, _ := args["config_id"].(string)

	body := map[string]string{}
	if configID != "" {
		body["config_id"] = configID
	}

	var session service.SessionInfo
	if err := c.apiCall(ctx, "POST", "/api/sessions", body, &session); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Created session: %s\nConfig: %s\n\n%s", session.ID, session.ConfigName, formatGameState(session.GameState))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListSessions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Count    int                   `json:"count"`
		Sessions []service.SessionInfo `json:"sessions"`
	}

	if err := c.apiCall(ctx, "GET", "/api/sessions", nil, &response); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Active Sessions (%d):\n\n", response.Count)
	for _, s := range response.Sessions {
		turn := 0
		if s.GameState != nil {
			turn = s.GameState.Turn
		}
		fmt.Fprintf(&b, "- %s (Config: %s, Turn: %d, Created: %s)\n",
			s.ID, s.ConfigName, turn, s.CreatedAt.Format("15:04:05"))
	}

	return mcp.NewToolResultText(b.String()), nil
}

func (c *Client) handleGetSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, _ := arguments(request)["session_id"].(string)

	var session service.SessionInfo
	if err := c.apiCall(ctx, "GET", fmt.Sprintf("/api/sessions/%s", sessionID), nil, &session); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Session: %s\nConfig: %s\nCreated: %s\n\n%s",
		session.ID, session.ConfigName, session.CreatedAt.Format(time.RFC3339), formatGameState(session.GameState))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGameState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, _ := arguments(request)["session_id"].(string)

	var state engine.GameState
	if err := c.apiCall(ctx, "GET", fmt.Sprintf("/api/sessions/%s/state", sessionID), nil, &state); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatGameState(&state)), nil
}

// postAction posts a command and formats its ActionResult
func (c *Client) postAction(ctx context.Context, sessionID, action string, body interface{}) (*service.ActionResult, error) {
	var result service.ActionResult
	if err := c.apiCall(ctx, "POST", fmt.Sprintf("/api/sessions/%s/%s", sessionID, action), body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) handleSelectUnit(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	sessionID, _ := args["session_id"].(string)
	pos, err := positionArgs(args, "x", "y")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := c.postAction(ctx, sessionID, "select", pos)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(formatActionResult(result)), nil
}

func (c *Client) handleMoveUnit(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	sessionID, _ := args["session_id"].(string)
	pos, err := positionArgs(args, "x", "y")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	// Intent is only there to make the caller think
	_, _ = args["intent"].(string)

	if _, hasUnit := args["unit_x"]; hasUnit {
		unit, err := positionArgs(args, "unit_x", "unit_y")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		sel, err := c.postAction(ctx, sessionID, "select", unit)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if !sel.Applied {
			return mcp.NewToolResultText(formatActionResult(sel)), nil
		}
	}

	result, err := c.postAction(ctx, sessionID, "move", pos)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(formatActionResult(result)), nil
}

func (c *Client) handleShoot(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	sessionID, _ := args["session_id"].(string)
	pos, err := positionArgs(args, "x", "y")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := c.postAction(ctx, sessionID, "shoot", pos)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(formatActionResult(result)), nil
}

func (c *Client) handlePassShot(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, _ := arguments(request)["session_id"].(string)

	result, err := c.postAction(ctx, sessionID, "pass", nil)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(formatActionResult(result)), nil
}

func (c *Client) handleReachableCells(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	sessionID, _ := args["session_id"].(string)
	pos, err := positionArgs(args, "x", "y")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var hover service.HoverResult
	if err := c.apiCall(ctx, "POST", fmt.Sprintf("/api/sessions/%s/hover", sessionID), pos, &hover); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if hover.Unit == nil {
		return mcp.NewToolResultText(fmt.Sprintf("No unit at (%d,%d)", pos.X, pos.Y)), nil
	}
	u := hover.Unit
	result := fmt.Sprintf("%s (side %s, health %d/%d, speed %d) at (%d,%d) can reach %d cells:\n%s",
		u.Name, u.Team, u.Health, u.MaxHealth, u.MoveSpeed, pos.X, pos.Y, len(hover.Cells), formatCells(hover.Cells))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleDescribeCell(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	sessionID, _ := args["session_id"].(string)
	pos, err := positionArgs(args, "x", "y")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var state engine.GameState
	if err := c.apiCall(ctx, "GET", fmt.Sprintf("/api/sessions/%s/state", sessionID), nil, &state); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(describeCell(&state, pos)), nil
}

func (c *Client) handleReset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, _ := arguments(request)["session_id"].(string)

	var response struct {
		Message string            `json:"message"`
		State   *engine.GameState `json:"state"`
	}

	if err := c.apiCall(ctx, "POST", fmt.Sprintf("/api/sessions/%s/reset", sessionID), nil, &response); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("%s\n\n%s", response.Message, formatGameState(response.State))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListConfigs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var configs []service.ConfigInfo
	if err := c.apiCall(ctx, "GET", "/api/configs", nil, &configs); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var b strings.Builder
	b.WriteString("Available Scenarios:\n\n")
	for _, config := range configs {
		layout := "random terrain"
		if config.FixedLayout {
			layout = "fixed layout"
		}
		fmt.Fprintf(&b, "• %s (config_id: %s)\n  %s\n  Board: %dx%d, Units per side: %d, %s\n\n",
			config.Name, config.ConfigID, config.Description, config.Width, config.Height, config.UnitsPerSide, layout)
	}

	return mcp.NewToolResultText(b.String()), nil
}

const gameRules = `Iso Tactics - Rules

SIDES:
• You command side A. The AI commands side B.
• Each unit has health and a movement speed (yours and the AI's may differ).

TERRAIN:
• '.' Empty - walkable, does not stop shots
• '*' Soft cover - walkable, stops a shot (the covered cell itself can still be hit)
• '#' Solid - blocks movement and shots
• '=' Transparent - blocks movement, shots fly over it

YOUR TURN:
1. Select one of your units (select_unit).
2. Move it (move_unit). It walks up to its speed in steps, one cell
   up/down/left/right at a time, around solid and transparent terrain.
   It cannot walk through other units. Moving onto an enemy destroys it
   on the spot, but the unit cannot continue past that enemy.
3. Shoot (shoot) or pass (pass_shot). Shots travel in the four straight
   lines from the unit. A lane passes your own units, stops at the first
   enemy (which can be hit), stops after a soft cover cell and ends at
   solid terrain. A hit deals 1 damage; a unit at 0 health is destroyed.

AI TURN:
• After your shot or pass, one random AI unit moves. If it can reach one of
  your units it moves onto it and destroys it. Otherwise it walks to a
  random reachable cell. The AI never shoots.

WINNING:
• The game reports a winner once one side has no units left; play is not
  locked afterwards, reset_game starts over.

TIPS:
• Use reachable_cells on AI units to see which of your units are in danger.
• Soft cover between you and the AI protects units behind it from shots.
`

func (c *Client) handleGameRules(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(gameRules), nil
}

// Formatting helpers

// renderBoard draws terrain with units on top: uppercase letters for side A,
// lowercase for side B, 'o' for overlay cells.
func renderBoard(state *engine.GameState) string {
	if state == nil || len(state.Terrain) == 0 {
		return ""
	}
	rows := make([][]rune, len(state.Terrain))
	for y, row := range state.Terrain {
		rows[y] = []rune(row)
	}
	for _, p := range state.Overlay {
		if p.Y >= 0 && p.Y < len(rows) && p.X >= 0 && p.X < len(rows[p.Y]) {
			rows[p.Y][p.X] = 'o'
		}
	}
	for _, u := range state.Units {
		p := u.Position
		if p.Y < 0 || p.Y >= len(rows) || p.X < 0 || p.X >= len(rows[p.Y]) {
			continue
		}
		mark := 'A'
		if u.Team == "B" {
			mark = 'b'
		}
		rows[p.Y][p.X] = mark
	}

	var b strings.Builder
	b.WriteString("   ")
	for x := 0; x < state.Width; x++ {
		fmt.Fprintf(&b, "%d", x%10)
	}
	b.WriteString("\n")
	for y, row := range rows {
		fmt.Fprintf(&b, "%2d %s\n", y, string(row))
	}
	return b.String()
}

func formatUnits(state *engine.GameState) string {
	var b strings.Builder
	for _, u := range state.Units {
		marker := " "
		if state.Selected != nil && *state.Selected == u.Slot {
			marker = "*"
		}
		fmt.Fprintf(&b, "%s %s %-8s (%d,%d) health %d/%d speed %d\n",
			marker, u.Team, u.Name, u.Position.X, u.Position.Y, u.Health, u.MaxHealth, u.MoveSpeed)
	}
	return b.String()
}

func formatGameState(state *engine.GameState) string {
	if state == nil {
		return "State: unavailable"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Scenario: %s  Board: %dx%d  Turn: %d\n", state.ConfigName, state.Width, state.Height, state.Turn)
	fmt.Fprintf(&b, "Active side: %s  Phase: %s\n", state.ActiveTeam, state.Phase)
	if state.Winner != "" {
		fmt.Fprintf(&b, "🏁 WINNER: side %s\n", state.Winner)
	}
	b.WriteString("\n")
	b.WriteString(renderBoard(state))
	b.WriteString("\nUnits:\n")
	b.WriteString(formatUnits(state))

	switch {
	case state.Phase == "shoot":
		fmt.Fprintf(&b, "\nFiring lanes cover %d cells. Use shoot or pass_shot.\n", len(state.Overlay))
	case state.Selected != nil:
		fmt.Fprintf(&b, "\nSelected unit can reach %d cells (marked o).\n", len(state.Overlay))
	}
	return b.String()
}

func formatActionResult(result *service.ActionResult) string {
	var b strings.Builder
	if result.Applied {
		fmt.Fprintf(&b, "✓ %s: %s\n", result.Action, result.Message)
	} else {
		fmt.Fprintf(&b, "✗ %s rejected: %s\n", result.Action, result.Message)
	}
	if len(result.Events) > 0 {
		b.WriteString("\nEvents:\n")
		for _, ev := range result.Events {
			fmt.Fprintf(&b, "- [%s] %s\n", ev.Type, ev.Message)
		}
	}
	b.WriteString("\n")
	b.WriteString(formatGameState(result.GameState))
	return b.String()
}

func formatCells(cells []grid.Position) string {
	parts := make([]string, 0, len(cells))
	for _, p := range cells {
		parts = append(parts, fmt.Sprintf("(%d,%d)", p.X, p.Y))
	}
	return strings.Join(parts, " ")
}

func describeCell(state *engine.GameState, pos grid.Position) string {
	if pos.Y < 0 || pos.Y >= len(state.Terrain) || pos.X < 0 || pos.X >= len(state.Terrain[pos.Y]) {
		return fmt.Sprintf("Coordinates (%d,%d) are out of bounds. Board is %dx%d (x 0-%d, y 0-%d)",
			pos.X, pos.Y, state.Width, state.Height, state.Width-1, state.Height-1)
	}

	terrain, ok := engine.TerrainFromChar(state.Terrain[pos.Y][pos.X])
	if !ok {
		return fmt.Sprintf("Cell (%d,%d) has unknown terrain %q", pos.X, pos.Y, state.Terrain[pos.Y][pos.X])
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Cell (%d,%d): %s '%c'\n", pos.X, pos.Y, terrain, terrain.Char())
	fmt.Fprintf(&b, "Walkable: %t\n", !terrain.BlocksMovement())
	switch terrain {
	case engine.Soft:
		b.WriteString("Stops shots after this cell\n")
	case engine.Solid:
		b.WriteString("Stops shots before this cell\n")
	default:
		b.WriteString("Shots pass over\n")
	}
	for _, u := range state.Units {
		if u.Position == pos {
			fmt.Fprintf(&b, "Occupant: %s of side %s, health %d/%d\n", u.Name, u.Team, u.Health, u.MaxHealth)
		}
	}
	return b.String()
}
