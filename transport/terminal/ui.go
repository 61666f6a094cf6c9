package terminal

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/wricardo/isotactics/game/engine"
	"github.com/wricardo/isotactics/game/grid"
	"github.com/wricardo/isotactics/game/service"
)

const (
	// screen columns per board cell
	cellWidth = 3
	boardLeft = 1
	boardTop  = 1
	maxLog    = 5
)

var (
	styleDefault   = tcell.StyleDefault
	styleSoft      = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleSolid     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleClear     = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	styleSideA     = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleSideB     = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	overlayBg      = tcell.ColorNavy
	hoverBg        = tcell.ColorPurple
	styleStatus    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleHelp      = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleRejection = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

// UI plays one session in a terminal
type UI struct {
	svc       service.GameService
	sessionID string
	screen    tcell.Screen

	cursor  grid.Position
	state   *engine.GameState
	hover   map[grid.Position]bool
	message string
	refused bool
	events  []string
}

// New creates a UI for an existing session. The screen must already be initialized.
func New(svc service.GameService, sessionID string, screen tcell.Screen) *UI {
	return &UI{
		svc:       svc,
		sessionID: sessionID,
		screen:    screen,
		hover:     map[grid.Position]bool{},
		message:   "Select a unit with Enter",
	}
}

// Run draws and handles input until the player quits or ctx ends
func (u *UI) Run(ctx context.Context) error {
	if err := u.refresh(ctx); err != nil {
		return err
	}
	u.draw()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := u.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !u.HandleEvent(ctx, ev) {
				return nil
			}
			u.draw()
		}
	}
}

// HandleEvent applies one input event; it returns false when the player quits
func (u *UI) HandleEvent(ctx context.Context, ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return u.handleKey(ctx, ev)
	case *tcell.EventResize:
		u.screen.Sync()
	}
	return true
}

func (u *UI) handleKey(ctx context.Context, ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyCtrlQ:
		return false
	case tcell.KeyUp:
		u.moveCursor(ctx, 0, -1)
	case tcell.KeyDown:
		u.moveCursor(ctx, 0, 1)
	case tcell.KeyLeft:
		u.moveCursor(ctx, -1, 0)
	case tcell.KeyRight:
		u.moveCursor(ctx, 1, 0)
	case tcell.KeyEnter:
		u.act(ctx)
	case tcell.KeyEscape:
		u.apply(u.svc.ClearSelection(ctx, u.sessionID))
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 'k':
			u.moveCursor(ctx, 0, -1)
		case 'j':
			u.moveCursor(ctx, 0, 1)
		case 'h':
			u.moveCursor(ctx, -1, 0)
		case 'l':
			u.moveCursor(ctx, 1, 0)
		case ' ':
			u.act(ctx)
		case 'p':
			u.apply(u.svc.PassShot(ctx, u.sessionID))
		case 'r':
			u.reset(ctx)
		}
	}
	return true
}

// Cursor returns the highlighted cell
func (u *UI) Cursor() grid.Position {
	return u.cursor
}

// Message returns the last status line
func (u *UI) Message() string {
	return u.message
}

func (u *UI) refresh(ctx context.Context) error {
	state, err := u.svc.GetGameState(ctx, u.sessionID)
	if err != nil {
		return err
	}
	u.state = state
	return nil
}

func (u *UI) moveCursor(ctx context.Context, dx, dy int) {
	if u.state == nil {
		return
	}
	next := grid.Position{X: u.cursor.X + dx, Y: u.cursor.Y + dy}
	if next.X < 0 || next.Y < 0 || next.X >= u.state.Width || next.Y >= u.state.Height {
		return
	}
	u.cursor = next
	u.updateHover(ctx)
}

// updateHover shows the range of the unit under the cursor while nothing is selected
func (u *UI) updateHover(ctx context.Context) {
	u.hover = map[grid.Position]bool{}
	if u.state == nil || u.state.Selected != nil || u.state.Phase != engine.PhaseMove.String() {
		return
	}
	res, err := u.svc.Hover(ctx, u.sessionID, u.cursor)
	if err != nil {
		u.setMessage(err.Error(), true)
		return
	}
	for _, p := range res.Cells {
		u.hover[p] = true
	}
}

// act is the Enter key: select, move or shoot depending on the phase
func (u *UI) act(ctx context.Context) {
	if u.state == nil {
		return
	}
	if u.state.Phase == engine.PhaseShoot.String() {
		u.apply(u.svc.Shoot(ctx, u.sessionID, u.cursor))
		return
	}
	if unit := u.unitAt(u.cursor); unit != nil && unit.Team == engine.PlayerSide.String() {
		u.apply(u.svc.SelectUnit(ctx, u.sessionID, u.cursor))
		return
	}
	if u.state.Selected == nil {
		u.apply(u.svc.SelectUnit(ctx, u.sessionID, u.cursor))
		return
	}
	u.apply(u.svc.Move(ctx, u.sessionID, u.cursor))
}

func (u *UI) reset(ctx context.Context) {
	state, err := u.svc.Reset(ctx, u.sessionID)
	if err != nil {
		u.setMessage(err.Error(), true)
		return
	}
	u.state = state
	u.events = nil
	u.hover = map[grid.Position]bool{}
	u.setMessage("Game reset", false)
}

func (u *UI) apply(result *service.ActionResult, err error) {
	if err != nil {
		u.setMessage(err.Error(), true)
		return
	}
	u.state = result.GameState
	u.hover = map[grid.Position]bool{}
	u.setMessage(result.Message, !result.Applied)
	for _, ev := range result.Events {
		u.events = append(u.events, ev.Message)
	}
	if len(u.events) > maxLog {
		u.events = u.events[len(u.events)-maxLog:]
	}
}

func (u *UI) setMessage(msg string, refused bool) {
	u.message = msg
	u.refused = refused
}

func (u *UI) unitAt(p grid.Position) *engine.UnitView {
	if u.state == nil {
		return nil
	}
	for i := range u.state.Units {
		if u.state.Units[i].Position == p {
			return &u.state.Units[i]
		}
	}
	return nil
}

func (u *UI) draw() {
	u.screen.Clear()
	if u.state == nil {
		u.screen.Show()
		return
	}

	overlay := make(map[grid.Position]bool, len(u.state.Overlay))
	for _, p := range u.state.Overlay {
		overlay[p] = true
	}

	for y := 0; y < u.state.Height; y++ {
		for x := 0; x < u.state.Width; x++ {
			p := grid.Position{X: x, Y: y}
			u.drawCell(p, overlay[p])
		}
	}

	row := boardTop + u.state.Height + 1
	status := fmt.Sprintf("Session %s  Turn %d  Side %s  Phase %s", u.sessionID, u.state.Turn+1, u.state.ActiveTeam, u.state.Phase)
	if u.state.Winner != "" {
		status += fmt.Sprintf("  Winner: %s", u.state.Winner)
	}
	u.drawText(boardLeft, row, styleStatus, status)

	msgStyle := styleStatus
	if u.refused {
		msgStyle = styleRejection
	}
	u.drawText(boardLeft, row+1, msgStyle, u.message)

	if unit := u.unitAt(u.cursor); unit != nil {
		u.drawText(boardLeft, row+2, styleStatus, fmt.Sprintf("%s (%s) health %d/%d speed %d",
			unit.Name, unit.Team, unit.Health, unit.MaxHealth, unit.MoveSpeed))
	}
	for i, line := range u.events {
		u.drawText(boardLeft, row+4+i, styleHelp, line)
	}
	u.drawText(boardLeft, row+5+maxLog, styleHelp, "arrows/hjkl move  enter/space act  p pass  esc clear  r reset  q quit")

	u.screen.Show()
}

func (u *UI) drawCell(p grid.Position, inOverlay bool) {
	sx := boardLeft + p.X*cellWidth
	sy := boardTop + p.Y

	glyph, style := terrainGlyph(u.state.Terrain[p.Y][p.X])
	second := ' '
	if unit := u.unitAt(p); unit != nil {
		glyph = []rune(unit.Team)[0]
		style = styleSideA
		if unit.Team != engine.PlayerSide.String() {
			style = styleSideB
		}
		second = rune('0' + unit.Health%10)
	}

	switch {
	case inOverlay:
		style = style.Background(overlayBg)
	case u.hover[p]:
		style = style.Background(hoverBg)
	}
	if p == u.cursor {
		style = style.Reverse(true)
	}

	u.screen.SetContent(sx, sy, ' ', nil, style)
	u.screen.SetContent(sx+1, sy, glyph, nil, style)
	u.screen.SetContent(sx+2, sy, second, nil, style)
}

func terrainGlyph(c byte) (rune, tcell.Style) {
	t, _ := engine.TerrainFromChar(c)
	switch t {
	case engine.Soft:
		return '*', styleSoft
	case engine.Solid:
		return '#', styleSolid
	case engine.Transparent:
		return '=', styleClear
	}
	return '.', styleDefault
}

func (u *UI) drawText(x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		u.screen.SetContent(x+i, y, r, nil, style)
	}
}
