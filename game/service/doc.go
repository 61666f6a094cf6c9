// Package service provides the business logic layer for Iso Tactics.
//
// The service package implements:
//   - Multi-session game management
//   - Scenario loading and saving
//   - Player command dispatch with event reporting
//
// Core Interfaces:
//
// GameService is the main service interface providing high-level game operations.
// SessionManager handles session creation, retrieval, and lifecycle.
// ConfigManager manages scenario loading and validation.
//
// Architecture:
//
// The service layer sits between the transports (HTTP/WebSocket/MCP/terminal)
// and the engine. Every command on a session runs under one lock, so an
// engine only ever sees a single actor. A command that the engine refuses
// comes back with Applied false, an explanation in Message, and the
// unchanged state; it is not an error.
//
// Usage:
//
//	sessionMgr := session.NewManager()
//	configMgr := config.NewManager("configs")
//	gameService := service.NewGameService(sessionMgr, configMgr)
//
//	info, err := gameService.CreateSession(ctx, "classic")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	gameService.SelectUnit(ctx, info.ID, grid.Position{X: 0, Y: 0})
//	gameService.Move(ctx, info.ID, grid.Position{X: 2, Y: 0})
//	result, err := gameService.Shoot(ctx, info.ID, grid.Position{X: 6, Y: 0})
//
// Shoot and PassShot return only after the AI side has answered, so the
// events of one result cover the whole round.
package service
