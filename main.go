// Command isotactics serves the Iso Tactics rules engine.
//
// Commands:
//  1. "serve" (default) runs the HTTP server exposing REST API, WebSocket, and an /mcp HTTP endpoint
//  2. "mcp" runs an MCP stdio server and spins up an internal HTTP API if none is available
//  3. "play" runs a game in the terminal
//
// Flags control host/port, scenario directory, debug logging, and optional
// ngrok tunneling for easy external access during development. Every flag can
// also come from the environment or a .env file.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"
	"github.com/urfave/cli/v3"
	"github.com/wricardo/isotactics/api"
	"github.com/wricardo/isotactics/game/config"
	"github.com/wricardo/isotactics/game/engine"
	"github.com/wricardo/isotactics/game/service"
	"github.com/wricardo/isotactics/game/session"
	"github.com/wricardo/isotactics/transport/mcp"
	"github.com/wricardo/isotactics/transport/terminal"
	"github.com/wricardo/isotactics/transport/websocket"
	"golang.ngrok.com/ngrok"
	ngrokConfig "golang.ngrok.com/ngrok/config"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "Iso Tactics Server"
)

const (
	// Sessions idle longer than this are pruned
	sessionRetention = time.Hour
	cleanupInterval  = 10 * time.Minute
)

// options collects the resolved flag values
type options struct {
	host        string
	port        int
	configDir   string
	debug       bool
	ngrok       bool
	ngrokAuth   string
	ngrokDomain string
	seed        int64
}

func (o options) addr() string {
	return fmt.Sprintf("%s:%d", o.host, o.port)
}

func optionsFrom(cmd *cli.Command) options {
	return options{
		host:        cmd.String("host"),
		port:        int(cmd.Int("port")),
		configDir:   cmd.String("config-dir"),
		debug:       cmd.Bool("debug"),
		ngrok:       cmd.Bool("ngrok"),
		ngrokAuth:   cmd.String("ngrok-auth"),
		ngrokDomain: cmd.String("ngrok-domain"),
		seed:        int64(cmd.Int("seed")),
	}
}

// newApp builds the command tree
func newApp() *cli.Command {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:    "host",
			Value:   "localhost",
			Usage:   "HTTP server host",
			Sources: cli.EnvVars("HOST"),
		},
		&cli.IntFlag{
			Name:    "port",
			Value:   8080,
			Usage:   "HTTP server port",
			Sources: cli.EnvVars("PORT"),
		},
		&cli.StringFlag{
			Name:    "config-dir",
			Value:   "configs",
			Usage:   "Directory containing scenario files",
			Sources: cli.EnvVars("CONFIG_DIR"),
		},
		&cli.BoolFlag{
			Name:    "debug",
			Usage:   "Enable debug logging",
			Sources: cli.EnvVars("DEBUG"),
		},
		&cli.BoolFlag{
			Name:    "ngrok",
			Usage:   "Enable ngrok tunnel",
			Sources: cli.EnvVars("NGROK_ENABLED"),
		},
		&cli.StringFlag{
			Name:    "ngrok-auth",
			Usage:   "Ngrok auth token",
			Sources: cli.EnvVars("NGROK_AUTHTOKEN", "NGROK_AUTH_TOKEN"),
		},
		&cli.StringFlag{
			Name:    "ngrok-domain",
			Usage:   "Custom ngrok domain (optional)",
			Sources: cli.EnvVars("NGROK_DOMAIN"),
		},
		&cli.IntFlag{
			Name:    "seed",
			Usage:   "Seed every game with this value for repeatable play (0 picks a random seed)",
			Sources: cli.EnvVars("SEED"),
		},
	}

	serve := func(ctx context.Context, cmd *cli.Command) error {
		opts := optionsFrom(cmd)
		setupLogging(opts.debug)
		log.Printf("Starting %s v%s (mode: serve)", AppName, Version)
		gameService, err := initializeServices(ctx, opts)
		if err != nil {
			return fmt.Errorf("failed to initialize services: %w", err)
		}
		return runHTTPServer(ctx, gameService, opts)
	}

	return &cli.Command{
		Name:    "isotactics",
		Usage:   "turn-based tactical grid game server",
		Version: Version,
		Flags:   flags,
		Action:  serve,
		Commands: []*cli.Command{
			{
				Name:    "serve",
				Aliases: []string{"server", "http"},
				Usage:   "Run HTTP server with API, WebSocket, and MCP endpoint",
				Action:  serve,
			},
			{
				Name:    "mcp",
				Aliases: []string{"stdio-mcp", "mcp-stdio"},
				Usage:   "Run MCP stdio server with internal HTTP server",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					opts := optionsFrom(cmd)
					setupLogging(opts.debug)
					// stdout carries the protocol
					log.SetOutput(os.Stderr)
					gameService, err := initializeServices(ctx, opts)
					if err != nil {
						return fmt.Errorf("failed to initialize services: %w", err)
					}
					return runStdioMCP(ctx, gameService, opts)
				},
			},
			{
				Name:  "play",
				Usage: "Play a scenario in the terminal",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "scenario",
						Usage: "Scenario to play (default scenario when empty)",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					opts := optionsFrom(cmd)
					// the screen owns the terminal
					log.SetOutput(io.Discard)
					gameService, err := initializeServices(ctx, opts)
					if err != nil {
						return fmt.Errorf("failed to initialize services: %w", err)
					}
					return runTerminal(ctx, gameService, cmd.String("scenario"))
				},
			},
		},
	}
}

func setupLogging(debug bool) {
	if debug {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	} else {
		log.SetFlags(log.LstdFlags)
	}
}

// main loads .env, then runs the selected command until a signal arrives
func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
	} else {
		log.Println("Loaded environment variables from .env file")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp().Run(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}

// newMux combines the REST API with the /mcp proxy endpoint
func newMux(apiServer *api.Server, mcpClient *mcp.Client) http.Handler {
	mainRouter := http.NewServeMux()
	mainRouter.Handle("/", apiServer)
	mainRouter.HandleFunc("/mcp", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "Failed to read request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		response := mcpClient.GetMCPServer().HandleMessage(r.Context(), body)

		w.Header().Set("Content-Type", "application/json")
		responseData, err := json.Marshal(response)
		if err != nil {
			http.Error(w, "Failed to marshal response", http.StatusInternalServerError)
			return
		}
		w.Write(responseData)
	})
	return mainRouter
}

// runHTTPServer starts the HTTP server with REST API, WebSocket hub, and an /mcp proxy endpoint.
// If ngrok is enabled it also provisions a public tunnel. It returns when ctx ends.
func runHTTPServer(ctx context.Context, gameService service.GameService, opts options) error {
	hub := websocket.NewHub()
	go hub.Run()
	defer hub.Stop()

	addr := opts.addr()
	apiServer := api.NewServer(gameService, hub)
	mcpClient := mcp.NewClient(fmt.Sprintf("http://%s", addr))
	handler := newMux(apiServer, mcpClient)

	httpServer := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	serveErr := make(chan error, 1)

	wg.Add(1)
	go func() {
		defer wg.Done()

		log.Printf("HTTP server listening on %s", addr)
		log.Printf("REST API: http://%s/api", addr)
		log.Printf("WebSocket: ws://%s/ws?session=<session_id>", addr)
		log.Printf("MCP endpoint: http://%s/mcp", addr)

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serveErr <- fmt.Errorf("HTTP server failed: %w", err)
			cancel()
		}
	}()

	if opts.ngrok {
		wg.Add(1)
		go func() {
			defer wg.Done()
			runNgrok(ctx, handler, opts)
		}()
	}

	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	wg.Wait()
	log.Println("Server stopped")

	select {
	case err := <-serveErr:
		return err
	default:
		return nil
	}
}

// runNgrok serves handler through an ngrok tunnel until ctx ends
func runNgrok(ctx context.Context, handler http.Handler, opts options) {
	if opts.ngrokAuth == "" {
		log.Println("WARNING: Ngrok enabled but no auth token provided (use --ngrok-auth, NGROK_AUTHTOKEN, or NGROK_AUTH_TOKEN env var)")
		return
	}

	log.Println("Starting ngrok tunnel...")

	var tunnel ngrokConfig.Tunnel
	if opts.ngrokDomain != "" {
		tunnel = ngrokConfig.HTTPEndpoint(ngrokConfig.WithDomain(opts.ngrokDomain))
		log.Printf("Using custom ngrok domain: %s", opts.ngrokDomain)
	} else {
		tunnel = ngrokConfig.HTTPEndpoint()
	}

	tun, err := ngrok.Listen(ctx, tunnel, ngrok.WithAuthtoken(opts.ngrokAuth))
	if err != nil {
		log.Printf("Failed to start ngrok tunnel: %v", err)
		return
	}

	ngrokURL := tun.URL()
	log.Printf("Ngrok tunnel established: %s", ngrokURL)
	log.Printf("  REST API (ngrok): %s/api", ngrokURL)
	log.Printf("  WebSocket (ngrok): %s/ws?session=<session_id>", ngrokURL)
	log.Printf("  MCP endpoint (ngrok): %s/mcp", ngrokURL)

	go func() {
		<-ctx.Done()
		if err := tun.Close(); err != nil {
			log.Printf("Failed to close ngrok tunnel: %v", err)
		}
	}()

	if err := http.Serve(tun, handler); err != nil && !errors.Is(err, http.ErrServerClosed) && ctx.Err() == nil {
		log.Printf("Ngrok server error: %v", err)
	}
	log.Println("Ngrok tunnel closed")
}

// initializeServices wires session/config managers and the game service.
// It also starts a background routine that prunes stale sessions until ctx ends.
func initializeServices(ctx context.Context, opts options) (service.GameService, error) {
	configManager, err := config.NewManager(opts.configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to create config manager: %w", err)
	}

	sessionManager := session.NewManager()
	if opts.seed != 0 {
		seed := opts.seed
		sessionManager = session.NewManagerWithRand(func() engine.Rand { return newSeededRand(seed) })
	}
	gameService := service.NewGameService(sessionManager, configManager)

	go sessionCleanupRoutine(ctx, sessionManager, cleanupInterval, sessionRetention)

	return gameService, nil
}

// sessionCleanupRoutine periodically removes sessions that have not been accessed
// within the retention window.
func sessionCleanupRoutine(ctx context.Context, manager *session.Manager, every, retention time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := manager.CleanupExpiredSessions(retention); removed > 0 {
				log.Printf("Cleaned up %d expired sessions", removed)
			}
		}
	}
}

// apiAvailable reports whether an Iso Tactics API answers at baseURL
func apiAvailable(baseURL string) bool {
	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(baseURL + "/health")
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// startInternalAPI serves the REST API on a random loopback port and returns its base URL
func startInternalAPI(gameService service.GameService) (string, *http.Server, error) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return "", nil, fmt.Errorf("failed to get available port: %w", err)
	}

	internalAddr := listener.Addr().String()
	log.Printf("Starting internal HTTP server on %s for MCP stdio", internalAddr)

	httpServer := &http.Server{Handler: api.NewServer(gameService, nil)}
	go func() {
		if err := httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Printf("Internal HTTP server error: %v", err)
		}
	}()

	return "http://" + internalAddr, httpServer, nil
}

// runStdioMCP runs an MCP stdio server. It reuses an API already listening on
// the configured address; otherwise it starts an internal one on a loopback port.
func runStdioMCP(ctx context.Context, gameService service.GameService, opts options) error {
	baseURL := fmt.Sprintf("http://%s", opts.addr())
	log.Printf("Checking for external API server at %s...", baseURL)

	if apiAvailable(baseURL) {
		log.Printf("External API server found at %s, using it for MCP", baseURL)
	} else {
		log.Printf("No external API server found, starting internal HTTP server")
		internalURL, httpServer, err := startInternalAPI(gameService)
		if err != nil {
			return err
		}
		defer httpServer.Close()
		baseURL = internalURL
	}

	mcpClient := mcp.NewClient(baseURL)
	log.Printf("MCP stdio server ready (API at %s)", baseURL)

	if err := server.ServeStdio(mcpClient.GetMCPServer()); err != nil {
		return fmt.Errorf("MCP stdio server error: %w", err)
	}
	return nil
}

// runTerminal plays one in-process session on the terminal
func runTerminal(ctx context.Context, gameService service.GameService, scenario string) error {
	info, err := gameService.CreateSession(ctx, scenario)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init terminal: %w", err)
	}
	defer screen.Fini()

	err = terminal.New(gameService, info.ID, screen).Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// newSeededRand gives every session the same random sequence
func newSeededRand(seed int64) engine.Rand {
	return rand.New(rand.NewSource(seed))
}
