// Command mcp serves the game actions over the Model Context Protocol on
// stdio, playing one user's save.
package main

import (
	"context"
	"flag"
	"log"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/annakobylinska4-wq/life-game/internal/action"
	"github.com/annakobylinska4-wq/life-game/internal/audit"
	"github.com/annakobylinska4-wq/life-game/internal/config"
	"github.com/annakobylinska4-wq/life-game/internal/life"
	"github.com/annakobylinska4-wq/life-game/internal/mcpserver"
)

func main() {
	env, err := config.ParseEnv()
	if err != nil {
		log.Fatalf("parse environment: %v", err)
	}

	dataDir := flag.String("data", env.DataDir, "data directory holding the game state")
	user := flag.String("user", "default", "user whose save the tools operate on")
	configPath := flag.String("config", env.ConfigPath, "path to the balance config")
	flag.Parse()

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	env.Apply(cfg)

	repo, err := life.NewFileRepo(*dataDir, cfg.Game)
	if err != nil {
		log.Fatalf("open state store: %v", err)
	}
	auditor := audit.New(*dataDir, log.Default())
	registry := action.NewRegistry(cfg.Game, auditor)
	engine := life.NewEngine(cfg.Game)

	game := mcpserver.NewGame(engine, registry, repo.ForUser(*user), *user)
	srv := mcpserver.NewServer(game, cfg.Version)
	if err := srv.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
		log.Fatalf("mcp server: %v", err)
	}
}
