// Command server runs the game's HTTP server.
package main

import (
	"log"
	"net/http"

	"github.com/annakobylinska4-wq/life-game/internal/config"
	"github.com/annakobylinska4-wq/life-game/internal/serverapp"
)

func main() {
	env, err := config.ParseEnv()
	if err != nil {
		log.Fatalf("parse environment: %v", err)
	}

	cfg, err := config.LoadOrDefault(env.ConfigPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	env.Apply(cfg)

	handler, err := serverapp.NewHandler(serverapp.Options{
		Config:        cfg,
		Env:           env,
		DataDir:       env.DataDir,
		StaticDir:     "static",
		UseDiskStatic: serverapp.UseDiskStaticByEnv(),
		Logger:        log.Default(),
	})
	if err != nil {
		log.Fatalf("build server: %v", err)
	}

	log.Printf("listening on http://localhost%s", env.Addr)
	log.Fatal(http.ListenAndServe(env.Addr, handler))
}
