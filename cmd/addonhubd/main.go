package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/addonhub/addonhub/internal/auth"
	"github.com/addonhub/addonhub/internal/config"
)

func main() {
	cfgPath := flag.String("config", "/etc/addonhub/server.yaml", "Path to server config")
	flag.Parse()

	cfg, err := config.LoadServerConfig(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(cfg.LogDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "error creating log dir: %v\n", err)
		os.Exit(1)
	}

	logFile, err := os.OpenFile(filepath.Join(cfg.LogDir, "addonhubd.log"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	logger := slog.New(slog.NewTextHandler(io.MultiWriter(os.Stdout, logFile), nil))
	slog.SetDefault(logger)

	srv := &panelServer{cfg: cfg}

	mux := http.NewServeMux()
	mux.Handle("/api/install", auth.Middleware(cfg.Token, http.HandlerFunc(srv.handleInstall)))
	mux.Handle("/api/remove", auth.Middleware(cfg.Token, http.HandlerFunc(srv.handleRemove)))
	mux.Handle("/api/list", auth.Middleware(cfg.Token, http.HandlerFunc(srv.handleList)))
	mux.HandleFunc("/health", srv.handleHealth)

	slog.Info("addonhubd starting", "listen", cfg.Listen, "data_dir", cfg.DataDir)
	if err := http.ListenAndServe(cfg.Listen, mux); err != nil {
		slog.Error("server error", "err", err)
		os.Exit(1)
	}
}
