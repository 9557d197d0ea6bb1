package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ivanglie/kraken-mcp/internal/config"
	"github.com/ivanglie/kraken-mcp/internal/kraken"
	"github.com/ivanglie/kraken-mcp/internal/server"
	"github.com/ivanglie/kraken-mcp/pkg/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}

	transport := flag.String("transport", cfg.Transport, "MCP transport: stdio or http")
	addr := flag.String("addr", cfg.Addr, "listen address for the http transport")
	flag.Parse()

	log.Init(cfg.LogLevel, cfg.LogFile)

	client := kraken.NewWithBaseURL(cfg.KrakenAPIURL, time.Duration(cfg.TimeoutSeconds)*time.Second)
	srv := server.New(client)

	switch *transport {
	case config.TransportStdio:
		log.Info("Starting Kraken MCP server with stdio transport")
		err = srv.ServeStdio()
	case config.TransportHTTP:
		log.Info(fmt.Sprintf("Starting Kraken MCP server with http transport on %s", *addr))
		err = srv.ServeHTTP(*addr)
	default:
		err = fmt.Errorf("unknown transport: %q", *transport)
	}

	if err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}
