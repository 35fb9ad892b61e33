package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/cbodonnell/lanes/client/debug"
	"github.com/cbodonnell/lanes/client/game"
	"github.com/cbodonnell/lanes/client/network"
	"github.com/cbodonnell/lanes/client/reconcile"
	"github.com/cbodonnell/lanes/client/render"
	"github.com/cbodonnell/lanes/pkg/log"
	"github.com/cbodonnell/lanes/pkg/queue"
	"github.com/cbodonnell/lanes/pkg/state"
	"github.com/cbodonnell/lanes/pkg/version"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"
)

func main() {
	// a missing .env file is fine, the environment and flags still apply
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		panic(fmt.Sprintf("Failed to load .env file: %v", err))
	}

	serverURL := flag.String("server-url", envOrDefault("LANES_SERVER_URL", network.DefaultServerURL), "Game server WebSocket URL")
	logLevel := flag.String("log-level", envOrDefault("LANES_LOG_LEVEL", "info"), "Log level")
	debugMode := flag.Bool("debug", false, "Show the debug overlay")
	debugAddr := flag.String("debug-addr", os.Getenv("LANES_DEBUG_ADDR"), "Address for the debug HTTP server, disabled if empty")
	reportInterval := flag.Duration("report-interval", reconcile.DefaultReportInterval, "Interval between integrity reports")
	queueSize := flag.Int("queue-size", 1024, "Size of the server message queue")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	log.Info("Starting client version %s", version.Get())

	serverMessageQueue := queue.NewInMemoryQueue(*queueSize)
	networkManager := network.NewNetworkManager(network.NewNetworkManagerOptions{
		ServerURL:    *serverURL,
		MessageQueue: serverMessageQueue,
	})

	snapshotManager := state.NewInMemorySnapshotManager()
	if *debugAddr != "" {
		debugServer := debug.NewServer(debug.NewServerOptions{
			Addr:            *debugAddr,
			SnapshotManager: snapshotManager,
		})
		go debugServer.Start()
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := debugServer.Stop(ctx); err != nil {
				log.Error("Failed to stop debug server: %v", err)
			}
		}()
	}

	g, err := game.NewGame(game.NewGameOptions{
		Debug:           *debugMode,
		NetworkManager:  networkManager,
		SnapshotManager: snapshotManager,
		ReportInterval:  *reportInterval,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create game: %v", err))
	}

	ebiten.SetWindowSize(render.ScreenWidth, render.ScreenHeight)
	ebiten.SetWindowTitle("Lanes Client")
	if err := ebiten.RunGame(g); err != nil {
		panic(fmt.Sprintf("Failed to run game: %v", err))
	}

	if networkManager.IsConnected() {
		if err := networkManager.Stop(); err != nil {
			log.Error("Failed to stop network manager: %v", err)
		}
	}
}

func envOrDefault(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
