package game

import (
	"context"
	"fmt"
	"time"

	"github.com/cbodonnell/lanes/client/input"
	"github.com/cbodonnell/lanes/client/network"
	"github.com/cbodonnell/lanes/client/reconcile"
	"github.com/cbodonnell/lanes/client/render"
	"github.com/cbodonnell/lanes/client/scenes"
	"github.com/cbodonnell/lanes/pkg/log"
	"github.com/cbodonnell/lanes/pkg/renderstate"
	"github.com/cbodonnell/lanes/pkg/state"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Game implements ebiten.Game interface, which has Update, Draw and Layout methods.
type Game struct {
	// debug is a boolean value indicating whether the debug overlay is shown.
	debug bool
	// networkManager is the network manager.
	networkManager *network.NetworkManager
	// snapshotManager receives a copy of the render state every frame.
	snapshotManager state.SnapshotManager
	// reportInterval is how often the integrity signature is reported.
	reportInterval time.Duration
	// mode is the current game mode.
	mode GameMode
	// scene is the screen drawn over the arena outside of play, nil while playing.
	scene *scenes.MessageScene

	// store and the components below are recreated for every match.
	store      *renderstate.Store
	reconciler *reconcile.Reconciler
	predictor  *reconcile.Predictor
	reporter   *reconcile.IntegrityReporter
	renderer   *render.Renderer
}

type GameMode int

const (
	GameModeMenu GameMode = iota
	GameModePlay
	GameModeOver
	GameModeNetworkError
	GameModeTampered
)

func (m GameMode) String() string {
	switch m {
	case GameModeMenu:
		return "Menu"
	case GameModePlay:
		return "Play"
	case GameModeOver:
		return "Over"
	case GameModeNetworkError:
		return "Network Error"
	case GameModeTampered:
		return "Tampered"
	}
	return "Unknown"
}

type NewGameOptions struct {
	Debug           bool
	NetworkManager  *network.NetworkManager
	SnapshotManager state.SnapshotManager
	ReportInterval  time.Duration
}

func NewGame(opts NewGameOptions) (ebiten.Game, error) {
	if opts.NetworkManager == nil {
		return nil, fmt.Errorf("network manager is required")
	}
	snapshotManager := opts.SnapshotManager
	if snapshotManager == nil {
		snapshotManager = state.NewInMemorySnapshotManager()
	}

	g := &Game{
		debug:           opts.Debug,
		networkManager:  opts.NetworkManager,
		snapshotManager: snapshotManager,
		reportInterval:  opts.ReportInterval,
	}
	g.loadMenu()

	return g, nil
}

// resetMatch discards the render state of the previous match.
func (g *Game) resetMatch() {
	g.store = renderstate.NewStore()
	g.reconciler = reconcile.NewReconciler(g.store)
	g.predictor = reconcile.NewPredictor(g.store, g.networkManager)
	g.reporter = reconcile.NewIntegrityReporter(g.store, g.networkManager, g.reportInterval)
	g.renderer = render.NewRenderer(g.store)
	g.publishSnapshot()
}

func (g *Game) loadMenu() {
	g.resetMatch()
	g.scene = scenes.NewMessageScene(scenes.MessageSceneOptions{
		Title:      "LANES",
		Message:    "Destroy the enemy base",
		ButtonText: "Start",
		OnClick:    g.loadGame,
	})
	g.mode = GameModeMenu
}

func (g *Game) loadGame() {
	g.resetMatch()
	if err := g.networkManager.Start(context.Background()); err != nil {
		log.Error("Failed to start network manager: %v", err)
		g.loadNetworkError()
		return
	}

	g.store.Initialize()
	g.renderer.SetLocalPlayer(g.networkManager.PlayerID())
	g.scene = nil
	g.mode = GameModePlay
	log.Info("Match started as player %d", g.networkManager.PlayerID())
}

func (g *Game) loadGameOver() {
	g.stopNetwork()
	title := "GAME OVER"
	if team, ok := g.store.Winner(); ok {
		title = fmt.Sprintf("TEAM %d WINS!", team)
	}
	g.scene = scenes.NewMessageScene(scenes.MessageSceneOptions{
		Title:      title,
		ButtonText: "Main Menu",
		OnClick:    g.loadMenu,
	})
	g.mode = GameModeOver
}

func (g *Game) loadNetworkError() {
	g.stopNetwork()
	g.scene = scenes.NewMessageScene(scenes.MessageSceneOptions{
		Title:      "NETWORK ERROR",
		Message:    "Lost connection to the game server",
		ButtonText: "Retry",
		OnClick:    g.loadGame,
	})
	g.mode = GameModeNetworkError
}

func (g *Game) loadTampered() {
	g.stopNetwork()
	g.scene = scenes.NewMessageScene(scenes.MessageSceneOptions{
		Title:      "STATE TAMPERING DETECTED",
		Message:    "The match was ended",
		ButtonText: "Main Menu",
		OnClick:    g.loadMenu,
	})
	g.mode = GameModeTampered
}

func (g *Game) stopNetwork() {
	if err := g.networkManager.Stop(); err != nil {
		log.Error("Failed to stop network manager: %v", err)
	}
}

func (g *Game) Update() error {
	if input.IsDebugJustPressed() {
		g.debug = !g.debug
	}

	if g.mode != GameModePlay {
		g.scene.Update()
		return nil
	}

	if input.IsNegativeJustPressed() {
		g.loadGameOver()
		return nil
	}
	if err := g.updatePlay(); err != nil {
		return fmt.Errorf("failed to update game: %v", err)
	}

	return nil
}

func (g *Game) updatePlay() error {
	if err := g.checkNetworkManagerErrors(); err != nil {
		log.Error("Network manager error: %v", err)
		g.loadNetworkError()
		return nil
	}

	if err := g.reconciler.ProcessServerMessages(g.networkManager.ServerMessageQueue()); err != nil {
		return fmt.Errorf("failed to process server messages: %v", err)
	}

	if !g.store.Plausible() {
		log.Error("Render state failed the plausibility check, disconnecting")
		g.loadTampered()
		return nil
	}

	if team, ok := g.store.Winner(); ok {
		log.Info("Team %d won the match", team)
		g.publishSnapshot()
		g.loadGameOver()
		return nil
	}

	playerID := g.networkManager.PlayerID()
	dx, dy := input.Movement()
	if err := g.predictor.Move(playerID, dx, dy); err != nil {
		log.Warn("Failed to move player %d: %v", playerID, err)
	}

	if input.IsAbilityJustPressed() {
		g.castAbility(playerID)
	}

	if _, err := g.reporter.Update(time.Now()); err != nil {
		log.Warn("Failed to report integrity signature: %v", err)
	}

	g.renderer.Update()
	g.publishSnapshot()
	return nil
}

// castAbility targets the opposing champion once the cooldown has elapsed.
func (g *Game) castAbility(playerID int) {
	cooldown, err := g.store.AbilityCooldown(playerID)
	if err != nil {
		log.Warn("Failed to read ability cooldown: %v", err)
		return
	}
	if cooldown > 0 {
		log.Debug("Ability on cooldown for %d ticks", cooldown)
		return
	}
	if err := g.networkManager.SendAbility(1 - playerID); err != nil {
		log.Warn("Failed to send ability: %v", err)
	}
}

func (g *Game) publishSnapshot() {
	snapshot := g.store.Snapshot()
	if err := g.snapshotManager.Set(context.Background(), &snapshot); err != nil {
		log.Error("Failed to publish snapshot: %v", err)
	}
}

// checkNetworkManagerErrors checks the network manager for errors and returns any that are found.
func (g *Game) checkNetworkManagerErrors() error {
	select {
	case err := <-g.networkManager.ClientErrChan():
		return fmt.Errorf("WebSocket client error: %v", err)
	default:
		return nil
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen)
	if g.scene != nil {
		g.scene.Draw(screen)
	}

	if g.debug {
		g.drawDebugOverlay(screen)
	}
}

func (g *Game) drawDebugOverlay(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %0.1f", ebiten.ActualFPS()), 10, 10)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %0.1f", ebiten.ActualTPS()), 10, 24)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Mode: %s", g.mode), 10, 110)

	if !g.networkManager.IsConnected() {
		return
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Player: %d", g.networkManager.PlayerID()), 10, 124)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Server time: %d", g.reconciler.LastTimestamp()), 10, 138)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Updates: %d", g.reconciler.Applied()), 10, 152)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Minions: %d", g.store.MinionCount()), 10, 166)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Signature: %d", g.store.IntegritySignature()), 10, 180)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return render.ScreenWidth, render.ScreenHeight
}
