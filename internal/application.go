package application

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/console"
	"github.com/rocketscienceinc/tictactoe-console/internal/engine"
	"github.com/rocketscienceinc/tictactoe-console/internal/game"
)

// RunApp - runs the application.
// A seed of 0 means the cpu move generator is seeded from the clock;
// any other value gives a reproducible cpu.
func RunApp(logger *slog.Logger, conf *config.Config, seed int64) error {
	log := logger.With("component", "app", "session", uuid.NewString())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	gameEngine := engine.New(rand.New(rand.NewSource(seed))) //nolint: gosec // uniform cell choice, not crypto

	reader := console.NewReader(os.Stdin)
	renderer := console.NewRenderer(os.Stdout, console.Style{
		PlayerGlyph:    conf.Console.PlayerGlyph,
		CPUGlyph:       conf.Console.CPUGlyph,
		EmptyGlyph:     conf.Console.EmptyGlyph,
		Prompt:         conf.Console.Prompt,
		NoBoardMessage: conf.Console.NoBoardMessage,
	})

	runner := game.NewRunner(logger, gameEngine, reader, renderer)

	log.Info("Starting game loop")

	if err := runner.Run(ctx); err != nil {
		return fmt.Errorf("game loop error: %w", err)
	}

	log.Info("Game loop stopped")

	return nil
}
