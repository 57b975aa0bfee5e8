package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/fretstudio/api/internal/config"
	"github.com/fretstudio/api/internal/handler"
	"github.com/fretstudio/api/internal/library"
	"github.com/fretstudio/api/internal/service"
	"github.com/fretstudio/api/internal/store"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Open the data directory (takes the instance lock)
	fileStore, err := store.Open(cfg.Data.Dir)
	if err != nil {
		log.Fatalf("Failed to open data dir: %v", err)
	}
	defer fileStore.Close()

	st, err := fileStore.LoadState()
	if err != nil {
		log.Fatalf("Failed to load library: %v", err)
	}

	// Seed a fresh data directory with the default library
	seeded := false
	if len(st.Scales) == 0 && len(st.ChordTypes) == 0 && len(st.Tunings) == 0 {
		st = library.Defaults()
		seeded = true
	}

	repo := library.NewRepository(st, fileStore)
	if seeded {
		if err := repo.Flush(); err != nil {
			log.Fatalf("Failed to seed data dir: %v", err)
		}
		log.Printf("Seeded default library into %s", cfg.Data.Dir)
	}

	// Initialize validator
	validate := validator.New()

	// Initialize services
	theoryService := service.NewTheoryService(repo)
	snapshotService := service.NewSnapshotService(repo, validate)

	// Initialize handlers
	theoryHandler := handler.NewTheoryHandler(theoryService, cfg.Fretboard.Frets)
	scaleHandler := handler.NewScaleHandler(repo, validate)
	chordTypeHandler := handler.NewChordTypeHandler(repo, validate)
	tuningHandler := handler.NewTuningHandler(repo, validate)
	voicingHandler := handler.NewVoicingHandler(repo, validate)
	snapshotHandler := handler.NewSnapshotHandler(snapshotService)

	// Initialize Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.Origins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	registerRoutes(app, theoryHandler, scaleHandler, chordTypeHandler, tuningHandler, voicingHandler, snapshotHandler)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("Shutting down server...")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	// Start server
	addr := ":" + cfg.Server.Port
	log.Printf("Server starting on %s", addr)
	if err := app.Listen(addr); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func registerRoutes(
	app *fiber.App,
	theory *handler.TheoryHandler,
	scales *handler.ScaleHandler,
	chordTypes *handler.ChordTypeHandler,
	tunings *handler.TuningHandler,
	voicings *handler.VoicingHandler,
	snapshots *handler.SnapshotHandler,
) {
	// Theory routes
	app.Get("/notes/:root/:chordType", theory.ChordNotes)
	app.Get("/fretboard/scale", theory.ScaleFretboard)
	app.Get("/fretboard/chord", theory.ChordFretboard)

	// Scale routes
	app.Get("/scales", scales.List)
	app.Post("/scales", scales.Upsert)
	app.Delete("/scales/:name", scales.Delete)
	app.Post("/scales/:name/reorder", scales.Reorder)
	app.Get("/scales/:root/:name/notes", theory.ScaleNotes)
	app.Get("/scales/:root/:name/chords", theory.DiatonicChords)

	// Chord type routes
	app.Get("/chord-types", chordTypes.List)
	app.Post("/chord-types", chordTypes.Upsert)
	app.Delete("/chord-types/:name", chordTypes.Delete)
	app.Post("/chord-types/:name/reorder", chordTypes.Reorder)

	// Tuning routes
	app.Get("/tunings", tunings.List)
	app.Post("/tunings", tunings.Upsert)
	app.Delete("/tunings/:name", tunings.Delete)
	app.Post("/tunings/:name/reorder", tunings.Reorder)

	// Voicing routes
	app.Get("/voicings/:tuning/:chordType/:root", voicings.List)
	app.Post("/voicings/:tuning/:chordType/:root", voicings.Upsert)
	app.Delete("/voicings/:tuning/:chordType/:root/:name", voicings.Delete)
	app.Post("/voicings/:tuning/:chordType/:root/:name/reorder", voicings.Reorder)

	// Snapshot routes
	app.Get("/library/export", snapshots.Export)
	app.Post("/library/import", snapshots.Import)
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    "SERVICE_ERROR",
			"message": message,
		},
	})
}
