package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"cvcanvas/internal/domain"
	mcpserver "cvcanvas/internal/mcp"
	"cvcanvas/internal/render"
	"cvcanvas/internal/service"
	"cvcanvas/internal/storage"
)

func main() {
	var (
		dataDir      = flag.String("data", "", "data directory (default ~/.local/share/cvcanvas)")
		resumePath   = flag.String("resume", "", "resume JSON file to watch for live reload")
		autosaveSpec = flag.String("autosave", service.DefaultAutosaveSpec, "autosave schedule (cron spec)")
	)
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	dir := *dataDir
	if dir == "" {
		homeDir, _ := os.UserHomeDir()
		dir = filepath.Join(homeDir, ".local", "share", "cvcanvas")
	}

	db, err := storage.New(filepath.Join(dir, "cvcanvas.db"))
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	surface, err := render.NewSurface()
	if err != nil {
		log.Fatalf("Failed to create render surface: %v", err)
	}

	emitter := service.NopEmitter{}
	designSvc := service.NewDesignService(
		storage.NewDesignStore(db),
		storage.NewSnapshotStore(db),
		surface,
		emitter,
	)

	autosaver := service.NewAutosaver(designSvc, emitter, *autosaveSpec)
	if err := autosaver.Start(ctx); err != nil {
		log.Fatalf("Failed to start autosave: %v", err)
	}
	defer autosaver.Stop()

	if *resumePath != "" {
		name := strings.TrimSuffix(filepath.Base(*resumePath), filepath.Ext(*resumePath))
		watcher, err := service.NewResumeWatcher(*resumePath, emitter, func(r domain.Resume) {
			// Each save of the resume file becomes a fresh seeded design;
			// designs already in the library are left alone.
			data, err := json.Marshal(r)
			if err != nil {
				return
			}
			if _, err := designSvc.NewFromResume(ctx, name, string(data), ""); err != nil {
				log.Printf("resume reload: seed failed: %v", err)
			}
		})
		if err != nil {
			log.Fatalf("Failed to watch resume file: %v", err)
		}
		defer watcher.Close()
		log.Printf("Watching resume file %s", *resumePath)

		// Seed once at startup so the design exists before the first save.
		if data, err := os.ReadFile(*resumePath); err == nil {
			if _, err := designSvc.NewFromResume(ctx, name, string(data), ""); err != nil {
				log.Printf("initial seed failed: %v", err)
			}
		}
	}

	mcpSrv := mcpserver.New(mcpserver.Deps{
		Emitter: emitter,
		Design:  designSvc,
	})

	log.Println("[MCP] Starting standalone stdio server...")
	if err := mcpSrv.ServeStdio(); err != nil {
		log.Fatalf("MCP server error: %v", err)
	}
}
