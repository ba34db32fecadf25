package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/9oormthon-univ/2025-SEASONTHON-TEAM-99-FE/internal/community"
	"github.com/9oormthon-univ/2025-SEASONTHON-TEAM-99-FE/internal/core/ports"
	"github.com/9oormthon-univ/2025-SEASONTHON-TEAM-99-FE/internal/engage"
	"github.com/9oormthon-univ/2025-SEASONTHON-TEAM-99-FE/internal/logging"
	"github.com/9oormthon-univ/2025-SEASONTHON-TEAM-99-FE/internal/session"
	"github.com/9oormthon-univ/2025-SEASONTHON-TEAM-99-FE/internal/storage"
	"github.com/9oormthon-univ/2025-SEASONTHON-TEAM-99-FE/internal/ui/tui"
)

func main() {
	godotenv.Load()
	ctx := context.Background()

	dataDir := os.Getenv("YOUTHHUB_DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}

	log, err := logging.New(dataDir)
	if err != nil {
		log = logging.Nop()
	}
	defer log.Sync()

	var store ports.Storage
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		pg, err := storage.NewPostgresStorage(ctx, dbURL)
		if err != nil {
			log.Warnw("postgres unavailable, falling back to JSON storage", "err", err)
		} else {
			store = pg
			log.Infow("storage: postgres")
		}
	}
	if store == nil {
		store, err = storage.NewJSONStorage(filepath.Join(dataDir, "youthhub.json"))
		if err != nil {
			fmt.Fprintln(os.Stderr, "storage init failed:", err)
			os.Exit(1)
		}
		log.Infow("storage: json file")
	}

	sess := session.Restore(store, log)

	api := engage.NewClient(sess, log)
	if base := os.Getenv("YOUTH_API_BASE_URL"); base != "" {
		api.BaseURL = base
	}
	comm := community.NewClient(sess, log)
	comm.BaseURL = api.BaseURL

	app := tui.New(ctx, sess, api, comm, store, log)
	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintln(os.Stderr, "youthhub:", err)
		os.Exit(1)
	}
}
