// Seeds the local snapshot file with the built-in sample dataset. Run it to
// reset a development environment to a known state.
package main

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"

	"studio-crm/internal/config"
	"studio-crm/internal/store"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	data := store.SampleData()
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode sample data: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DataPath), 0o755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}
	if err := os.WriteFile(cfg.DataPath, raw, 0o644); err != nil {
		log.Fatalf("Failed to write snapshot: %v", err)
	}

	log.Printf("Seeded %s with %d clients, %d vendors, %d events, %d invoices\n",
		cfg.DataPath, len(data.Clients), len(data.Vendors), len(data.Events), len(data.Invoices))
}
