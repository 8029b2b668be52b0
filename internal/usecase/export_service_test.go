package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"

	"github.com/cricketlabs/livestats/internal/domain/player"
	"github.com/cricketlabs/livestats/internal/infrastructure/repository/memory"
)

func TestExportService_PlayersCSV(t *testing.T) {
	t.Parallel()

	repo := memory.NewPlayerRepository(memory.SeedPlayers())
	svc := NewExportService(repo)

	raw, err := svc.ExportPlayersCSV(context.Background(), player.ListFilter{})
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	records, err := csv.NewReader(bytes.NewReader(raw)).ReadAll()
	if err != nil {
		t.Fatalf("parse exported csv: %v", err)
	}
	if len(records) != len(memory.SeedPlayers())+1 {
		t.Fatalf("expected header plus %d rows, got %d", len(memory.SeedPlayers()), len(records))
	}
	if records[0][0] != "player_id" || records[0][1] != "name" {
		t.Fatalf("unexpected header: %v", records[0])
	}
	for _, row := range records[1:] {
		if len(row) != len(playerExportHeader) {
			t.Fatalf("ragged csv row: %v", row)
		}
		if row[1] == "" {
			t.Fatalf("expected player name in row: %v", row)
		}
	}
}

func TestExportService_FilterNarrowsRows(t *testing.T) {
	t.Parallel()

	repo := memory.NewPlayerRepository(memory.SeedPlayers())
	svc := NewExportService(repo)

	raw, err := svc.ExportPlayersCSV(context.Background(), player.ListFilter{Country: "India"})
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	records, err := csv.NewReader(bytes.NewReader(raw)).ReadAll()
	if err != nil {
		t.Fatalf("parse exported csv: %v", err)
	}
	if len(records) != 5 {
		t.Fatalf("expected header plus 4 indian players, got %d rows", len(records))
	}
	for _, row := range records[1:] {
		if row[2] != "India" {
			t.Fatalf("expected only indian players, got %v", row)
		}
	}
}
