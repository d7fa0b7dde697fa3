package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"petplay/internal/achievement"
	"petplay/internal/config"
	"petplay/internal/game"
	"petplay/internal/storage"
	"petplay/internal/ui"
)

func main() {
	dir, err := storage.DefaultDir()
	if err != nil {
		fmt.Printf("Error locating data directory: %v\n", err)
		os.Exit(1)
	}

	// Background activity goes to a log file so it never corrupts the TUI.
	logFile, err := os.OpenFile(filepath.Join(dir, "petplay.log"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err == nil {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	bal, err := config.Load(filepath.Join(dir, "balance.yaml"))
	if err != nil {
		log.Printf("Error reading balance file: %v. Using defaults.", err)
	}

	blobs, err := storage.NewFileStore(dir)
	if err != nil {
		// Storage being unavailable is non-fatal: play unpersisted.
		log.Printf("Storage unavailable, progress will not be saved: %v", err)
		blobs = nil
	}

	var store storage.Store = storage.NewMemStore()
	if blobs != nil {
		store = blobs
	}

	tracker := achievement.NewTracker(store)
	gameStore := game.NewStore(store, bal, tracker)

	program := tea.NewProgram(ui.NewModel(gameStore, tracker))
	if _, err := program.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}
