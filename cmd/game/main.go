package main

import (
	"embed"
	"errors"
	"flag"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/pixelmenu/internal/application/game"
	"github.com/younwookim/pixelmenu/internal/application/replay"
	"github.com/younwookim/pixelmenu/internal/application/scene/mainmenu"
	"github.com/younwookim/pixelmenu/internal/application/scene/options"
	"github.com/younwookim/pixelmenu/internal/application/system"
	"github.com/younwookim/pixelmenu/internal/infrastructure/config"
)

//go:embed configs assets
var embedded embed.FS

func main() {
	// Parse command line flags
	appName := flag.String("app", "pixelmenu", "Settings storage name")
	debug := flag.Bool("debug", false, "Start with the debug overlay shown (F3 toggles)")
	recordFlag := flag.Bool("record", false, "Record input, saved when the game quits")
	recordFile := flag.String("record-file", "", "Recording file name (default replay_<time>.json)")
	replayFlag := flag.String("replay", "", "Play input back from a recorded file")
	flag.Parse()

	// Load configurations using embedded filesystem
	configFS, err := fs.Sub(embedded, "configs")
	if err != nil {
		log.Fatalf("Failed to get config subfs: %v", err)
	}
	assetFS, err := fs.Sub(embedded, "assets")
	if err != nil {
		log.Fatalf("Failed to get asset subfs: %v", err)
	}
	cfg, err := config.NewFSLoader(configFS, "configs").LoadAll()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	resolutions := len(cfg.Menu.Resolutions)
	store, err := config.OpenSettingsStore(*appName, resolutions)
	if err != nil {
		log.Printf("Settings will not be saved: %v", err)
		store = config.NewSettingsStore(nil, resolutions)
	}

	// Input: live keyboard, optionally recorded or replaced by a replay
	var input game.InputSource = system.NewInputSystem()
	var recorder *replay.Recorder
	switch {
	case *replayFlag != "":
		data, err := replay.LoadReplay(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		replayer, err := replay.NewReplayer(*data)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		input = replayer
		log.Printf("Replaying %s (%d frames)", *replayFlag, replayer.TotalFrames())
	case *recordFlag:
		if *recordFile == "" {
			*recordFile = replay.GenerateFilename()
		}
		recorder = replay.NewRecorder(input)
		input = recorder
		log.Printf("Recording enabled: %s", *recordFile)
	}

	// Create game
	display := cfg.Display
	g, err := game.New(game.Options{
		ScreenWidth:  display.NativeWidth,
		ScreenHeight: display.NativeHeight,
		TPS:          display.TPS,
		Resolutions:  resolutions,
		Store:        store,
		Input:        input,
		Debug:        *debug,
	})
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}

	background, err := mainmenu.LoadBackground(assetFS, cfg.Menu.MainMenu.Background)
	if err != nil {
		log.Printf("Using generated background: %v", err)
	}

	g.SetOptionsMenu(options.New(g, cfg.Menu.OptionsMenu, cfg.Menu.Resolutions, display.NativeWidth, display.NativeHeight))
	g.Start(mainmenu.New(g, cfg.Menu.MainMenu, background, display.NativeWidth, display.NativeHeight))

	// Set up ebiten
	ebiten.SetWindowTitle(display.Title)
	ebiten.SetTPS(display.TPS)

	// Run game
	err = ebiten.RunGame(g)

	if recorder != nil {
		if saveErr := recorder.Save(*recordFile); saveErr != nil {
			log.Printf("Failed to save recording: %v", saveErr)
		} else {
			log.Printf("Recording saved: %s (%d frames)", *recordFile, recorder.FrameCount())
		}
	}

	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
