package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/cannonball/common"
	"github.com/milk9111/cannonball/prefabs"
)

func main() {
	debug := flag.Bool("debug", false, "log launches, committed ledges and reloads")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	levelName := flag.String("level", prefabs.DefaultLevel, "level name in prefabs/ (basename, .yaml optional) or a path")
	watch := flag.Bool("watch", false, "reload tuning and colors when the level file changes")
	width := flag.Int("width", common.BaseWidth, "logical screen width")
	height := flag.Int("height", common.BaseHeight, "logical screen height")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("cannonball")

	game, err := NewGame(Options{
		Level:  *levelName,
		Debug:  *debug,
		Watch:  *watch,
		Width:  *width,
		Height: *height,
	})
	if err != nil {
		log.Fatal(err)
	}

	// The cursor is drawn by the game.
	ebiten.SetCursorMode(ebiten.CursorModeHidden)

	err = ebiten.RunGame(game)
	game.Close()
	if err != nil {
		log.Fatal(err)
	}
}
