package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/riptide/common"
)

func main() {
	debug := flag.Bool("debug", false, "show state and fps overlay")
	flag.Parse()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("riptide")

	if err := ebiten.RunGame(NewGame(*debug)); err != nil {
		log.Fatal(err)
	}
}
