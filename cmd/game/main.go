package main

import (
	"log"

	"github.com/Garsondee/Arena-Strike/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	ebiten.SetWindowTitle("Arena Strike")
	ebiten.SetWindowSize(1200, 840)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(game.New()); err != nil {
		log.Fatal(err)
	}
}
