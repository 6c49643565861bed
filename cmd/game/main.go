package main

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kadewils/slashrush/internal/game"
)

func main() {
	ebiten.SetWindowTitle("Slash Rush")
	ebiten.SetWindowSize(1280, 720)
	if err := ebiten.RunGame(game.New(time.Now().UnixNano())); err != nil {
		log.Fatal(err)
	}
}
