// Command dendy runs an NES ROM in an ebiten window.
package main

import (
	"flag"
	"image/color"
	"log"

	"dendy/console"
	"dendy/mappers"
	"dendy/nesrom"
	"dendy/ppu"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	romFile = flag.String("nes_rom", "", "Path to NES ROM to run.")
	scale   = flag.Int("scale", 2, "Integer window scale factor.")
)

// Buttons, as bits:
// 0 - A
// 1 - B
// 2 - Select
// 3 - Start
// 4 - Up
// 5 - Down
// 6 - Left
// 7 - Right
var keys = []ebiten.Key{
	ebiten.KeyA,
	ebiten.KeyB,
	ebiten.KeySpace,
	ebiten.KeyEnter,
	ebiten.KeyUp,
	ebiten.KeyDown,
	ebiten.KeyLeft,
	ebiten.KeyRight,
}

func pollController() uint8 {
	var mask uint8
	for i, key := range keys {
		if ebiten.IsKeyPressed(key) {
			mask |= 1 << i
		}
	}
	return mask
}

// game adapts a console.Bus to the ebiten.Game interface, driving the
// master clock from Update rather than a detached goroutine: one
// Update call ticks the bus until a frame completes.
type game struct {
	bus *console.Bus
}

func (g *game) Update() error {
	g.bus.SetController(0, pollController())
	for !g.bus.FrameReady() {
		g.bus.TickMaster()
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	fb := g.bus.FrameBuffer()
	for y := 0; y < ppu.Height; y++ {
		for x := 0; x < ppu.Width; x++ {
			c := fb[y][x]
			screen.Set(x, y, color.RGBA{c.R, c.G, c.B, 0xFF})
		}
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ppu.Width, ppu.Height
}

func main() {
	flag.Parse()

	rom, err := nesrom.New(*romFile)
	if err != nil {
		log.Fatalf("Invalid ROM: %v", err)
	}

	m, err := mappers.Get(rom)
	if err != nil {
		log.Fatalf("Couldn't Get() mapper: %v", err)
	}

	bus := console.New(m)
	bus.Reset()

	ebiten.SetWindowSize(ppu.Width*(*scale), ppu.Height*(*scale))
	ebiten.SetWindowTitle("dendy")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(&game{bus: bus}); err != nil {
		log.Fatal(err)
	}
}
