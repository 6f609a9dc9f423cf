// Package render draws solved puzzles as PNG images.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/vovakirdan/lazor/internal/core"
	"github.com/vovakirdan/lazor/internal/solver"
)

// DefaultBlockSize is the rendered size of one grid cell in pixels.
const DefaultBlockSize = 50

var (
	colorReflect  = color.RGBA{255, 255, 255, 255}
	colorOpaque   = color.RGBA{0, 0, 0, 255}
	colorRefract  = color.RGBA{255, 0, 0, 255}
	colorEmpty    = color.RGBA{150, 150, 150, 255}
	colorBoundary = color.RGBA{100, 100, 100, 255}
	colorGridLine = color.RGBA{0, 0, 0, 255}
	colorBeam     = color.RGBA{255, 0, 0, 255}
	colorTarget   = color.RGBA{255, 255, 255, 255}
	colorLabel    = color.RGBA{30, 30, 30, 255}
)

func blockColor(bl core.Block) color.RGBA {
	switch bl {
	case core.BlockReflect:
		return colorReflect
	case core.BlockOpaque:
		return colorOpaque
	case core.BlockRefract:
		return colorRefract
	case core.BlockBoundary:
		return colorBoundary
	default:
		return colorEmpty
	}
}

// Image renders the solved arrangement, beam paths, emitters and targets
// into an RGBA image. Coordinates in the solution are doubled, so one grid
// cell spans blockSize pixels and one doubled step spans blockSize/2.
func Image(sol *solver.Solution, blockSize int) *image.RGBA {
	if blockSize <= 0 {
		blockSize = DefaultBlockSize
	}
	rows := len(sol.Grid)
	cols := 0
	if rows > 0 {
		cols = len(sol.Grid[0])
	}
	img := image.NewRGBA(image.Rect(0, 0, cols*blockSize, rows*blockSize))

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			bl := sol.Grid[y][x]
			fillRect(img, x*blockSize, y*blockSize, blockSize, blockSize, blockColor(bl))
			if bl.Movable() && bl != core.BlockEmpty {
				labelCell(img, x, y, blockSize, bl)
			}
		}
	}

	drawGridLines(img, cols*blockSize, rows*blockSize, blockSize)
	drawBeams(img, sol.Paths, blockSize)
	drawEmitters(img, sol.Puzzle.Lasers, blockSize)
	drawTargets(img, sol.Puzzle.Targets, blockSize)

	return img
}

// WritePNG renders the solution and writes it to path. A missing or foreign
// extension is replaced with .png.
func WritePNG(path string, sol *solver.Solution, blockSize int) (string, error) {
	if !strings.EqualFold(filepath.Ext(path), ".png") {
		path = strings.TrimSuffix(path, filepath.Ext(path)) + ".png"
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating image file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, Image(sol, blockSize)); err != nil {
		return "", fmt.Errorf("encoding png: %w", err)
	}
	return path, nil
}

func drawGridLines(img *image.RGBA, w, h, blockSize int) {
	for y := 0; y <= h; y += blockSize {
		fillRect(img, 0, y-1, w, 2, colorGridLine)
	}
	for x := 0; x <= w; x += blockSize {
		fillRect(img, x-1, 0, 2, h, colorGridLine)
	}
}

func drawBeams(img *image.RGBA, paths []core.Path, blockSize int) {
	half := blockSize / 2
	for _, p := range paths {
		for i := 0; i+1 < len(p.States); i++ {
			a, b := p.States[i], p.States[i+1]
			drawLine(img, a.X*half, a.Y*half, b.X*half, b.Y*half, colorBeam)
		}
	}
}

func drawEmitters(img *image.RGBA, lasers []core.Laser, blockSize int) {
	half := blockSize / 2
	for _, l := range lasers {
		fillCircle(img, l.X*half, l.Y*half, 5, colorBeam)
	}
}

func drawTargets(img *image.RGBA, targets []core.Coord, blockSize int) {
	half := blockSize / 2
	for _, t := range targets {
		fillCircle(img, t.X*half, t.Y*half, 5, colorTarget)
		drawCircle(img, t.X*half, t.Y*half, 5, colorBeam)
		drawCircle(img, t.X*half, t.Y*half, 6, colorBeam)
	}
}

// labelCell stamps the block letter in the cell's corner so white-on-white
// and black-on-black blocks stay identifiable.
func labelCell(img *image.RGBA, x, y, blockSize int, bl core.Block) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(colorLabel),
		Face: basicfont.Face7x13,
		Dot: fixed.P(
			x*blockSize+4,
			y*blockSize+basicfont.Face7x13.Ascent+3,
		),
	}
	d.DrawString(string(bl.Char()))
}

func fillRect(img *image.RGBA, x, y, w, h int, c color.RGBA) {
	b := img.Bounds()
	for py := y; py < y+h; py++ {
		if py < b.Min.Y || py >= b.Max.Y {
			continue
		}
		for px := x; px < x+w; px++ {
			if px < b.Min.X || px >= b.Max.X {
				continue
			}
			img.SetRGBA(px, py, c)
		}
	}
}

// drawLine rasterizes a 2px-thick segment with the classic Bresenham walk.
// Beam segments are axis-aligned or diagonal, both of which it handles.
func drawLine(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		fillRect(img, x0, y0, 2, 2, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func fillCircle(img *image.RGBA, cx, cy, r int, c color.RGBA) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				setPixel(img, cx+dx, cy+dy, c)
			}
		}
	}
}

func drawCircle(img *image.RGBA, cx, cy, r int, c color.RGBA) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			d := dx*dx + dy*dy
			if d <= r*r && d > (r-1)*(r-1) {
				setPixel(img, cx+dx, cy+dy, c)
			}
		}
	}
}

func setPixel(img *image.RGBA, x, y int, c color.RGBA) {
	if image.Pt(x, y).In(img.Bounds()) {
		img.SetRGBA(x, y, c)
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
