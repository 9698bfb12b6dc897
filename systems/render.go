package systems

import (
	"image"
	"image/color"
	"math"

	"github.com/automoto/hexcloud/components"
	cfg "github.com/automoto/hexcloud/config"
	"github.com/automoto/hexcloud/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	whiteSubImage *ebiten.Image
	fogImage      *ebiten.Image

	// Reused between frames to avoid allocations
	shapeVertices []ebiten.Vertex
	shapeIndices  []uint16
)

// fillSource returns a 1x1 white source image for DrawTriangles.
func fillSource() *ebiten.Image {
	if whiteSubImage == nil {
		whiteImage := ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
		whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// Draw order, back to front
var drawLayers = []*donburi.ComponentType[donburi.Tag]{
	tags.Wall,
	tags.Debris,
	tags.Hexling,
	tags.Enemy,
	tags.Player,
}

// DrawShapes renders every visible entity as a filled regular polygon.
func DrawShapes(e *ecs.ECS, screen *ebiten.Image) {
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	for _, layer := range drawLayers {
		// Hexlings also carry the wall tag; draw them in their own layer.
		skipHexlings := layer == tags.Wall
		layer.Each(e.World, func(entry *donburi.Entry) {
			if skipHexlings && entry.HasComponent(tags.Hexling) {
				return
			}
			if !entry.HasComponent(components.Shape) || !entry.HasComponent(components.Object) {
				return
			}
			shape := components.Shape.Get(entry)
			wx, wy := centerOf(entry)
			x, y := WorldToScreen(e, wx, wy)

			// Skip shapes completely off screen
			if x+shape.Radius < 0 || x-shape.Radius > width || y+shape.Radius < 0 || y-shape.Radius > height {
				return
			}
			drawShape(screen, x, y, shape)
		})
	}
}

func drawShape(screen *ebiten.Image, x, y float64, shape *components.ShapeData) {
	if shape.Sides < 3 {
		vector.FillCircle(screen, float32(x), float32(y), float32(shape.Radius), shape.Color, true)
		return
	}

	var path vector.Path
	scaleX := shape.ScaleX
	for i := 0; i < shape.Sides; i++ {
		// Screen y points down, so negate the angle to keep rotation counter-clockwise.
		angle := shape.Rotation + 2*math.Pi*float64(i)/float64(shape.Sides)
		px := x + math.Cos(angle)*shape.Radius*scaleX
		py := y - math.Sin(angle)*shape.Radius
		if i == 0 {
			path.MoveTo(float32(px), float32(py))
		} else {
			path.LineTo(float32(px), float32(py))
		}
	}
	path.Close()
	fillPath(screen, &path, shape.Color)
}

func fillPath(dst *ebiten.Image, path *vector.Path, clr color.RGBA) {
	//nolint:staticcheck // TODO: migrate to vector.FillPath
	shapeVertices, shapeIndices = path.AppendVerticesAndIndicesForFilling(shapeVertices[:0], shapeIndices[:0])
	r, g, b, a := float32(clr.R)/255, float32(clr.G)/255, float32(clr.B)/255, float32(clr.A)/255
	for i := range shapeVertices {
		shapeVertices[i].SrcX = 1
		shapeVertices[i].SrcY = 1
		shapeVertices[i].ColorR = r
		shapeVertices[i].ColorG = g
		shapeVertices[i].ColorB = b
		shapeVertices[i].ColorA = a
	}
	dst.DrawTriangles(shapeVertices, shapeIndices, fillSource(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// DrawFog darkens the screen except around the player and every hexling.
func DrawFog(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Fog.First(e.World)
	if !ok {
		return
	}
	fog := components.Fog.Get(entry)

	bounds := screen.Bounds()
	if fogImage == nil || fogImage.Bounds() != bounds {
		fogImage = ebiten.NewImage(bounds.Dx(), bounds.Dy())
	}
	fogImage.Fill(cfg.Fog.Color)

	var holes vector.Path
	if fog.HasPlayer {
		x, y := WorldToScreen(e, fog.Player.X, fog.Player.Y)
		holes.MoveTo(float32(x+cfg.Fog.PlayerRadius), float32(y))
		holes.Arc(float32(x), float32(y), float32(cfg.Fog.PlayerRadius), 0, 2*math.Pi, vector.Clockwise)
		holes.Close()
	}
	for _, pos := range fog.Hexlings {
		x, y := WorldToScreen(e, pos.X, pos.Y)
		holes.MoveTo(float32(x+cfg.Fog.HexlingRadius), float32(y))
		holes.Arc(float32(x), float32(y), float32(cfg.Fog.HexlingRadius), 0, 2*math.Pi, vector.Clockwise)
		holes.Close()
	}

	//nolint:staticcheck // TODO: migrate to vector.FillPath
	shapeVertices, shapeIndices = holes.AppendVerticesAndIndicesForFilling(shapeVertices[:0], shapeIndices[:0])
	for i := range shapeVertices {
		shapeVertices[i].SrcX = 1
		shapeVertices[i].SrcY = 1
		shapeVertices[i].ColorR = 1
		shapeVertices[i].ColorG = 1
		shapeVertices[i].ColorB = 1
		shapeVertices[i].ColorA = 1
	}
	fogImage.DrawTriangles(shapeVertices, shapeIndices, fillSource(), &ebiten.DrawTrianglesOptions{
		Blend:     ebiten.BlendClear,
		AntiAlias: true,
	})

	screen.DrawImage(fogImage, nil)
}
