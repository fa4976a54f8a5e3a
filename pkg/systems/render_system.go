package systems

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/golang/geo/r3"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/decker502/apartment/pkg/components"
	"github.com/decker502/apartment/pkg/ecs"
	"github.com/decker502/apartment/pkg/game"
	"github.com/decker502/apartment/pkg/utils"
)

const (
	// 环境光强度：落地灯关 / 开
	ambientDim    = 0.5
	ambientBright = 0.8

	labelFontSize = 14
	// maxBatchVertices DrawTriangles 使用 uint16 索引
	maxBatchVertices = 65000
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)

	// 主光方向（指向光源）
	lightDir = r3.Vector{X: 0.35, Y: 1, Z: 0.5}.Normalize()
)

func init() {
	whiteImage.Fill(color.White)
}

// drawItem 一个待绘制的屏幕多边形（面或粒子）
type drawItem struct {
	depth float64
	poly  []screenPoint
	color colorful.Color
}

type screenPoint struct {
	X, Y float64
}

// RenderSystem 软件投影渲染：长方体面和粒子按深度从远到近绘制（画家算法）
type RenderSystem struct {
	entityManager *ecs.EntityManager
	state         *game.ApplianceState
	camera        *CameraSystem
	ambientKey    string
	backdrop      colorful.Color

	face     *text.GoTextFace
	items    []drawItem
	vertices []ebiten.Vertex
	indices  []uint16

	// 上一帧统计（调试信息）
	LastFaces     int
	LastParticles int
}

// NewRenderSystem 创建渲染系统
// ambientKey 为控制全局环境光的开关（客厅落地灯）
func NewRenderSystem(em *ecs.EntityManager, state *game.ApplianceState, camera *CameraSystem, ambientKey string, backdrop colorful.Color) (*RenderSystem, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load label font: %w", err)
	}
	return &RenderSystem{
		entityManager: em,
		state:         state,
		camera:        camera,
		ambientKey:    ambientKey,
		backdrop:      backdrop,
		face:          &text.GoTextFace{Source: source, Size: labelFontSize},
	}, nil
}

// Ambient 当前环境光强度
func (s *RenderSystem) Ambient() float64 {
	if s.state != nil && s.state.IsOn(s.ambientKey) {
		return ambientBright
	}
	return ambientDim
}

// Draw 绘制整个场景
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	screen.Fill(s.backdrop)
	proj := s.camera.Projection()
	s.collect(proj)
	s.drawItems(screen)
	s.drawLabels(screen, proj)
}

// collect 收集并排序本帧所有多边形
func (s *RenderSystem) collect(proj utils.Projection) {
	s.items = s.items[:0]
	s.LastFaces, s.LastParticles = 0, 0
	ambient := s.Ambient()
	eye := proj.Eye

	for _, id := range ecs.GetEntitiesWith2[*components.MeshComponent, *components.TransformComponent](s.entityManager) {
		mesh, _ := ecs.GetComponent[*components.MeshComponent](s.entityManager, id)
		if mesh.Hidden {
			continue
		}
		wt := WorldTransformOf(s.entityManager, id)
		for _, box := range mesh.Boxes {
			s.collectBox(proj, eye, wt, box, ambient)
		}
	}

	for _, id := range ecs.GetEntitiesWith2[*components.ParticleFieldComponent, *components.TransformComponent](s.entityManager) {
		pf, _ := ecs.GetComponent[*components.ParticleFieldComponent](s.entityManager, id)
		if !pf.Visible || pf.Field == nil {
			continue
		}
		wt := WorldTransformOf(s.entityManager, id)
		rot := pf.Field.Rotation()
		for _, p := range pf.Field.Positions() {
			s.collectPoint(proj, wt.Point(utils.RotateY(p, rot)), pf.Size, pf.Color)
		}
	}

	for _, id := range ecs.GetEntitiesWith2[*components.PointCloudComponent, *components.TransformComponent](s.entityManager) {
		cloud, _ := ecs.GetComponent[*components.PointCloudComponent](s.entityManager, id)
		wt := WorldTransformOf(s.entityManager, id)
		for _, p := range cloud.Points {
			s.collectPoint(proj, wt.Point(p), cloud.Size, cloud.Color)
		}
	}

	sort.SliceStable(s.items, func(i, j int) bool {
		return s.items[i].depth > s.items[j].depth
	})
}

func (s *RenderSystem) collectBox(proj utils.Projection, eye r3.Vector, wt WorldTransform, box components.Box, ambient float64) {
	corners := box.Corners()
	var world [8]r3.Vector
	for i, c := range corners {
		world[i] = wt.Point(c)
	}

	for _, f := range components.BoxFaces {
		normal := wt.Dir(f.Normal)
		center := world[f.Indices[0]].Add(world[f.Indices[2]]).Mul(0.5)
		// 背面剔除
		if normal.Dot(center.Sub(eye)) >= 0 {
			continue
		}

		view := make([]r3.Vector, 0, 4)
		for _, idx := range f.Indices {
			view = append(view, proj.ToView(world[idx]))
		}
		view = proj.ClipNear(view)
		if view == nil {
			continue
		}

		poly := make([]screenPoint, 0, len(view))
		depth := 0.0
		for _, v := range view {
			x, y, _ := proj.ViewToScreen(v)
			poly = append(poly, screenPoint{X: x, Y: y})
			depth += v.Z
		}

		c := box.Color
		if !box.Emissive {
			k := utils.Lerp(ambient, 1, 0.8*math.Max(0, normal.Dot(lightDir)))
			c = scaleColor(c, k)
		}
		s.items = append(s.items, drawItem{depth: depth / float64(len(view)), poly: poly, color: c})
		s.LastFaces++
	}
}

func (s *RenderSystem) collectPoint(proj utils.Projection, world r3.Vector, size float64, c colorful.Color) {
	x, y, depth, ok := proj.Project(world)
	if !ok {
		return
	}
	half := math.Max(0.5, size*proj.Focal()/depth/2)
	s.items = append(s.items, drawItem{
		depth: depth,
		poly: []screenPoint{
			{X: x - half, Y: y - half},
			{X: x + half, Y: y - half},
			{X: x + half, Y: y + half},
			{X: x - half, Y: y + half},
		},
		color: c,
	})
	s.LastParticles++
}

// drawItems 把多边形按扇形三角化后批量提交
func (s *RenderSystem) drawItems(screen *ebiten.Image) {
	s.vertices = s.vertices[:0]
	s.indices = s.indices[:0]
	for _, item := range s.items {
		if len(s.vertices)+len(item.poly) > maxBatchVertices {
			s.flush(screen)
		}
		r, g, b := float32(item.color.R), float32(item.color.G), float32(item.color.B)
		base := uint16(len(s.vertices))
		for _, p := range item.poly {
			s.vertices = append(s.vertices, ebiten.Vertex{
				DstX: float32(p.X), DstY: float32(p.Y),
				SrcX: 1, SrcY: 1,
				ColorR: r, ColorG: g, ColorB: b, ColorA: 1,
			})
		}
		for i := 1; i+1 < len(item.poly); i++ {
			s.indices = append(s.indices, base, base+uint16(i), base+uint16(i+1))
		}
	}
	s.flush(screen)
}

func (s *RenderSystem) flush(screen *ebiten.Image) {
	if len(s.indices) > 0 {
		op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
		screen.DrawTriangles(s.vertices, s.indices, whiteSubImage, op)
	}
	s.vertices = s.vertices[:0]
	s.indices = s.indices[:0]
}

// drawLabels 绘制房间名和屏幕文字
func (s *RenderSystem) drawLabels(screen *ebiten.Image, proj utils.Projection) {
	for _, id := range ecs.GetEntitiesWith2[*components.LabelComponent, *components.TransformComponent](s.entityManager) {
		label, _ := ecs.GetComponent[*components.LabelComponent](s.entityManager, id)
		if label.Text == "" {
			continue
		}
		x, y, depth, ok := proj.Project(WorldTransformOf(s.entityManager, id).Point(r3.Vector{}))
		if !ok {
			continue
		}
		scale := label.Scale
		if scale == 0 {
			scale = 1
		}
		// 远处文字缩小，但保持可读
		scale *= utils.Clamp(20/depth, 0.5, 2)

		op := &text.DrawOptions{}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(x, y)
		op.ColorScale.ScaleWithColor(label.Color)
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
		op.LineSpacing = labelFontSize * 1.3
		text.Draw(screen, label.Text, s.face, op)
	}
}
