package scene

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/museum/oerror"
	"github.com/oomph-ac/museum/obstacle"
	"github.com/oomph-ac/museum/utils"
	"github.com/oomph-ac/museum/world"
	"github.com/sirupsen/logrus"
)

// DefaultWallThickness is the thickness of walls of rooms that do not set one.
const DefaultWallThickness float32 = 0.5

// Build assembles a registry from the layout passed.
func Build(l Layout, log *logrus.Logger) (*world.Registry, error) {
	if !(l.FloorHeight > 0) {
		return nil, oerror.New("floor height must be positive, got %v", l.FloorHeight)
	}
	if len(l.Floors) == 0 {
		return nil, oerror.New("layout has no floors")
	}
	bands := world.UniformBands(l.Ground, l.FloorHeight, len(l.Floors), l.Floors...)
	r, err := world.NewRegistry(log, bands)
	if err != nil {
		return nil, err
	}

	b := &builder{layout: l, bands: bands}
	for i, room := range l.Rooms {
		if room.Name == "" {
			room.Name = fmt.Sprintf("room%d", i)
		}
		if err := b.room(room); err != nil {
			return nil, err
		}
	}
	for _, p := range l.Pillars {
		if err := b.pillar(p); err != nil {
			return nil, err
		}
	}
	for _, p := range l.Pedestals {
		if err := b.pedestal(p); err != nil {
			return nil, err
		}
	}
	if err := r.Add(b.obstacles...); err != nil {
		return nil, err
	}
	for _, s := range l.Stairs {
		r.AddStairs(world.StairZone{Name: s.Name, Footprint: obstacle.RotatedRect{
			ID:        s.Name,
			Center:    mgl32.Vec2(s.Center),
			HalfWidth: s.Width / 2,
			HalfDepth: s.Depth / 2,
			Rotation:  s.Rotation,
		}})
	}
	utils.LoggerOrNop(log).Infof("scene: built %d obstacles, %d doors and %d stair zones over %d floors", r.Len(), len(r.DoorNames()), len(r.StairZones()), len(bands))
	return r, nil
}

type builder struct {
	layout    Layout
	bands     []world.FloorBand
	obstacles []obstacle.Obstacle
}

func (b *builder) floor(index int) (world.FloorBand, error) {
	if index < 0 || index >= len(b.bands) {
		return world.FloorBand{}, oerror.New("floor %d does not exist (layout has %d floors)", index, len(b.bands))
	}
	return b.bands[index], nil
}

// span is an interval along a wall, measured from the middle of the wall.
type span struct {
	from, to float32
}

func (b *builder) room(room Room) error {
	band, err := b.floor(room.Floor)
	if err != nil {
		return fmt.Errorf("room %q: %w", room.Name, err)
	}
	if !(room.Width > 0) || !(room.Depth > 0) {
		return oerror.New("room %q has invalid size %vx%v", room.Name, room.Width, room.Depth)
	}
	thickness := room.WallThickness
	if thickness == 0 {
		thickness = DefaultWallThickness
	}

	bySide := make(map[Side][]Opening, len(sides))
	for _, o := range room.Openings {
		if !slices.Contains(sides, o.Side) {
			return oerror.New("room %q: opening %q is on unknown side %q", room.Name, o.Name, o.Side)
		}
		bySide[o.Side] = append(bySide[o.Side], o)
	}

	full := obstacle.Extent{MinY: band.FloorY, MaxY: band.Top()}
	for _, side := range sides {
		length := room.Width
		if side == SideEast || side == SideWest {
			length = room.Depth
		}
		openings := bySide[side]
		slices.SortFunc(openings, func(a, b Opening) int {
			return cmp.Compare(a.Offset, b.Offset)
		})

		cursor := -length / 2
		for i, o := range openings {
			gap := span{from: o.Offset - o.Width/2, to: o.Offset + o.Width/2}
			if !(o.Width > 0) || gap.from < cursor-1e-4 || gap.to > length/2+1e-4 {
				return oerror.New("room %q: opening %q does not fit on the %s wall", room.Name, o.Name, side)
			}
			if gap.from > cursor {
				b.wall(room, side, span{cursor, gap.from}, thickness, full, fmt.Sprintf("%s/%s/%d", room.Name, side, i))
			}
			cursor = gap.to

			height := o.Height
			if height == 0 || height > band.Height {
				height = band.Height
			}
			if height < band.Height {
				b.wall(room, side, gap, thickness, obstacle.Extent{MinY: band.FloorY + height, MaxY: band.Top()}, fmt.Sprintf("%s/%s/lintel%d", room.Name, side, i))
			}
			if o.Door {
				name := o.Name
				if name == "" {
					name = fmt.Sprintf("%s/%s/door%d", room.Name, side, i)
				}
				door := obstacle.NewDoor(b.segment(room, side, gap, thickness, obstacle.Extent{MinY: band.FloorY, MaxY: band.FloorY + height}, name))
				door.SetOpen(o.Open)
				b.obstacles = append(b.obstacles, door)
			}
		}
		if cursor < length/2 {
			b.wall(room, side, span{cursor, length / 2}, thickness, full, fmt.Sprintf("%s/%s/%d", room.Name, side, len(openings)))
		}
	}
	return nil
}

func (b *builder) wall(room Room, side Side, s span, thickness float32, ext obstacle.Extent, name string) {
	b.obstacles = append(b.obstacles, b.segment(room, side, s, thickness, ext, name))
}

// segment returns the rectangle covering the span s of a wall of the room, rotated with the room.
func (b *builder) segment(room Room, side Side, s span, thickness float32, ext obstacle.Extent, name string) obstacle.RotatedRect {
	along := (s.from + s.to) / 2
	halfLen := (s.to - s.from) / 2

	var local mgl32.Vec2
	rect := obstacle.RotatedRect{ID: name, Rotation: room.Rotation, Vertical: ext}
	switch side {
	case SideNorth:
		local = mgl32.Vec2{along, -room.Depth / 2}
		rect.HalfWidth, rect.HalfDepth = halfLen, thickness/2
	case SideSouth:
		local = mgl32.Vec2{along, room.Depth / 2}
		rect.HalfWidth, rect.HalfDepth = halfLen, thickness/2
	case SideEast:
		local = mgl32.Vec2{room.Width / 2, along}
		rect.HalfWidth, rect.HalfDepth = thickness/2, halfLen
	case SideWest:
		local = mgl32.Vec2{-room.Width / 2, along}
		rect.HalfWidth, rect.HalfDepth = thickness/2, halfLen
	}
	rect.Center = mgl32.Vec2(room.Center).Add(toWorld(local, room.Rotation))
	return rect
}

// toWorld rotates a room-local offset into world space. It is the inverse of RotatedRect.Local.
func toWorld(local mgl32.Vec2, rotation float32) mgl32.Vec2 {
	if rotation == 0 {
		return local
	}
	s, c := math32.Sincos(rotation)
	return mgl32.Vec2{
		local.X()*c - local.Y()*s,
		local.X()*s + local.Y()*c,
	}
}

func (b *builder) pillar(p Pillar) error {
	ext := obstacle.Extent{}
	if !p.FullHeight {
		band, err := b.floor(p.Floor)
		if err != nil {
			return fmt.Errorf("pillar %q: %w", p.Name, err)
		}
		ext = obstacle.Extent{MinY: band.FloorY, MaxY: band.Top()}
	}
	b.obstacles = append(b.obstacles, obstacle.Circle{ID: p.Name, Center: mgl32.Vec2(p.Center), Radius: p.Radius, Vertical: ext})
	return nil
}

func (b *builder) pedestal(p Pedestal) error {
	band, err := b.floor(p.Floor)
	if err != nil {
		return fmt.Errorf("pedestal %q: %w", p.Name, err)
	}
	height := p.Height
	if height == 0 {
		height = band.Height
	}
	b.obstacles = append(b.obstacles, obstacle.RotatedRect{
		ID:        p.Name,
		Center:    mgl32.Vec2(p.Center),
		HalfWidth: p.Width / 2,
		HalfDepth: p.Depth / 2,
		Rotation:  p.Rotation,
		Vertical:  obstacle.Extent{MinY: band.FloorY, MaxY: band.FloorY + height},
	})
	return nil
}
