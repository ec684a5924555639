package scene

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Side is a side of a room, named after the direction its outward normal points to. North is -Z.
type Side string

const (
	SideNorth Side = "north"
	SideSouth Side = "south"
	SideEast  Side = "east"
	SideWest  Side = "west"
)

var sides = []Side{SideNorth, SideSouth, SideEast, SideWest}

// Layout describes a building: its floors and everything the viewer can collide with. Layouts can be
// decoded from TOML.
type Layout struct {
	// Ground is the height of the ground floor.
	Ground float32
	// FloorHeight is the height of every floor.
	FloorHeight float32
	// Floors holds the label of every floor, from the ground up.
	Floors []string

	Rooms     []Room
	Pillars   []Pillar
	Pedestals []Pedestal
	Stairs    []Stairs
}

// Room is a rectangle of walls on a single floor.
type Room struct {
	Name  string
	Floor int
	// Center is the X and Z of the middle of the room.
	Center [2]float32
	// Width spans X and Depth spans Z before the room is rotated.
	Width, Depth float32
	// Rotation is the rotation of the room about its center in radians.
	Rotation float32
	// WallThickness is zero for the default thickness.
	WallThickness float32
	Openings      []Opening
}

// Opening is a gap in a wall of a room, optionally closed by a door.
type Opening struct {
	Name string
	Side Side
	// Offset moves the opening along its wall, measured from the middle of the wall.
	Offset float32
	Width  float32
	// Height is the height of the opening. Zero means the opening spans the whole floor. A wall
	// segment is placed above lower openings.
	Height float32
	Door   bool
	// Open sets the initial state of the door.
	Open bool
}

// Pillar is a round column.
type Pillar struct {
	Name   string
	Floor  int
	Center [2]float32
	Radius float32
	// FullHeight makes the pillar span every floor.
	FullHeight bool
}

// Pedestal is a rectangular exhibit stand. Viewers higher than the pedestal are not blocked by it.
type Pedestal struct {
	Name   string
	Label  string
	Floor  int
	Center [2]float32
	// Width spans X and Depth spans Z before rotation.
	Width, Depth float32
	Height       float32
	Rotation     float32
}

// Stairs is a footprint in which the viewer can move between floors.
type Stairs struct {
	Name         string
	Center       [2]float32
	Width, Depth float32
	Rotation     float32
}

// LoadLayout reads a layout from a TOML file.
func LoadLayout(path string) (Layout, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Layout{}, errors.New("layout file doesn't exist")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("error reading layout: %v", err)
	}
	var l Layout
	if err := toml.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("error decoding layout: %v", err)
	}
	return l, nil
}

// Save writes the layout to a TOML file.
func (l Layout) Save(path string) error {
	data, err := toml.Marshal(l)
	if err != nil {
		return fmt.Errorf("failed encoding layout: %v", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed writing layout: %v", err)
	}
	return nil
}
