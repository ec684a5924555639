package scene

// DefaultLayout returns the two storey museum: a 20 by 20 hall with an entrance door to the south,
// a garden door to the east, columns, pedestals and a staircase up to the gallery.
func DefaultLayout() Layout {
	return Layout{
		Ground:      0,
		FloorHeight: 4,
		Floors:      []string{"Ground Floor", "Upper Gallery"},
		Rooms: []Room{
			{
				Name:   "hall",
				Floor:  0,
				Width:  20,
				Depth:  20,
				Openings: []Opening{
					{Name: "entrance", Side: SideSouth, Width: 4, Height: 3, Door: true},
					{Name: "garden", Side: SideEast, Offset: -6, Width: 2, Height: 2.5, Door: true},
				},
			},
			{
				Name:   "gallery",
				Floor:  1,
				Width:  20,
				Depth:  20,
				Openings: []Opening{
					{Name: "balcony", Side: SideNorth, Width: 3, Height: 3, Door: true},
				},
			},
		},
		Pillars: []Pillar{
			{Name: "portico-west", Center: [2]float32{-6, 11.5}, Radius: 0.4, FullHeight: true},
			{Name: "portico-inner-west", Center: [2]float32{-3, 11.5}, Radius: 0.4, FullHeight: true},
			{Name: "portico-inner-east", Center: [2]float32{3, 11.5}, Radius: 0.4, FullHeight: true},
			{Name: "portico-east", Center: [2]float32{6, 11.5}, Radius: 0.4, FullHeight: true},
			{Name: "column-nw", Center: [2]float32{-5, -5}, Radius: 0.5, FullHeight: true},
			{Name: "column-ne", Center: [2]float32{5, -5}, Radius: 0.5, FullHeight: true},
			{Name: "column-sw", Center: [2]float32{-5, 5}, Radius: 0.5, FullHeight: true},
			{Name: "column-se", Center: [2]float32{5, 5}, Radius: 0.5, FullHeight: true},
		},
		Pedestals: []Pedestal{
			{Name: "bust", Label: "Marble Bust", Floor: 0, Center: [2]float32{-6, 0}, Width: 1, Depth: 1, Height: 1.2},
			{Name: "vase", Label: "Amphora", Floor: 0, Center: [2]float32{0, -6}, Width: 1, Depth: 1, Height: 1},
			{Name: "portrait", Label: "Portrait Stand", Floor: 1, Center: [2]float32{-6, -6}, Width: 2, Depth: 0.4, Height: 2, Rotation: 0.785398},
		},
		Stairs: []Stairs{
			{Name: "grand-staircase", Center: [2]float32{8, -2}, Width: 2, Depth: 6},
		},
	}
}
