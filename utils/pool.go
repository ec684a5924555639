package utils

import (
	"sync"

	"github.com/oomph-ac/museum/obstacle"
)

// ObstacleListPool is a pool of reusable obstacle slices used by broadphase queries.
var ObstacleListPool = sync.Pool{
	New: func() any {
		s := make([]obstacle.Obstacle, 0, 32)
		return &s
	},
}

// GetObstacleList retrieves an empty obstacle slice from the pool.
func GetObstacleList() *[]obstacle.Obstacle {
	list := ObstacleListPool.Get().(*[]obstacle.Obstacle)
	*list = (*list)[:0]
	return list
}

// PutObstacleList returns an obstacle slice to the pool.
func PutObstacleList(list *[]obstacle.Obstacle) {
	if list != nil {
		clear(*list)
		*list = (*list)[:0]
		ObstacleListPool.Put(list)
	}
}
