package levels

import (
	"fmt"
	"math/rand"
	"time"
)

// GenerateConfig controls the random maze generator.
type GenerateConfig struct {
	// Rows and Cols are rounded down to odd numbers, minimum 5.
	Rows, Cols int

	// Braid is the chance, from 0 to 1, that a dead end is opened into a
	// loop. Loops give portals somewhere useful to lead.
	Braid float64

	Ghosts int

	// Seed 0 picks a time-based seed.
	Seed int64
}

// Generate carves a maze with a recursive backtracker starting at (1,1),
// which is also the player spawn. Ghosts spawn on the floor cells farthest
// from the player. The same seed always yields the same level.
func Generate(cfg GenerateConfig) *Level {
	rows, cols := oddAtLeast5(cfg.Rows), oddAtLeast5(cfg.Cols)
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	grid := make([][]byte, rows)
	for r := range grid {
		grid[r] = make([]byte, cols)
		for c := range grid[r] {
			grid[r][c] = WallTile
		}
	}

	carve(grid, rng)
	if cfg.Braid > 0 {
		braid(grid, cfg.Braid, rng)
	}

	lvl := &Level{
		Name:   fmt.Sprintf("generated-%d", seed),
		Player: Spawn{Row: 1, Col: 1},
	}
	for _, line := range grid {
		lvl.Tiles = append(lvl.Tiles, string(line))
	}
	lvl.Ghosts = farthestSpawns(lvl, cfg.Ghosts, rng)
	return lvl
}

func oddAtLeast5(n int) int {
	if n < 5 {
		return 5
	}
	if n%2 == 0 {
		return n - 1
	}
	return n
}

var jumps = [4][2]int{{0, -2}, {0, 2}, {-2, 0}, {2, 0}}

func carve(grid [][]byte, rng *rand.Rand) {
	rows, cols := len(grid), len(grid[0])
	stack := []Spawn{{Row: 1, Col: 1}}
	grid[1][1] = FloorTile

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		candidates := make([][2]int, 0, 4)
		for _, d := range jumps {
			nr, nc := cur.Row+d[0], cur.Col+d[1]
			if nr > 0 && nr < rows-1 && nc > 0 && nc < cols-1 && grid[nr][nc] == WallTile {
				candidates = append(candidates, d)
			}
		}
		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}
		d := candidates[rng.Intn(len(candidates))]
		grid[cur.Row+d[0]/2][cur.Col+d[1]/2] = FloorTile
		next := Spawn{Row: cur.Row + d[0], Col: cur.Col + d[1]}
		grid[next.Row][next.Col] = FloorTile
		stack = append(stack, next)
	}
}

// braid opens one wall next to a dead end with the given probability.
func braid(grid [][]byte, p float64, rng *rand.Rand) {
	rows, cols := len(grid), len(grid[0])
	for r := 1; r < rows-1; r += 2 {
		for c := 1; c < cols-1; c += 2 {
			exits := 0
			for _, d := range jumps {
				if grid[r+d[0]/2][c+d[1]/2] == FloorTile {
					exits++
				}
			}
			if exits != 1 || rng.Float64() >= p {
				continue
			}
			walls := make([][2]int, 0, 3)
			for _, d := range jumps {
				nr, nc := r+d[0], c+d[1]
				wr, wc := r+d[0]/2, c+d[1]/2
				if nr > 0 && nr < rows-1 && nc > 0 && nc < cols-1 && grid[wr][wc] == WallTile {
					walls = append(walls, [2]int{wr, wc})
				}
			}
			if len(walls) > 0 {
				w := walls[rng.Intn(len(walls))]
				grid[w[0]][w[1]] = FloorTile
			}
		}
	}
}

// Distances returns the walking distance from the player spawn to every
// reachable floor cell.
func Distances(lvl *Level) map[Spawn]int {
	start := lvl.Player
	dist := map[Spawn]int{start: 0}
	if lvl.Wall(start.Row, start.Col) {
		return dist
	}
	queue := []Spawn{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range jumps {
			next := Spawn{Row: cur.Row + d[0]/2, Col: cur.Col + d[1]/2}
			if _, seen := dist[next]; seen || lvl.Wall(next.Row, next.Col) {
				continue
			}
			dist[next] = dist[cur] + 1
			queue = append(queue, next)
		}
	}
	return dist
}

func farthestSpawns(lvl *Level, n int, rng *rand.Rand) []Spawn {
	if n <= 0 {
		return nil
	}
	dist := Distances(lvl)
	best := 0
	for _, d := range dist {
		best = max(best, d)
	}
	var far []Spawn
	for r := 0; r < lvl.Rows(); r++ {
		for c := 0; c < lvl.Cols(); c++ {
			s := Spawn{Row: r, Col: c}
			if d, ok := dist[s]; ok && d > 0 && d*2 >= best {
				far = append(far, s)
			}
		}
	}
	rng.Shuffle(len(far), func(i, j int) { far[i], far[j] = far[j], far[i] })
	if n > len(far) {
		n = len(far)
	}
	return far[:n]
}
