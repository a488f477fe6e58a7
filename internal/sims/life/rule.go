package life

// NextState returns a cell's state in the next generation. Live cells survive
// with two or three live neighbours. Dead cells are born with exactly three
// or exactly six.
func NextState(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3 || neighbors == 6
}
