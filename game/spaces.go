package game

import "github.com/lixenwraith/vi-snake/constants"

// Spaces is the set of free cells, kept dense for uniform random picks
// index maps a cell to its slot in cells; removal swaps the last slot in
type Spaces struct {
	cells []Cell
	index map[Cell]int
}

// NewSpaces creates an empty set sized for the full board
func NewSpaces() *Spaces {
	return &Spaces{
		cells: make([]Cell, 0, constants.GridCells),
		index: make(map[Cell]int, constants.GridCells),
	}
}

// Fill resets the set to every board cell except the excluded ones
func (s *Spaces) Fill(exclude ...Cell) {
	s.cells = s.cells[:0]
	clear(s.index)

	for x := 0; x < constants.GridWidth; x++ {
		for y := 0; y < constants.GridHeight; y++ {
			s.Add(Cell{X: x, Y: y})
		}
	}
	for _, c := range exclude {
		s.Remove(c)
	}
}

// Len returns the number of free cells
func (s *Spaces) Len() int {
	return len(s.cells)
}

// Contains reports whether c is free
func (s *Spaces) Contains(c Cell) bool {
	_, ok := s.index[c]
	return ok
}

// Add marks c free, returns false if it already was
func (s *Spaces) Add(c Cell) bool {
	if _, ok := s.index[c]; ok {
		return false
	}
	s.index[c] = len(s.cells)
	s.cells = append(s.cells, c)
	return true
}

// Remove marks c occupied, returns false if it was not free
func (s *Spaces) Remove(c Cell) bool {
	i, ok := s.index[c]
	if !ok {
		return false
	}
	last := len(s.cells) - 1
	moved := s.cells[last]
	s.cells[i] = moved
	s.index[moved] = i
	s.cells = s.cells[:last]
	delete(s.index, c)
	return true
}

// Pick removes and returns a uniformly random free cell
func (s *Spaces) Pick(r Rand) (Cell, bool) {
	if len(s.cells) == 0 {
		return Cell{}, false
	}
	c := s.cells[r.Intn(len(s.cells))]
	s.Remove(c)
	return c, true
}
