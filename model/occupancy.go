package model

// OccupancyMap tracks which agent stands on which cell.
type OccupancyMap struct {
	cells map[Cell]int32
	byId  map[int32]Cell
}

func NewOccupancyMap() *OccupancyMap {
	return &OccupancyMap{
		cells: make(map[Cell]int32),
		byId:  make(map[int32]Cell),
	}
}

// Place moves agent id to c, freeing whatever cell it held before.
func (o *OccupancyMap) Place(id int32, c Cell) {
	if prev, found := o.byId[id]; found && o.cells[prev] == id {
		delete(o.cells, prev)
	}
	o.cells[c] = id
	o.byId[id] = c
}

func (o *OccupancyMap) Remove(id int32) {
	if prev, found := o.byId[id]; found {
		if o.cells[prev] == id {
			delete(o.cells, prev)
		}
		delete(o.byId, id)
	}
}

func (o *OccupancyMap) Occupied(c Cell, self int32) bool {
	id, found := o.cells[c]
	return found && id != self
}

func (o *OccupancyMap) At(c Cell) (int32, bool) {
	id, found := o.cells[c]
	return id, found
}
