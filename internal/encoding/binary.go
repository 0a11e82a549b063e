package encoding

// Merge32 two uint32 to uint64, a holds the significant bits
func Merge32(a, b uint32) uint64 {
	return (uint64(a) << 32) + uint64(b)
}

// Split64 uint64 to two uint32
func Split64(in uint64) (uint32, uint32) {
	return uint32(in >> 32), uint32(in)
}

// CellKey packs a (non negative) cell coordinate into a single map key.
// Nb. negative values are not expected here, the grid only holds points
// inside the sampling area.
func CellKey(x, y int) uint64 {
	return Merge32(uint32(x), uint32(y))
}

// FromCellKey reverses CellKey
func FromCellKey(key uint64) (int, int) {
	x, y := Split64(key)
	return int(x), int(y)
}
