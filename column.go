package archecs

// column is an owned, contiguous byte buffer holding count rows of
// elemSize bytes each. Rows are not individually addressable objects: they
// are byte ranges at offset row*elemSize. This generalizes the teacher's
// per-archetype componentData [][]byte slots into their own type so the
// append/swap-remove/grow contract from spec §4.2 has one place to live.
type column struct {
	data    []byte
	count   int
	elemSize int
}

func newColumn(elemSize int) column {
	return column{elemSize: elemSize}
}

// capacity returns how many rows fit in the current backing buffer.
func (c *column) capacity() int {
	if c.elemSize == 0 {
		return c.count
	}
	return len(c.data) / c.elemSize
}

// grow ensures the column can hold at least n rows, doubling capacity (or
// starting at 16) and zero-initializing the newly added bytes.
func (c *column) grow(n int) {
	if n <= c.capacity() {
		return
	}
	newCap := c.capacity()
	if newCap == 0 {
		newCap = 16
	}
	for newCap < n {
		newCap *= 2
	}
	nd := make([]byte, newCap*c.elemSize)
	copy(nd, c.data)
	c.data = nd
}

// pushDefault appends one zero-initialized row and returns its index.
func (c *column) pushDefault() int {
	c.grow(c.count + 1)
	row := c.count
	start := row * c.elemSize
	clear(c.data[start : start+c.elemSize])
	c.count++
	return row
}

// swapRemove removes row by overwriting it with the current last row, then
// shrinking count by one. It is a no-op on the byte data (besides the
// shrink) when row is already the last row.
func (c *column) swapRemove(row int) {
	last := c.count - 1
	if row != last {
		dst := row * c.elemSize
		src := last * c.elemSize
		copy(c.data[dst:dst+c.elemSize], c.data[src:src+c.elemSize])
	}
	c.count--
}

// copyInto overwrites row's bytes from an external buffer of elemSize bytes.
func (c *column) copyInto(row int, src []byte) {
	start := row * c.elemSize
	copy(c.data[start:start+c.elemSize], src)
}

// copyFrom copies one row from src (at srcRow) into this column at dstRow.
// The two columns must share the same element size.
func (c *column) copyFrom(src *column, srcRow, dstRow int) {
	s := srcRow * src.elemSize
	d := dstRow * c.elemSize
	copy(c.data[d:d+c.elemSize], src.data[s:s+src.elemSize])
}

// pointerTo returns the byte range backing row.
func (c *column) pointerTo(row int) []byte {
	start := row * c.elemSize
	return c.data[start : start+c.elemSize : start+c.elemSize]
}
