package renderer

import "image"

// Region is a rectangular subdivision of the image assigned to one worker
type Region struct {
	ID     int
	Bounds image.Rectangle // Pixel bounds, exclusive of Max
}

// PartitionRegions divides a width×height image into n disjoint rectangular
// regions whose union covers it exactly. Regions are horizontal strips when
// n fits within the row count; beyond that, strips subdivide into columns.
// n is clamped to [1, width*height] so every region holds at least one pixel.
func PartitionRegions(width, height, n int) []Region {
	if n < 1 {
		n = 1
	}
	if n > width*height {
		n = width * height
	}

	rows := min(n, height)

	// Distribute regions across row bands; when n exceeds the row count
	// every band splits into base or base+1 columns. n <= width*height
	// guarantees the column count never exceeds the width.
	base := n / rows
	extra := n % rows

	regions := make([]Region, 0, n)
	y := 0
	for band := 0; band < rows; band++ {
		bandHeight := height / rows
		if band < height%rows {
			bandHeight++
		}

		cols := base
		if band < extra {
			cols++
		}

		x := 0
		for col := 0; col < cols; col++ {
			colWidth := width / cols
			if col < width%cols {
				colWidth++
			}

			regions = append(regions, Region{
				ID:     len(regions),
				Bounds: image.Rect(x, y, x+colWidth, y+bandHeight),
			})
			x += colWidth
		}
		y += bandHeight
	}

	return regions
}
