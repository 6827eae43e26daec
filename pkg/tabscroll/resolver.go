package tabscroll

import (
	"math"

	"github.com/go-drift/tabscroll/pkg/graphics"
)

// ContentIndex resolves the page nearest to a content offset: an offset at
// or past the midpoint between two pages resolves to the page being entered.
// It returns -1 when there are no pages or the page width is not positive.
func ContentIndex(offset, pageWidth float64, pageCount int) int {
	if pageWidth <= 0 || pageCount <= 0 {
		return -1
	}
	index := int(math.Floor((offset + pageWidth/2) / pageWidth))
	return graphics.ClampInt(index, 0, pageCount-1)
}

// TabIndex resolves the tab under the viewport center for a tab strip
// offset. Segments start at -insetLeft - tabWidths[0]/2 and follow the
// cumulative tab widths; on a shared edge the later tab wins. Offsets left of
// the first segment resolve to 0, right of the last to the final tab.
func TabIndex(offset, insetLeft float64, tabWidths []float64) int {
	if len(tabWidths) == 0 {
		return -1
	}
	start := -insetLeft - tabWidths[0]/2
	if offset < start {
		return 0
	}
	index := -1
	end := start
	for i, w := range tabWidths {
		segStart := end
		end = segStart + w
		if segStart <= offset && offset <= end {
			index = i
		}
	}
	if offset > end || index < 0 {
		return len(tabWidths) - 1
	}
	return index
}

// TabsBefore returns the total width of the tabs preceding index.
func TabsBefore(index int, tabWidths []float64) float64 {
	total := 0.0
	for i := 0; i < index && i < len(tabWidths); i++ {
		total += tabWidths[i]
	}
	return total
}

// TabCenterOffset returns the tab strip offset that centers tab index in a
// viewport of the given width.
func TabCenterOffset(index int, viewport float64, tabWidths []float64) float64 {
	if index < 0 || index >= len(tabWidths) {
		return 0
	}
	return TabsBefore(index, tabWidths) + tabWidths[index]/2 - viewport/2
}

// TabAt hit-tests a coordinate in tab strip content space. It returns -1
// when x lies outside every tab.
func TabAt(x float64, tabWidths []float64) int {
	left := 0.0
	for i, w := range tabWidths {
		if x >= left && x < left+w {
			return i
		}
		left += w
	}
	return -1
}
