package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/sheetsync-go/pkg/sheetsync/models"
	"github.com/xuri/excelize/v2"
)

// RegionParams holds thresholds for populated region detection.
type RegionParams struct {
	DensityMin       float64
	MinNonemptyCells int
}

// DefaultRegionParams returns default region detection parameters.
func DefaultRegionParams() RegionParams {
	return RegionParams{
		DensityMin:       0.04,
		MinNonemptyCells: 3,
	}
}

// DetectRegion returns the populated bounds of a grid, or nil when the grid
// is too sparse to hold a table.
func DetectRegion(rows [][]string, params RegionParams) *models.Region {
	b, ok := scanBounds(rows, 0, len(rows))
	if !ok || b.cells < params.MinNonemptyCells {
		return nil
	}
	density := float64(b.cells) / float64(b.area())
	if density < params.DensityMin {
		return nil
	}

	start, _ := excelize.CoordinatesToCellName(b.left+1, b.top+1)
	end, _ := excelize.CoordinatesToCellName(b.right+1, b.bottom+1)
	return &models.Region{
		R1:       b.top + 1,
		C1:       b.left + 1,
		R2:       b.bottom + 1,
		C2:       b.right + 1,
		Range:    fmt.Sprintf("%s:%s", start, end),
		NonEmpty: b.cells,
		Density:  density,
	}
}

// bounds is the box around the non-blank cells of a row window.
type bounds struct {
	top, bottom, left, right int
	cells                    int
}

func (b bounds) area() int {
	return (b.bottom - b.top + 1) * (b.right - b.left + 1)
}

// scanBounds measures rows[from:to] in one pass. ok is false when every
// cell in the window is blank.
func scanBounds(rows [][]string, from, to int) (b bounds, ok bool) {
	b = bounds{top: -1, bottom: -1, left: -1, right: -1}
	if to > len(rows) {
		to = len(rows)
	}
	for r := from; r < to; r++ {
		for c, v := range rows[r] {
			if strings.TrimSpace(v) == "" {
				continue
			}
			if b.top < 0 {
				b.top = r
			}
			b.bottom = r
			if b.left < 0 || c < b.left {
				b.left = c
			}
			if c > b.right {
				b.right = c
			}
			b.cells++
		}
	}
	return b, b.cells > 0
}
