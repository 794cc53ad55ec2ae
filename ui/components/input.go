package components

import (
	"github.com/Rorical/RoriSense/ui/styles"
)

// RenderInput frames the already rendered text area.
func RenderInput(textarea string, width int) string {
	return styles.InputStyle(width).Render(textarea)
}
