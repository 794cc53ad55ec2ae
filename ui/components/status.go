package components

import (
	"github.com/Rorical/RoriSense/ui/styles"
)

func RenderStatus(status, target string, width int) string {
	content := status
	if target != "" {
		content += " · " + target
	}
	return styles.StatusStyle(width).Render(content)
}
