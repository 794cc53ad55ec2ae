package components

import (
	"github.com/Rorical/RoriSense/ui/styles"
)

func RenderError(title, message string, width int) string {
	body := styles.ErrorTitleStyle().Render(title) + "\n" + message
	return styles.ErrorPanelStyle(width).Render(body)
}

func RenderLoading(spinner string) string {
	return styles.LoadingStyle().Render(spinner + " Analyzing sentiment...")
}
