package tui

import (
	"fmt"

	"github.com/snapsift/snapsift/models"
)

func photoLine(photo models.Photo) string {
	return fmt.Sprintf("%s  (%s)", photo.Date.Format("2 Jan 2006 15:04"), formatBytes(len(photo.Image)))
}

func photoCard(photo models.Photo) string {
	out := fmt.Sprintf("Taken:   %s\n", photo.Date.Format("2 Jan 2006 15:04"))
	out += fmt.Sprintf("Preview: %s\n", formatBytes(len(photo.Image)))
	return out
}

func planLine(total, freeQuota int) string {
	if total > freeQuota {
		return fmt.Sprintf("Photos: %d of %d visible on the free plan\n", freeQuota, total)
	}
	return fmt.Sprintf("Photos: %d\n", total)
}

func formatBytes(n int) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
