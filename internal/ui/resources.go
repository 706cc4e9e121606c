package ui

import (
	"fyne.io/fyne/v2"
)

const (
	AppIcon = "logo.png"
)

// LoadLogoResource loads the banner logo from the working directory
func LoadLogoResource() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(AppIcon)
}
