// FrameCut is a window and door configurator.
//
// A cross-platform desktop application for configuring custom window
// and door units, pricing them from a catalog and producing fabrication
// cut lists.
//
// Build:
//   go build -o framecut ./cmd/framecut
//
// Cross-compile:
//   GOOS=windows GOARCH=amd64 go build -o framecut.exe ./cmd/framecut
//   GOOS=darwin  GOARCH=amd64 go build -o framecut-darwin ./cmd/framecut
//
// Using fyne-cross (recommended for proper packaging):
//   go install github.com/fyne-io/fyne-cross@latest
//   fyne-cross windows -arch=amd64
//   fyne-cross darwin  -arch=amd64,arm64

package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/piwi3910/FrameCut/internal/ui"
)

func main() {
	application := app.NewWithID("com.piwi3910.framecut")
	window := application.NewWindow("FrameCut — Window & Door Configurator")

	appUI := ui.NewApp(application, window)
	appUI.SetupMenus() // Setup the native menu bar
	window.SetContent(appUI.Build())
	window.Resize(fyne.NewSize(1400, 820))
	window.CenterOnScreen()
	window.ShowAndRun()
}
