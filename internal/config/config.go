// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 720

	PlaceRadius      = 22.0
	PlaceStrokeWidth = 2.0
	BoardMargin      = 60.0
	PanelHeight      = 96.0
	ButtonWidth      = 120.0
	ButtonHeight     = 36.0

	// Стандартные параметры мира
	MinimumRowCount = 2
	MaximumRowCount = 4
	ColumnCount     = 9
	StartingFood    = 4
)

var (
	BackgroundColor  = color.RGBA{20, 20, 30, 255}
	PlaceColor       = color.RGBA{60, 60, 75, 255}
	ColonyPlaceColor = color.RGBA{70, 100, 120, 220}
	RespiteColor     = color.RGBA{90, 70, 120, 220}
	QueenPlaceColor  = color.RGBA{220, 60, 60, 220}
	HivePlaceColor   = color.RGBA{100, 80, 40, 220}
	EdgeColor        = color.RGBA{110, 110, 130, 160}
	TargetLineColor  = color.RGBA{255, 255, 0, 128}
	BeeColor         = color.RGBA{230, 200, 30, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	TextDarkColor    = color.RGBA{20, 20, 30, 255}
	PanelColor       = color.RGBA{35, 35, 50, 255}
	SelectionColor   = color.RGBA{255, 255, 255, 255}
	ButtonColor      = color.RGBA{70, 130, 180, 220}
	ButtonHoverColor = color.RGBA{90, 150, 200, 220}
	WinColor         = color.RGBA{50, 205, 50, 255}
	LossColor        = color.RGBA{220, 60, 60, 255}
	StrokeWidth      = 2.0
)
