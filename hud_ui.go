package main

import (
	"image/color"
	"strings"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/dungeon/hud"
)

// HUDUI renders a hud.Model as two labels in the top-left corner. The labels
// are rewritten from the model's OnChange hook, never polled.
type HUDUI struct {
	ui     *ebitenui.UI
	hearts *widget.Text
	coins  *widget.Text
}

func NewHUDUI(model *hud.Model) *HUDUI {
	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	heartColor := color.NRGBA{R: 0xe0, G: 0x30, B: 0x40, A: 0xff}
	coinColor := color.NRGBA{R: 0xf0, G: 0xc8, B: 0x30, A: 0xff}

	h := &HUDUI{
		hearts: widget.NewText(widget.TextOpts.Text(heartsLabel(model), &face, heartColor)),
		coins:  widget.NewText(widget.TextOpts.Text(coinsLabel(model), &face, coinColor)),
	}

	panel := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(2),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 4, Left: 4}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionStart, VerticalPosition: widget.AnchorLayoutPositionStart}),
		),
	)
	panel.AddChild(h.hearts)
	panel.AddChild(h.coins)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)
	h.ui = &ebitenui.UI{Container: root}

	model.OnChange = func(m *hud.Model) {
		h.hearts.Label = heartsLabel(m)
		h.coins.Label = coinsLabel(m)
	}
	return h
}

func (h *HUDUI) Update() {
	h.ui.Update()
}

func (h *HUDUI) Draw(screen *ebiten.Image) {
	h.ui.Draw(screen)
}

func heartsLabel(m *hud.Model) string {
	var b strings.Builder
	b.WriteString("HP ")
	for i := range m.MaxHearts {
		if m.HeartFull(i) {
			b.WriteByte('#')
		} else {
			b.WriteByte('-')
		}
	}
	return b.String()
}

func coinsLabel(m *hud.Model) string {
	return "Coins " + m.CoinsText()
}
