package ui

import (
	"image/color"
	"log"
	"math"
	"strings"

	cfg "github.com/automoto/cinescroll/config"
	"github.com/automoto/cinescroll/fonts"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// SectionsUI holds the ebitenui content that follows the sticky region:
// pricing cards, the booking panel and the footer. It is laid out in
// physical pixels on its own canvas and scrolled as one block.
type SectionsUI struct {
	UI     *ebitenui.UI
	Canvas *ebiten.Image

	root    *widget.Container
	width   float64
	density float64
	height  float64

	// Fonts (stored as interface for ebitenui compatibility)
	headingFace text.Face
	titleFace   text.Face
	priceFace   text.Face
	normalFace  text.Face
	smallFace   text.Face
}

// NewSectionsUI builds the sections for a logical width and density.
func NewSectionsUI(width, density float64) *SectionsUI {
	sui := &SectionsUI{}
	sui.Resize(width, density)
	return sui
}

// Resize rebuilds the widgets when the viewport width or density changed.
func (sui *SectionsUI) Resize(width, density float64) {
	if width == sui.width && density == sui.density && sui.UI != nil {
		return
	}
	sui.width, sui.density = width, density
	sui.loadFonts()
	sui.buildUI()
}

// Height is the logical height of all sections.
func (sui *SectionsUI) Height() float64 {
	return sui.height
}

func (sui *SectionsUI) compact() bool {
	return sui.width < cfg.Overlay.CompactWidth
}

// px converts logical pixels to the canvas' physical pixels.
func (sui *SectionsUI) px(v float64) int {
	return int(math.Round(v * sui.density))
}

func (sui *SectionsUI) loadFonts() {
	heading := 60.0
	if sui.compact() {
		heading = 30
	}
	d := sui.density
	sui.headingFace = fonts.Display.GoText(heading, d)
	sui.titleFace = fonts.Display.GoText(24, d)
	sui.priceFace = fonts.Display.GoText(30, d)
	sui.normalFace = fonts.Body.GoText(16, d)
	sui.smallFace = fonts.Label.GoText(12, d)
}

func (sui *SectionsUI) buildUI() {
	sui.root = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Colors.Background)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
		)),
	)

	sui.root.AddChild(sui.buildPricing())
	sui.root.AddChild(sui.buildBooking())
	sui.root.AddChild(sui.buildFooter())

	sui.UI = &ebitenui.UI{
		Container: sui.root,
	}

	_, h := sui.root.PreferredSize()
	sui.height = math.Max(cfg.Sections.Height(), float64(h)/sui.density)

	w, ch := sui.px(sui.width), sui.px(sui.height)
	if sui.Canvas != nil {
		sui.Canvas.Deallocate()
		sui.Canvas = nil
	}
	if w > 0 && ch > 0 {
		sui.Canvas = ebiten.NewImage(w, ch)
	}
}

// section is a full-width block with a minimum height and centered content.
func (sui *SectionsUI) section(bg color.Color, minHeight float64, content *widget.Container) *widget.Container {
	c := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(bg)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(widget.NewInsetsSimple(sui.px(24))),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(sui.px(sui.width), sui.px(minHeight)),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Stretch: true}),
		),
	)
	content.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionCenter,
		VerticalPosition:   widget.AnchorLayoutPositionCenter,
	}
	c.AddChild(content)
	return c
}

func (sui *SectionsUI) column(spacing float64) *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(sui.px(spacing)),
		)),
	)
}

func (sui *SectionsUI) row(spacing float64) *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(sui.px(spacing)),
		)),
	)
}

func (sui *SectionsUI) label(s string, face *text.Face, c color.Color) *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text(s, face, &widget.LabelColor{Idle: c}),
	)
}

// centered wraps w so a vertical row layout centers it.
func centered(w widget.PreferredSizeLocateableWidget) widget.PreferredSizeLocateableWidget {
	w.GetWidget().LayoutData = widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}
	return w
}

func (sui *SectionsUI) buildPricing() *widget.Container {
	content := sui.column(32)

	heading := sui.row(0)
	heading.AddChild(sui.label("CHOOSE YOUR ", &sui.headingFace, cfg.Colors.Text))
	heading.AddChild(sui.label("RONIN", &sui.headingFace, cfg.Colors.Divider))
	content.AddChild(centered(heading))
	content.AddChild(centered(sui.label("SELECT YOUR DEFINING STYLE", &sui.normalFace, cfg.Colors.Muted)))

	columns := 3
	if sui.compact() {
		columns = 1
	}
	grid := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(columns),
			widget.GridLayoutOpts.Spacing(sui.px(24), sui.px(24)),
		)),
	)
	for _, v := range cfg.Sections.Variants {
		grid.AddChild(sui.buildCard(v))
	}
	content.AddChild(centered(grid))
	content.AddChild(centered(sui.label(cfg.Sections.Disclaimer, &sui.smallFace, cfg.Colors.Muted)))

	return sui.section(cfg.Blend(cfg.Colors.Background, cfg.Colors.Card, 0.3), cfg.Sections.PricingHeight, content)
}

func (sui *SectionsUI) buildCard(v cfg.Variant) *widget.Container {
	stripe, err := cfg.ParseHex(v.Stripe)
	if err != nil {
		log.Printf("Warning: variant %q: %v", v.Name, err)
		stripe = cfg.Colors.Border
	}

	// 1px border: the outer container shows through the inner padding
	border := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Colors.Border)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(sui.px(1))),
		)),
	)

	card := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Colors.Card)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(sui.px(28))),
			widget.RowLayoutOpts.Spacing(sui.px(10)),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(sui.px(300), 0),
		),
	)

	card.AddChild(widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.WithAlpha(stripe, 0.5))),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(0, sui.px(4)),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Stretch: true}),
		),
	))
	card.AddChild(sui.label(strings.ToUpper(v.Name), &sui.titleFace, cfg.Colors.Text))
	card.AddChild(sui.label(v.Price, &sui.priceFace, cfg.Colors.Icon))
	for _, f := range v.Features {
		card.AddChild(sui.label("•  "+f, &sui.normalFace, cfg.Colors.Muted))
	}
	card.AddChild(sui.button("VIEW DETAILS", false))

	border.AddChild(card)
	return border
}

func (sui *SectionsUI) buildBooking() *widget.Container {
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.WithAlpha(cfg.Black, 0.5))),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(sui.px(56))),
			widget.RowLayoutOpts.Spacing(sui.px(20)),
		)),
	)

	panel.AddChild(centered(sui.label(cfg.Sections.BookTitle, &sui.headingFace, cfg.Colors.Text)))
	panel.AddChild(centered(sui.label(cfg.Sections.BookAccent, &sui.headingFace, cfg.Colors.Divider)))

	textWidth := math.Min(672, sui.width-2*56-48)
	panel.AddChild(centered(widget.NewText(
		widget.TextOpts.Text(cfg.Sections.BookText, &sui.normalFace, cfg.Colors.Subtitle),
		widget.TextOpts.MaxWidth(float64(sui.px(textWidth))),
	)))

	actions := sui.row(16)
	if sui.compact() {
		actions = sui.column(12)
	}
	for i, a := range cfg.Sections.BookActions {
		actions.AddChild(sui.button(strings.ToUpper(a), i == 0))
	}
	panel.AddChild(centered(actions))

	bg := cfg.Blend(cfg.Colors.Background, cfg.Colors.IconRing, 0.2)
	return sui.section(bg, cfg.Sections.BookingHeight, panel)
}

func (sui *SectionsUI) buildFooter() *widget.Container {
	var content *widget.Container
	if sui.compact() {
		content = sui.column(24)
	} else {
		content = sui.row(64)
	}

	brand := sui.column(6)
	brand.AddChild(sui.label(cfg.Sections.Brand, &sui.titleFace, cfg.Colors.Accent))
	brand.AddChild(sui.label(strings.ToUpper(cfg.Sections.Tagline), &sui.smallFace, cfg.Colors.Muted))
	content.AddChild(centered(brand))

	links := sui.row(24)
	for _, l := range cfg.Sections.FooterLinks {
		links.AddChild(sui.label(strings.ToUpper(l), &sui.smallFace, cfg.Colors.Subtitle))
	}
	content.AddChild(centered(links))

	legal := sui.column(4)
	legal.AddChild(sui.label("© "+cfg.Sections.Copyright, &sui.smallFace, cfg.Colors.Muted))
	legal.AddChild(sui.label(cfg.Sections.FooterNote, &sui.smallFace, cfg.Colors.Muted))
	content.AddChild(centered(legal))

	return sui.section(cfg.Black, cfg.Sections.FooterHeight, content)
}

func (sui *SectionsUI) button(label string, primary bool) *widget.Button {
	img := sui.outlineButtonImage()
	if primary {
		img = sui.primaryButtonImage()
	}
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(sui.px(200), sui.px(48)),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Stretch: !primary && !sui.compact()}),
		),
		widget.ButtonOpts.Image(img),
		widget.ButtonOpts.Text(label, &sui.normalFace, &widget.ButtonTextColor{
			Idle:    cfg.Colors.Text,
			Hover:   cfg.Black,
			Pressed: cfg.Colors.Subtitle,
		}),
	)
}

func (sui *SectionsUI) outlineButtonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(cfg.Colors.Track),
		Hover:    image.NewNineSliceColor(cfg.Colors.Text),
		Pressed:  image.NewNineSliceColor(cfg.Colors.Border),
		Disabled: image.NewNineSliceColor(cfg.Colors.Border),
	}
}

func (sui *SectionsUI) primaryButtonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(cfg.Colors.Divider),
		Hover:    image.NewNineSliceColor(cfg.Colors.Accent),
		Pressed:  image.NewNineSliceColor(cfg.Colors.IconRing),
		Disabled: image.NewNineSliceColor(cfg.Colors.Border),
	}
}

// Update calls the UI's Update method
func (sui *SectionsUI) Update() {
	sui.UI.Update()
}

// Draw renders the sections with their top edge at logical y on dst.
// Nothing is drawn while they are entirely off screen.
func (sui *SectionsUI) Draw(dst *ebiten.Image, top float64) {
	if sui.Canvas == nil {
		return
	}
	screenH := float64(dst.Bounds().Dy())
	y := top * sui.density
	if y >= screenH || y+float64(sui.Canvas.Bounds().Dy()) <= 0 {
		return
	}

	sui.Canvas.Clear()
	sui.UI.Draw(sui.Canvas)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, y)
	dst.DrawImage(sui.Canvas, op)
}

// Close frees the canvas.
func (sui *SectionsUI) Close() {
	if sui.Canvas != nil {
		sui.Canvas.Deallocate()
		sui.Canvas = nil
	}
}
