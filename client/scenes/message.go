package scenes

import (
	"image/color"

	"github.com/cbodonnell/lanes/client/fonts"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

// MessageScene is a modal screen drawn over the arena with a title, a
// message and a single button, used for the menu and every end-of-match screen.
type MessageScene struct {
	ui *ebitenui.UI
}

type MessageSceneOptions struct {
	// Title is drawn in the banner face.
	Title string
	// Message is an optional line below the title.
	Message string
	// ButtonText is the label of the button.
	ButtonText string
	// OnClick is called when the button is pressed.
	OnClick func()
}

func NewMessageScene(opts MessageSceneOptions) *MessageScene {
	buttonImage := &widget.ButtonImage{
		Idle:    image.NewNineSliceColor(color.NRGBA{R: 170, G: 170, B: 180, A: 255}),
		Hover:   image.NewNineSliceColor(color.NRGBA{R: 135, G: 135, B: 150, A: 255}),
		Pressed: image.NewNineSliceColor(color.NRGBA{R: 100, G: 100, B: 120, A: 255}),
	}

	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.NRGBA{A: 160})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(20),
			widget.RowLayoutOpts.Padding(widget.Insets{
				Top:    200,
				Left:   120,
				Right:  120,
				Bottom: 90,
			}))),
	)

	centered := widget.WidgetOpts.LayoutData(widget.RowLayoutData{
		Position: widget.RowLayoutPositionCenter,
	})

	rootContainer.AddChild(widget.NewText(
		widget.TextOpts.Text(opts.Title, fonts.BannerFace, color.NRGBA{254, 255, 255, 255}),
		widget.TextOpts.WidgetOpts(centered),
	))

	if opts.Message != "" {
		rootContainer.AddChild(widget.NewText(
			widget.TextOpts.Text(opts.Message, fonts.ButtonFace, color.NRGBA{R: 200, G: 200, B: 200, A: 255}),
			widget.TextOpts.WidgetOpts(centered),
		))
	}

	button := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(centered),
		widget.ButtonOpts.Image(buttonImage),
		widget.ButtonOpts.Text(opts.ButtonText, fonts.ButtonFace, &widget.ButtonTextColor{
			Idle:     color.NRGBA{254, 255, 255, 255},
			Disabled: color.NRGBA{R: 200, G: 200, B: 200, A: 255},
		}),
		widget.ButtonOpts.TextPadding(widget.Insets{
			Left:   30,
			Right:  30,
			Top:    5,
			Bottom: 5,
		}),
	)
	if opts.OnClick != nil {
		button.ClickedEvent.AddHandler(func(args interface{}) {
			opts.OnClick()
		})
	}
	rootContainer.AddChild(button)

	return &MessageScene{
		ui: &ebitenui.UI{
			Container: rootContainer,
		},
	}
}

func (s *MessageScene) Update() {
	s.ui.Update()
}

func (s *MessageScene) Draw(screen *ebiten.Image) {
	s.ui.Draw(screen)
}
