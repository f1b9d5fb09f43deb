package x11

import (
	"fmt"
	"unicode/utf8"

	"github.com/BurntSushi/xgb/xproto"
)

// FrameBorderWidth is the border width of every frame window.
const FrameBorderWidth = 1

// frameEventMask is selected on every frame window.
const frameEventMask = xproto.EventMaskSubstructureRedirect |
	xproto.EventMaskSubstructureNotify |
	xproto.EventMaskButtonPress |
	xproto.EventMaskButtonRelease |
	xproto.EventMaskButtonMotion |
	xproto.EventMaskExposure |
	xproto.EventMaskEnterWindow

// fallbackFonts are tried in order when the configured font cannot be opened.
var fallbackFonts = []string{"fixed", "9x15", "8x13", "6x13"}

// FrameStyle names the font and colors used to decorate frames.
type FrameStyle struct {
	Font       string
	Background string
	Border     string
	Text       string
}

// Decorator owns the server-side resources used to draw frames: the title
// font, a graphics context, and the allocated color pixels.
type Decorator struct {
	conn *Connection

	font    xproto.Font
	gc      xproto.Gcontext
	hasFont bool
	ascent  int
	descent int

	background uint32
	border     uint32
	text       uint32
}

// NewDecorator allocates colors, opens the title font and creates the GC.
// A missing font is not fatal: titles are still drawn with the server's
// default GC font, and FontMetrics reports no metrics.
func NewDecorator(conn *Connection, style FrameStyle) (*Decorator, error) {
	d := &Decorator{conn: conn}
	screen := conn.Screen()

	d.background = d.allocColor(style.Background, screen.WhitePixel)
	d.border = d.allocColor(style.Border, screen.BlackPixel)
	d.text = d.allocColor(style.Text, screen.BlackPixel)

	x := conn.Conn()
	font, err := xproto.NewFontId(x)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate font id: %w", err)
	}

	for _, name := range fontCandidates(style.Font) {
		if err := xproto.OpenFontChecked(x, font, uint16(len(name)), name).Check(); err == nil {
			d.font = font
			d.hasFont = true
			break
		}
	}

	if d.hasFont {
		reply, err := xproto.QueryFont(x, xproto.Fontable(d.font)).Reply()
		if err == nil {
			d.ascent = int(reply.FontAscent)
			d.descent = int(reply.FontDescent)
		} else {
			xproto.CloseFont(x, d.font)
			d.hasFont = false
		}
	}

	gc, err := xproto.NewGcontextId(x)
	if err != nil {
		d.closeFont()
		return nil, fmt.Errorf("failed to allocate gc id: %w", err)
	}

	mask := uint32(xproto.GcForeground | xproto.GcBackground)
	values := []uint32{d.text, d.background}
	if d.hasFont {
		mask |= xproto.GcFont
		values = append(values, uint32(d.font))
	}
	mask |= xproto.GcGraphicsExposures
	values = append(values, 0)

	err = xproto.CreateGCChecked(x, gc, xproto.Drawable(conn.Root), mask, values).Check()
	if err != nil {
		d.closeFont()
		return nil, fmt.Errorf("failed to create gc: %w", err)
	}
	d.gc = gc

	return d, nil
}

func (d *Decorator) allocColor(name string, fallback uint32) uint32 {
	if name == "" {
		return fallback
	}
	reply, err := xproto.AllocNamedColor(
		d.conn.Conn(),
		d.conn.Screen().DefaultColormap,
		uint16(len(name)),
		name,
	).Reply()
	if err != nil {
		return fallback
	}
	return reply.Pixel
}

// FontMetrics returns the ascent and descent of the title font.
func (d *Decorator) FontMetrics() (ascent, descent int, ok bool) {
	if !d.hasFont {
		return 0, 0, false
	}
	return d.ascent, d.descent, true
}

// CreateFrame creates an unmapped, override-redirect frame window on the
// root. Value list order follows the bit positions of the mask.
func (d *Decorator) CreateFrame(x, y, width, height int) (xproto.Window, error) {
	conn := d.conn.Conn()
	screen := d.conn.Screen()

	wid, err := xproto.NewWindowId(conn)
	if err != nil {
		return 0, err
	}

	err = xproto.CreateWindowChecked(
		conn,
		screen.RootDepth,
		wid,
		d.conn.Root,
		int16(x), int16(y),
		uint16(clampDimension(width)), uint16(clampDimension(height)),
		FrameBorderWidth,
		xproto.WindowClassInputOutput,
		screen.RootVisual,
		xproto.CwBackPixel|xproto.CwBorderPixel|xproto.CwOverrideRedirect|xproto.CwEventMask,
		[]uint32{
			d.background,
			d.border,
			1, // override_redirect
			frameEventMask,
		},
	).Check()
	if err != nil {
		return 0, err
	}

	return wid, nil
}

// DrawText draws a single line of text with its baseline at (x, y).
func (d *Decorator) DrawText(win xproto.Window, text string, x, y int) {
	text = titleText(text)
	if text == "" {
		return
	}
	xproto.ImageText8(
		d.conn.Conn(),
		byte(len(text)),
		xproto.Drawable(win),
		d.gc,
		int16(x),
		int16(y),
		text,
	)
}

// fontCandidates lists the fonts to try, the configured one first.
func fontCandidates(font string) []string {
	if font == "" {
		return fallbackFonts
	}
	names := []string{font}
	for _, f := range fallbackFonts {
		if f != font {
			names = append(names, f)
		}
	}
	return names
}

// titleText trims text to what a single ImageText8 request can carry,
// without splitting a UTF-8 sequence.
func titleText(text string) string {
	const maxLen = 255
	if len(text) <= maxLen {
		return text
	}
	cut := maxLen
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut]
}

// Close frees the GC and font.
func (d *Decorator) Close() {
	if d.gc != 0 {
		xproto.FreeGC(d.conn.Conn(), d.gc)
		d.gc = 0
	}
	d.closeFont()
}

func (d *Decorator) closeFont() {
	if d.hasFont {
		xproto.CloseFont(d.conn.Conn(), d.font)
		d.hasFont = false
	}
}
