package viz

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"io"
	"os"
)

var ErrNothingRecorded = errors.New("viz: no frames recorded")

// Recorder rasterizes canvases into GIF frames. Each dot becomes a
// DotSize x DotSize block.
type Recorder struct {
	DotSize int
	Delay   int
	Palette color.Palette
	frames  []*image.Paletted
}

func NewRecorder() *Recorder {
	return &Recorder{
		DotSize: 3,
		Delay:   4,
		Palette: color.Palette{color.Black, color.RGBA{0, 255, 255, 255}},
	}
}

func (r *Recorder) Len() int { return len(r.frames) }
func (r *Recorder) Reset()   { r.frames = r.frames[:0] }

func (r *Recorder) Capture(c *Canvas) {
	d := r.DotSize
	img := image.NewPaletted(image.Rect(0, 0, c.DotsWide()*d, c.DotsHigh()*d), r.Palette)
	for y := 0; y < c.DotsHigh(); y++ {
		for x := 0; x < c.DotsWide(); x++ {
			if !c.IsSet(x, y) {
				continue
			}
			for py := 0; py < d; py++ {
				for px := 0; px < d; px++ {
					img.SetColorIndex(x*d+px, y*d+py, 1)
				}
			}
		}
	}
	r.frames = append(r.frames, img)
}

func (r *Recorder) Encode(w io.Writer) error {
	if len(r.frames) == 0 {
		return ErrNothingRecorded
	}
	anim := gif.GIF{LoopCount: 0}
	for _, f := range r.frames {
		anim.Image = append(anim.Image, f)
		anim.Delay = append(anim.Delay, r.Delay)
	}
	return gif.EncodeAll(w, &anim)
}

func (r *Recorder) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create gif: %w", err)
	}
	if err := r.Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
