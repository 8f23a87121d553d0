package main

import (
	"image"

	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"
)

// canvas presents a finished pixel buffer through a streaming texture.
type canvas struct {
	renderer *sdl.Renderer
	texture  *sdl.Texture
	w, h     int
}

func newCanvas(r *sdl.Renderer, w, h int) (*canvas, error) {
	// ABGR8888 on little endian matches the byte order of image.RGBA
	t, err := r.CreateTexture(
		sdl.PIXELFORMAT_ABGR8888,
		sdl.TEXTUREACCESS_STREAMING, // only textures with TEXTUREACCESS_STREAMING can be locked
		int32(w),
		int32(h),
	)
	if err != nil {
		return nil, errors.Wrap(err, "create texture")
	}
	return &canvas{renderer: r, texture: t, w: w, h: h}, nil
}

func (c *canvas) close() {
	c.texture.Destroy()
}

// present copies buf into the texture and shows it
func (c *canvas) present(buf *image.RGBA) error {
	data, pitch, err := c.texture.Lock(nil)
	if err != nil {
		return errors.Wrap(err, "lock texture")
	}
	rowBytes := c.w * 4
	for y := 0; y < c.h; y++ {
		src := buf.Pix[y*buf.Stride : y*buf.Stride+rowBytes]
		copy(data[y*pitch:y*pitch+rowBytes], src)
	}
	c.texture.Unlock()

	if err := c.renderer.Clear(); err != nil {
		return errors.Wrap(err, "clear")
	}
	if err := c.renderer.Copy(c.texture, nil, nil); err != nil {
		return errors.Wrap(err, "copy texture")
	}
	c.renderer.Present()
	return nil
}
