package raster

// clamp truncates v to the representable sample range [0, 255].
func clamp(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Add returns the pixel-wise sum of im and other, each sample clamped to
// [0, 255]. When the dimensions differ the result is the empty image;
// callers must check IsEmpty before using it.
func (im *Image) Add(other *Image) *Image {
	if im.width != other.width || im.height != other.height {
		return &Image{}
	}
	out := New(im.width, im.height)
	for i := range im.pix {
		out.pix[i] = clamp(int(im.pix[i]) + int(other.pix[i]))
	}
	return out
}

// Sub returns the pixel-wise difference of im and other, each sample
// clamped to [0, 255]. When the dimensions differ the result is the empty
// image; callers must check IsEmpty before using it.
func (im *Image) Sub(other *Image) *Image {
	if im.width != other.width || im.height != other.height {
		return &Image{}
	}
	out := New(im.width, im.height)
	for i := range im.pix {
		out.pix[i] = clamp(int(im.pix[i]) - int(other.pix[i]))
	}
	return out
}

// AddValue returns a new image with v added to every sample, clamped.
func (im *Image) AddValue(v uint8) *Image {
	out := New(im.width, im.height)
	for i := range im.pix {
		out.pix[i] = clamp(int(im.pix[i]) + int(v))
	}
	return out
}

// SubValue returns a new image with v subtracted from every sample, clamped.
func (im *Image) SubValue(v uint8) *Image {
	out := New(im.width, im.height)
	for i := range im.pix {
		out.pix[i] = clamp(int(im.pix[i]) - int(v))
	}
	return out
}

// Scale returns a new image with every sample multiplied by factor,
// truncated toward zero and clamped.
func (im *Image) Scale(factor float64) *Image {
	out := New(im.width, im.height)
	for i := range im.pix {
		out.pix[i] = clamp(int(float64(im.pix[i]) * factor))
	}
	return out
}
