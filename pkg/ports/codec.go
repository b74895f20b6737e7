package ports

import "github.com/user/pgmtool/pkg/raster"

// Codec abstracts the raster file format boundary. Decode never mutates
// any existing image on failure; it either returns a fully loaded image or
// an error.
type Codec interface {
	// Decode parses encoded raster data into an image.
	Decode(data []byte) (*raster.Image, error)

	// Encode serializes an image into the codec's byte format.
	Encode(img *raster.Image) ([]byte, error)
}
