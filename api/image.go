package api

import (
	"fmt"
	"log"
)

// ImageData is a packed row-major tile image as sent by the game.
type ImageData struct {
	BitsPerPixel int32    `protobuf:"varint,1,opt,name=bits_per_pixel,json=bitsPerPixel,proto3"`
	Size         *Size2DI `protobuf:"bytes,2,opt,name=size,proto3"`
	Data         []byte   `protobuf:"bytes,3,opt,name=data,proto3"`
}

func (img *ImageData) Reset()    { *img = ImageData{} }
func (*ImageData) ProtoMessage() {}

func (img *ImageData) String() string {
	if img == nil {
		return "<nil>"
	}
	return fmt.Sprintf("ImageData{bpp: %v, size: %v, data: %v bytes}", img.BitsPerPixel, img.Size, len(img.Data))
}

// Width returns the image width in tiles.
func (img *ImageData) Width() int32 {
	if img == nil || img.Size == nil {
		return 0
	}
	return img.Size.X
}

// Height returns the image height in tiles.
func (img *ImageData) Height() int32 {
	if img == nil || img.Size == nil {
		return 0
	}
	return img.Size.Y
}

// check verifies the pixel format and that the buffer covers every tile.
func (img *ImageData) check(bpp int32) error {
	switch {
	case img == nil:
		return fmt.Errorf("%w: missing image", ErrMalformedSnapshot)
	case img.Size == nil || img.Size.X <= 0 || img.Size.Y <= 0:
		return fmt.Errorf("%w: image has no size", ErrMalformedSnapshot)
	case img.BitsPerPixel != bpp:
		return fmt.Errorf("%w: expected %v bits per pixel, got %v", ErrMalformedSnapshot, bpp, img.BitsPerPixel)
	}
	need := (int(img.Size.X)*int(img.Size.Y)*int(bpp) + 7) / 8
	if len(img.Data) < need {
		return fmt.Errorf("%w: %v image needs %v bytes, has %v", ErrMalformedSnapshot, img.Size, need, len(img.Data))
	}
	return nil
}

// Bits interprets a 1 bpp image. It panics on any other format.
func (img *ImageData) Bits() ImageDataBits {
	if img.BitsPerPixel != 1 {
		log.Panicf("expected 1 bit per pixel, got %v", img.BitsPerPixel)
	}
	return ImageDataBits{data: img.Data, width: img.Size.X, height: img.Size.Y}
}

// Bytes interprets an 8 bpp image. It panics on any other format.
func (img *ImageData) Bytes() ImageDataBytes {
	if img.BitsPerPixel != 8 {
		log.Panicf("expected 8 bits per pixel, got %v", img.BitsPerPixel)
	}
	return ImageDataBytes{data: img.Data, width: img.Size.X, height: img.Size.Y}
}

// ImageDataBits is a 1 bpp tile mask, most significant bit first.
// Reads outside the image return false and writes are ignored.
type ImageDataBits struct {
	data          []byte
	width, height int32
}

// NewImageDataBits returns an all-false mask of the given size.
func NewImageDataBits(width, height int32) ImageDataBits {
	return ImageDataBits{
		data:   make([]byte, (int(width)*int(height)+7)/8),
		width:  width,
		height: height,
	}
}

func (img ImageDataBits) Width() int32  { return img.width }
func (img ImageDataBits) Height() int32 { return img.height }

func (img ImageDataBits) InBounds(x, y int32) bool {
	return x >= 0 && y >= 0 && x < img.width && y < img.height
}

// Get returns the value of tile (x, y).
func (img ImageDataBits) Get(x, y int32) bool {
	if !img.InBounds(x, y) {
		return false
	}
	i := int(x) + int(y)*int(img.width)
	return img.data[i/8]&(0x80>>uint(i%8)) != 0
}

// Set updates tile (x, y).
func (img ImageDataBits) Set(x, y int32, value bool) {
	if !img.InBounds(x, y) {
		return
	}
	i := int(x) + int(y)*int(img.width)
	if value {
		img.data[i/8] |= 0x80 >> uint(i%8)
	} else {
		img.data[i/8] &^= 0x80 >> uint(i%8)
	}
}

// Copy returns a mask that does not share storage with img.
func (img ImageDataBits) Copy() ImageDataBits {
	data := make([]byte, len(img.data))
	copy(data, img.data)
	return ImageDataBits{data: data, width: img.width, height: img.height}
}

// Count returns the number of true tiles.
func (img ImageDataBits) Count() int {
	n := 0
	for y := int32(0); y < img.height; y++ {
		for x := int32(0); x < img.width; x++ {
			if img.Get(x, y) {
				n++
			}
		}
	}
	return n
}

// ImageData packs the mask back into its wire form.
func (img ImageDataBits) ImageData() *ImageData {
	return &ImageData{
		BitsPerPixel: 1,
		Size:         &Size2DI{X: img.width, Y: img.height},
		Data:         img.Copy().data,
	}
}

// ImageDataBytes is an 8 bpp tile image. Reads outside the image return 0 and writes are ignored.
type ImageDataBytes struct {
	data          []byte
	width, height int32
}

// NewImageDataBytes returns a zeroed image of the given size.
func NewImageDataBytes(width, height int32) ImageDataBytes {
	return ImageDataBytes{
		data:   make([]byte, int(width)*int(height)),
		width:  width,
		height: height,
	}
}

func (img ImageDataBytes) Width() int32  { return img.width }
func (img ImageDataBytes) Height() int32 { return img.height }

func (img ImageDataBytes) InBounds(x, y int32) bool {
	return x >= 0 && y >= 0 && x < img.width && y < img.height
}

// Get returns the value of tile (x, y).
func (img ImageDataBytes) Get(x, y int32) byte {
	if !img.InBounds(x, y) {
		return 0
	}
	return img.data[int(x)+int(y)*int(img.width)]
}

// Set updates tile (x, y).
func (img ImageDataBytes) Set(x, y int32, value byte) {
	if !img.InBounds(x, y) {
		return
	}
	img.data[int(x)+int(y)*int(img.width)] = value
}

// ImageData packs the image back into its wire form.
func (img ImageDataBytes) ImageData() *ImageData {
	data := make([]byte, len(img.data))
	copy(data, img.data)
	return &ImageData{
		BitsPerPixel: 8,
		Size:         &Size2DI{X: img.width, Y: img.height},
		Data:         data,
	}
}
