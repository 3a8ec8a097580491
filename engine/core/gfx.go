package core

type TextureFormat int

const (
	TextureRGBA8 TextureFormat = iota
)

type TextureDesc struct {
	Width, Height int
	Format        TextureFormat
	Pixels        []byte
	MinFilter     string // "nearest" | "linear"
	MagFilter     string
	WrapU         string // "clamp" | "repeat"
	WrapV         string
}

// Texture is an opaque GPU texture handle owned by the Renderer.
type Texture interface {
	Size() (w, h int)
}

// Vertex layout shared by the batcher and the backend:
// pos2 + color4 + uv2 + texIndex1.
const (
	VertexFloats = 9
	MaxTexSlots  = 16
)

// Batch is one draw call worth of indexed triangles.
type Batch struct {
	VP       [16]float32
	Vertices []float32
	Indices  []uint32
	Textures []Texture // slot i is sampled when texIndex == i
}
