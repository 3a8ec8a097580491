package glbackend

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/grove-toolkit/engine/core"
)

type RendererGL struct {
	win     core.Window
	program uint32
	vao     uint32
	vbo     uint32
	ebo     uint32
	uVP     int32

	// Buffer capacities in bytes, grown on demand.
	vboCap int
	eboCap int
}

type texture struct {
	id   uint32
	w, h int
}

func (t *texture) Size() (int, int) { return t.w, t.h }

func NewRendererGL(win core.Window, _ core.Config) (*RendererGL, error) {
	r := &RendererGL{win: win}
	if err := r.Init(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *RendererGL) Init() error {
	var err error
	r.program, err = makeProgram(vertexSource, fragmentSource)
	if err != nil {
		return err
	}

	gl.UseProgram(r.program)
	r.uVP = gl.GetUniformLocation(r.program, gl.Str("uVP\x00"))
	var units [core.MaxTexSlots]int32
	for i := range units {
		units[i] = int32(i)
	}
	gl.Uniform1iv(gl.GetUniformLocation(r.program, gl.Str("uTex\x00")), core.MaxTexSlots, &units[0])
	gl.UseProgram(0)

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)

	// layout(location = 0) in vec2 aPos;
	// layout(location = 1) in vec4 aColor;
	// layout(location = 2) in vec2 aUV;
	// layout(location = 3) in float aTexIndex;
	const stride = core.VertexFloats * 4 // bytes
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, stride, gl.PtrOffset(2*4))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride, gl.PtrOffset(6*4))
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointer(3, 1, gl.FLOAT, false, stride, gl.PtrOffset(8*4))

	gl.BindVertexArray(0)

	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	return nil
}

func (r *RendererGL) Shutdown() {
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

func (r *RendererGL) Resize(w, h int) {
	gl.Viewport(0, 0, int32(w), int32(h))
}

func (r *RendererGL) Clear(rf, gf, bf, af float32) {
	gl.ClearColor(rf, gf, bf, af)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (r *RendererGL) GPUVendor() string   { return gl.GoStr(gl.GetString(gl.VENDOR)) }
func (r *RendererGL) GPURenderer() string { return gl.GoStr(gl.GetString(gl.RENDERER)) }
func (r *RendererGL) GPUVersion() string  { return gl.GoStr(gl.GetString(gl.VERSION)) }

func (r *RendererGL) CreateTexture(desc core.TextureDesc) (core.Texture, error) {
	if desc.Format != core.TextureRGBA8 {
		return nil, fmt.Errorf("texture format %d not supported", desc.Format)
	}
	if desc.Width <= 0 || desc.Height <= 0 || len(desc.Pixels) < desc.Width*desc.Height*4 {
		return nil, fmt.Errorf("texture %dx%d: want %d bytes of pixels, got %d",
			desc.Width, desc.Height, desc.Width*desc.Height*4, len(desc.Pixels))
	}

	t := &texture{w: desc.Width, h: desc.Height}
	gl.GenTextures(1, &t.id)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, filterMode(desc.MinFilter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, filterMode(desc.MagFilter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, wrapMode(desc.WrapU))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, wrapMode(desc.WrapV))
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(desc.Width), int32(desc.Height), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(desc.Pixels))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return t, nil
}

// Draw uploads the batch and issues a single indexed draw call.
func (r *RendererGL) Draw(b core.Batch) {
	if len(b.Vertices) == 0 || len(b.Indices) == 0 {
		return
	}

	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.uVP, 1, false, &b.VP[0])
	for i, t := range b.Textures {
		if i >= core.MaxTexSlots {
			break
		}
		tex, ok := t.(*texture)
		if !ok || tex == nil {
			continue
		}
		gl.ActiveTexture(gl.TEXTURE0 + uint32(i))
		gl.BindTexture(gl.TEXTURE_2D, tex.id)
	}

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	vBytes := len(b.Vertices) * 4
	if vBytes > r.vboCap {
		r.vboCap = growCap(r.vboCap, vBytes)
		gl.BufferData(gl.ARRAY_BUFFER, r.vboCap, nil, gl.STREAM_DRAW)
	}
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, vBytes, gl.Ptr(b.Vertices))

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	iBytes := len(b.Indices) * 4
	if iBytes > r.eboCap {
		r.eboCap = growCap(r.eboCap, iBytes)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, r.eboCap, nil, gl.STREAM_DRAW)
	}
	gl.BufferSubData(gl.ELEMENT_ARRAY_BUFFER, 0, iBytes, gl.Ptr(b.Indices))

	gl.DrawElements(gl.TRIANGLES, int32(len(b.Indices)), gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

func growCap(cur, need int) int {
	if cur == 0 {
		cur = 64 * 1024
	}
	for cur < need {
		cur *= 2
	}
	return cur
}

func filterMode(s string) int32 {
	if s == "linear" {
		return gl.LINEAR
	}
	return gl.NEAREST
}

func wrapMode(s string) int32 {
	if s == "repeat" {
		return gl.REPEAT
	}
	return gl.CLAMP_TO_EDGE
}

// --- Shader utilities ---

const vertexSource = `
#version 330 core
layout(location=0) in vec2 aPos;
layout(location=1) in vec4 aColor;
layout(location=2) in vec2 aUV;
layout(location=3) in float aTexIndex;
uniform mat4 uVP;
out vec4 vColor;
out vec2 vUV;
flat out int vTex;
void main() {
    vColor = aColor;
    vUV = aUV;
    vTex = int(aTexIndex + 0.5);
    gl_Position = uVP * vec4(aPos, 0.0, 1.0);
}
` + "\x00"

// Sampler arrays may only be indexed with constants in GLSL 3.30.
const fragmentSource = `
#version 330 core
in vec4 vColor;
in vec2 vUV;
flat in int vTex;
uniform sampler2D uTex[16];
out vec4 FragColor;
void main() {
    vec4 t;
    switch (vTex) {
    case 0: t = texture(uTex[0], vUV); break;
    case 1: t = texture(uTex[1], vUV); break;
    case 2: t = texture(uTex[2], vUV); break;
    case 3: t = texture(uTex[3], vUV); break;
    case 4: t = texture(uTex[4], vUV); break;
    case 5: t = texture(uTex[5], vUV); break;
    case 6: t = texture(uTex[6], vUV); break;
    case 7: t = texture(uTex[7], vUV); break;
    case 8: t = texture(uTex[8], vUV); break;
    case 9: t = texture(uTex[9], vUV); break;
    case 10: t = texture(uTex[10], vUV); break;
    case 11: t = texture(uTex[11], vUV); break;
    case 12: t = texture(uTex[12], vUV); break;
    case 13: t = texture(uTex[13], vUV); break;
    case 14: t = texture(uTex[14], vUV); break;
    default: t = texture(uTex[15], vUV); break;
    }
    FragColor = t * vColor;
}
` + "\x00"

func makeShader(src string, shaderType uint32) (uint32, error) {
	sh := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	defer free()
	gl.ShaderSource(sh, 1, csrc, nil)
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetShaderInfoLog(sh, logLen, nil, gl.Str(log))
		gl.DeleteShader(sh)
		return 0, fmt.Errorf("shader compile error: %s", log)
	}
	return sh, nil
}

func makeProgram(vsSrc, fsSrc string) (uint32, error) {
	vs, err := makeShader(vsSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := makeShader(fsSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}
	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("program link error: %s", log)
	}
	return prog, nil
}
