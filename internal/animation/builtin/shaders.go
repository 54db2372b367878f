// Package builtin holds the animations that ship with shaderpaper. Importing
// it registers them with animation.Default.
package builtin

import (
	"github.com/matjam/shaderpaper/internal/animation"
	"github.com/matjam/shaderpaper/internal/gpu"
	"github.com/matjam/shaderpaper/internal/surface"
	"github.com/matjam/shaderpaper/internal/types"
)

func init() {
	animation.Register("shaders.circular", NewCircular)
	animation.Register("shaders.plasma", NewPlasma)
	animation.Register("shaders.waves", NewWaves)
	animation.Register("pixels.starfield", NewStarfield)
	animation.Register("pixels.fire", NewFire)
}

// Every fragment shader gets the frame texture, the clock and the aspect
// ratio, and receives texture coordinates with (0, 0) at the top left.
const fragmentHeader = `#version 330 core

uniform sampler2D tex;
uniform float time;
uniform float aspect_ratio;

in vec2 uvs;
out vec4 f_color;
`

// shaderAnimation is an animation that lives entirely on the GPU; the
// surface is only used to composite the debug overlay on top.
type shaderAnimation struct {
	source string
	mode   types.RenderMode
}

func (a *shaderAnimation) FragmentShader() string { return a.source }
func (a *shaderAnimation) Mode() types.RenderMode  { return a.mode }

func (a *shaderAnimation) Update(*surface.Surface, float64, float64) *surface.Surface {
	return nil
}

func (a *shaderAnimation) SetUniforms(p gpu.Program, time, aspectRatio float64) {
	animation.SetCommonUniforms(p, time, aspectRatio)
}

func NewCircular() animation.Animation {
	return &shaderAnimation{
		mode: types.RenderModeClear,
		source: fragmentHeader + `
void main() {
    vec2 p = (uvs - 0.5) * vec2(aspect_ratio, 1.0);
    float d = length(p);
    float a = atan(p.y, p.x);

    float rings = 0.5 + 0.5 * sin(d * 42.0 - time * 2.5 + sin(a * 3.0 + time) * 0.6);
    vec3 col = 0.5 + 0.5 * cos(time * 0.25 + d * 5.0 + vec3(0.0, 2.1, 4.2));
    col *= smoothstep(0.15, 1.0, rings) * (1.2 - d);

    f_color = vec4(col, 1.0) + texture(tex, uvs);
}
`,
	}
}

func NewPlasma() animation.Animation {
	return &shaderAnimation{
		mode: types.RenderModeClear,
		source: fragmentHeader + `
void main() {
    vec2 p = uvs * vec2(aspect_ratio, 1.0) * 6.0;
    float t = time * 0.6;

    float v = sin(p.x + t);
    v += sin((p.y + t) * 0.5);
    v += sin((p.x + p.y + t) * 0.5);
    vec2 c = p + vec2(sin(t / 3.0), cos(t / 2.0)) * 3.0;
    v += sin(sqrt(dot(c, c) + 1.0) + t);
    v *= 0.5;

    vec3 col = vec3(sin(v * 3.14159), sin(v * 3.14159 + 2.094), sin(v * 3.14159 + 4.188));
    col = col * 0.5 + 0.5;

    f_color = vec4(col * 0.8, 1.0) + texture(tex, uvs);
}
`,
	}
}

func NewWaves() animation.Animation {
	return &shaderAnimation{
		mode: types.RenderModeClear,
		source: fragmentHeader + `
void main() {
    vec2 p = uvs * vec2(aspect_ratio, 1.0);
    vec3 col = vec3(0.02, 0.03, 0.08);

    for (int i = 0; i < 5; i++) {
        float fi = float(i);
        float y = 0.5 + 0.12 * sin(p.x * (2.0 + fi) + time * (0.4 + fi * 0.15) + fi);
        float line = 0.004 / abs(1.0 - uvs.y - y);
        col += line * (0.5 + 0.5 * cos(fi + vec3(0.0, 1.5, 3.0)));
    }

    f_color = vec4(col, 1.0) + texture(tex, uvs);
}
`,
	}
}

// pixelShader presents the CPU drawn surface unchanged apart from a faint
// scanline, for animations that render in image mode.
const pixelShader = fragmentHeader + `
void main() {
    vec4 c = texture(tex, uvs);
    float scan = 0.96 + 0.04 * sin(uvs.y * 900.0 + time);
    f_color = vec4(c.rgb * scan, 1.0);
}
`
