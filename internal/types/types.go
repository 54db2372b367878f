package types

// RenderMode tells the frame pipeline how an animation's surface should be
// turned into a texture.
type RenderMode string

const (
	RenderModeClear RenderMode = "clear" // upload as-is, default filtering
	RenderModeImage RenderMode = "image" // nearest filtering, BGRA swizzle
)

func (m RenderMode) Valid() bool {
	return m == RenderModeClear || m == RenderModeImage
}

type VisibilityState string

const (
	VisibilityVisible VisibilityState = "visible"
	VisibilityPaused  VisibilityState = "paused"
)
