package topics

// Renderer defines the interface for rendering topic content
type Renderer interface {
	// Render takes raw content and its file extension and returns formatted content for terminal display
	Render(content string, format string) string
}

// PlainRenderer is the default renderer that returns content as-is
type PlainRenderer struct{}

// Render returns the content unchanged
func (r *PlainRenderer) Render(content string, format string) string {
	return content
}

// RendererFunc adapts a function to the Renderer interface
type RendererFunc func(content, format string) string

// Render implements Renderer
func (f RendererFunc) Render(content, format string) string { return f(content, format) }
