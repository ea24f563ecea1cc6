package topics

// Renderer formats topic content for display. format is the topic file
// extension, such as ".md".
type Renderer interface {
	Render(content string, format string) string
}

// PlainRenderer shows topics as written
type PlainRenderer struct{}

// Render returns content unchanged
func (r *PlainRenderer) Render(content string, format string) string {
	return content
}
