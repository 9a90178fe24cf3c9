package topics

// Renderer formats topic content for terminal display
type Renderer interface {
	Render(topic *Topic) string
}

// PlainRenderer is the default renderer that returns content as-is
type PlainRenderer struct{}

// Render returns the topic content unchanged
func (r *PlainRenderer) Render(topic *Topic) string {
	return topic.Content
}
