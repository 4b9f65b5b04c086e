package coursecat

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// Section notes, requisites and restrictions may carry markup;
	// Convert renders them for terminal display.
	Convert(html string) (string, error)
}
