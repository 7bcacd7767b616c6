package manifest

const (
	// Header is the mandatory first line of a cache manifest.
	Header = "CACHE MANIFEST"

	// GeneratorComment attributes the manifest to this tool.
	GeneratorComment = "# Generated by manifesto " +
		"(http://github.com/johntopley/manifesto)"

	// HashLabel prefixes the aggregate digest comment.
	HashLabel = "# Hash: "
)

// Manifest is the result of one generation. Hash is empty
// when no file was included or hashing was disabled.
type Manifest struct {
	Hash  string
	Paths []string
}

// Lines renders the manifest as newline terminated lines:
// header, generator comment, the hash comment when Hash is
// set, then one line per path.
func (m *Manifest) Lines() []string {
	lines := make([]string, 0, len(m.Paths)+3)
	lines = append(lines, Header+"\n", GeneratorComment+"\n")

	if m.Hash != "" {
		lines = append(lines, HashLabel+m.Hash+"\n")
	}

	for _, pa := range m.Paths {
		lines = append(lines, pa+"\n")
	}

	return lines
}
