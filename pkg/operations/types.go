package operations

import "fmt"

// Kind identifies an operation variant.
type Kind int

const (
	// KindCopy copies a file from a source path.
	KindCopy Kind = iota

	// KindRaw writes text content.
	KindRaw

	// KindMergeJSON merges into an existing JSON file.
	KindMergeJSON

	// KindMergeYAML merges into an existing YAML file.
	KindMergeYAML
)

func (k Kind) String() string {
	switch k {
	case KindCopy:
		return "copy"
	case KindRaw:
		return "raw"
	case KindMergeJSON:
		return "merge-json"
	case KindMergeYAML:
		return "merge-yaml"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Operation is one declarative instruction to produce or update a file.
// Destination is always relative to the server directory.
type Operation interface {
	Kind() Kind
	Destination() string

	// sealed restricts implementations to this package.
	sealed()
}

// FileMapping pairs a source file with its destination inside the server
// directory.
type FileMapping struct {
	source      string
	destination string
}

// NewFileMapping creates a mapping from source to destination.
func NewFileMapping(source, destination string) FileMapping {
	return FileMapping{source: source, destination: destination}
}

// Source returns the path of the file to copy.
func (m FileMapping) Source() string { return m.source }

// Destination returns the path relative to the server directory.
func (m FileMapping) Destination() string { return m.destination }

// Copy copies Mapping.Source to Mapping.Destination.
type Copy struct {
	Mapping FileMapping
}

// Raw writes Content to Path, substituting {{NAME}} placeholders.
type Raw struct {
	Content string
	Path    string
}

// MergeJSON merges Fragment into the JSON file at Path.
type MergeJSON struct {
	Fragment any
	Path     string
}

// MergeYAML merges Fragment into the YAML file at Path.
type MergeYAML struct {
	Fragment any
	Path     string
}

func (Copy) Kind() Kind      { return KindCopy }
func (Raw) Kind() Kind       { return KindRaw }
func (MergeJSON) Kind() Kind { return KindMergeJSON }
func (MergeYAML) Kind() Kind { return KindMergeYAML }

func (o Copy) Destination() string      { return o.Mapping.Destination() }
func (o Raw) Destination() string       { return o.Path }
func (o MergeJSON) Destination() string { return o.Path }
func (o MergeYAML) Destination() string { return o.Path }

func (Copy) sealed()      {}
func (Raw) sealed()       {}
func (MergeJSON) sealed() {}
func (MergeYAML) sealed() {}

// Describe returns a one-line human readable summary of op.
func Describe(op Operation) string {
	switch o := op.(type) {
	case Copy:
		return fmt.Sprintf("copy %s -> %s", o.Mapping.Source(), o.Mapping.Destination())
	case Raw:
		return fmt.Sprintf("write %s (%d bytes)", o.Path, len(o.Content))
	case MergeJSON:
		return fmt.Sprintf("merge json into %s", o.Path)
	case MergeYAML:
		return fmt.Sprintf("merge yaml into %s", o.Path)
	default:
		return fmt.Sprintf("%s %s", op.Kind(), op.Destination())
	}
}
