package sequence

// SourceKind identifies the backing store of a sequence. It is determined
// once per SetPath call and never re-inferred from content afterward;
// switching kinds requires calling a setter again.
type SourceKind int

const (
	// KindNone is the kind of an empty sequence.
	KindNone SourceKind = iota
	// KindSingleFile is a sequence of exactly one loose image file.
	KindSingleFile
	// KindDirectory is a sequence of the immediate children of a directory.
	KindDirectory
	// KindArchive is a sequence read from an in-memory copy of a zip file.
	KindArchive
)

// String returns a human-readable label for the source kind.
func (k SourceKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindSingleFile:
		return "file"
	case KindDirectory:
		return "directory"
	case KindArchive:
		return "archive"
	default:
		return "unknown"
	}
}
