package schema

// UnboundedDepth is the [Request.MaxDepth] of a tree listing without bound.
const UnboundedDepth = -1

// Request is the complete description of one listing. It is built by the
// command line layer and consumed, after validation, by the listing pipeline.
// The [Request] itself holds only raw values; validation compiles them.
type Request struct {
	// Path is the directory to list; empty means the working directory.
	Path string

	// IncludeHidden includes elements whose name begins with a dot.
	IncludeHidden bool

	// Tree descends recursively, bounded by MaxDepth.
	Tree bool

	// MaxDepth bounds a Tree listing, or is [UnboundedDepth].
	MaxDepth int

	// FilterExt lists the accepted extensions; empty accepts all.
	FilterExt []string

	// FilterName is a filename glob pattern; empty accepts all.
	FilterName string

	// MinSize and MaxSize are inclusive human size bounds; empty is unbounded.
	MinSize string
	MaxSize string

	// SortBy is the ordering of the records; empty sorts by name.
	SortBy SortKey

	// Format is the output format; empty is [FormatTable].
	Format Format

	// JSON and JSONPretty are the legacy format switches, which take
	// precedence over Format.
	JSON       bool
	JSONPretty bool

	// Compact prints only the names, one per line (table format only).
	Compact bool

	// UseColor colors the table format.
	UseColor bool

	// Columns selects the table columns; empty selects all.
	Columns []string
}

// NewRequest returns a pointer to a [Request] with the defaults of a plain
// listing of the working directory.
func NewRequest() *Request {
	return &Request{
		Path:     ".",
		MaxDepth: UnboundedDepth,
		SortBy:   SortByName,
		Format:   FormatTable,
		UseColor: true,
	}
}
