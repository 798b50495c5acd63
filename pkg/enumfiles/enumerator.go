package enumfiles

import "fmt"

// Kind selects which entries an enumeration keeps.
type Kind int

const (
	// KindFile keeps regular files.
	KindFile Kind = iota + 1
	// KindDirectory keeps directories.
	KindDirectory
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDirectory:
		return "directory"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	return k == KindFile || k == KindDirectory
}

// ParseKind converts "file"/"files" or "dir"/"dirs"/"directory" into a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "file", "files":
		return KindFile, nil
	case "dir", "dirs", "directory", "directories":
		return KindDirectory, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrInvalidKind)
	}
}

// Enumerator lists files and directories beneath a path.
//
// Every method returns paths built by joining the given root with each
// descendant's name, in a deterministic order. A root that does not exist
// yields an empty result and a nil error. Any other filesystem failure is
// returned unchanged and no partial result is produced.
// Implementations must be safe for concurrent use by multiple goroutines.
type Enumerator interface {
	// Files returns the files directly under path, sorted.
	Files(path string) ([]string, error)

	// FilesRecursively returns root's files first, then the files of every
	// descendant directory in DirRecursively order.
	FilesRecursively(path string) ([]string, error)

	// Dir returns the directories directly under path, sorted.
	Dir(path string) ([]string, error)

	// DirRecursively returns every descendant directory. Each directory is
	// followed by its whole subtree before its next sibling. The root itself
	// is never included.
	DirRecursively(path string) ([]string, error)

	// Enumerate is the general form of the four operations above.
	Enumerate(path string, kind Kind, recursive bool) ([]string, error)
}
