package filesystem

import (
	"errors"
	"io/fs"
	"syscall"
)

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

// isMissing reports whether a failed Stat means nothing can be at the path.
// A path running through a regular file (ENOTDIR) names nothing either.
func isMissing(err error) bool {
	return isNotExist(err) || errors.Is(err, syscall.ENOTDIR)
}
