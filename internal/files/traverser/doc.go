// Package traverser enumerates files and directories beneath a path.
//
// The traverser package is responsible for:
//   - Listing the immediate children of a directory, joined and sorted
//   - Filtering children by kind at the moment of filtering
//   - Depth-first directory expansion where each directory is followed by
//     its whole subtree before its next sibling
//   - Collecting files of a tree in that same directory order
//
// A path that does not exist, at the root or anywhere during a walk, has no
// children. Every other filesystem error aborts the operation and is
// returned exactly as the filesystem.Provider produced it.
//
// The traverser is filesystem-agnostic through filesystem.Provider, enabling
// production use with the OS filesystem and testing with in-memory trees.
package traverser
