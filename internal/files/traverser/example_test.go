package traverser_test

import (
	"fmt"

	"github.com/vvka-141/enumfiles/internal/files/filesystem"
	"github.com/vvka-141/enumfiles/internal/files/traverser"
)

func ExampleTraverser_DirRecursively() {
	mfs := filesystem.NewMemoryFileSystem()
	mfs.AddFile("site/index.html", "<html/>")
	mfs.AddFile("site/assets/css/main.css", "body{}")
	mfs.AddDir("site/assets/img")
	mfs.AddDir("site/blog")

	dirs, err := traverser.NewWithFS(mfs).DirRecursively("site")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, d := range dirs {
		fmt.Println(d)
	}
	// Output:
	// site/assets
	// site/assets/css
	// site/assets/img
	// site/blog
}

func ExampleTraverser_FilesRecursively() {
	mfs := filesystem.NewMemoryFileSystem()
	mfs.AddFile("site/z.txt", "")
	mfs.AddFile("site/a/b.txt", "")
	mfs.AddFile("site/a.txt", "")

	files, _ := traverser.NewWithFS(mfs).FilesRecursively("site")
	fmt.Println(files)
	// Output:
	// [site/a.txt site/z.txt site/a/b.txt]
}

func ExampleTraverser_Files_missing() {
	files, err := traverser.NewWithFS(filesystem.NewMemoryFileSystem()).Files("does/not/exist")
	fmt.Println(len(files), files != nil, err)
	// Output:
	// 0 true <nil>
}
