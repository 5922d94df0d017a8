package ignore

// defaultTokens is the built-in ignore list applied unless --no-ignore-default is given.
var defaultTokens = []string{
	// Dependencies and build output
	"node_modules",
	"target",
	"dist",
	"build",
	".next",
	".turbo",

	// Version control and editors
	".git",
	".idea",
	".vscode",
	".DS_Store",

	// Lockfiles and boilerplate
	"package-lock.json",
	"Cargo.lock",
	"LICENSE",

	// Python
	"__pycache__",
	"*.pyc",
	"*.pyo",
	"*.pyd",
	".pytest_cache",
	".mypy_cache",
	".ruff_cache",

	// Objects and binaries
	"*.o",
	"*.obj",
	"*.so",
	"*.dylib",
	"*.dll",
	"*.exe",
	"*.out",
	"*.a",
	"*.lib",

	// Logs and scratch files
	"*.log",
	"*.tmp",
	"*.swp",

	// Images
	"*.png",
	"*.jpg",
	"*.jpeg",
	"*.gif",
	"*.bmp",
	"*.tiff",
	"*.ico",
	"*.svg",
	"*.webp",
	"*.heic",
	"*.heif",

	// 3D assets
	"*.vrm",
	"*.fbx",
	"*.glb",
	"*.gltf",
	"*.blend",
	"*.stl",

	// Archives
	"*.zip",
	"*.tar",
	"*.gz",
	"*.bz2",
	"*.xz",
	"*.7z",
	"*.rar",

	// Build systems
	"CMakeFiles",
	"cmake-build-*",
	"buck-out",
	"bazel-*",
	"Pods",
}

// DefaultTokens returns a copy of the built-in ignore token list.
func DefaultTokens() []string {
	return append([]string(nil), defaultTokens...)
}
