package combine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateTree(t *testing.T) {
	files := native("README.md", "cmd/root.go", "cmd/version.go", "pkg/ignore/ignore.go", "main.go")

	want := "project/\n" +
		"├── cmd/\n" +
		"│   ├── root.go\n" +
		"│   └── version.go\n" +
		"├── pkg/\n" +
		"│   └── ignore/\n" +
		"│       └── ignore.go\n" +
		"├── main.go\n" +
		"└── README.md\n"

	assert.Equal(t, want, GenerateTree("project", files))
}

func TestGenerateTreeEmpty(t *testing.T) {
	assert.Equal(t, "project/\n", GenerateTree("project", nil))
}
