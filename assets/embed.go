// assets/embed.go
//
// Word data compiled into the binary so the game starts without any files
// on disk. HANGAROO_WORDS_FILE or HANGAROO_WORDS_DIR override it.

package assets

import (
	"embed"
	"io/fs"
)

//go:embed words.toml
var FS embed.FS

// WordsFile is the name of the embedded TOML word document.
const WordsFile = "words.toml"

// OpenWords opens the embedded word document.
func OpenWords() (fs.File, error) {
	return FS.Open(WordsFile)
}
