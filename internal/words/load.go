// internal/words/load.go
//
// Loaders that fill a Bank from an external word source.
//
// Sources:
//   - TOML (default): a list of [[word]] tables with text, description and
//     difficulty keys. The embedded assets/words.toml uses this format.
//   - Plain text: Easy.txt, Medium.txt and Hard.txt in one directory, one
//     entry per line as WORD or WORD|description. Blank lines and lines
//     starting with '#' are skipped.
//
// Every failure wraps ErrDataLoad. Entries added before a failure stay in
// the bank; a partial load is not rolled back.

package words

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

type tomlDoc struct {
	Word []tomlWord `toml:"word"`
}

type tomlWord struct {
	Text        string `toml:"text"`
	Description string `toml:"description"`
	Difficulty  string `toml:"difficulty"`
}

// LoadTOML decodes a TOML word document from r into the bank.
func (b *Bank) LoadTOML(r io.Reader) error {
	var doc tomlDoc
	if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return fmt.Errorf("%w: decode toml: %v", ErrDataLoad, err)
	}
	if len(doc.Word) == 0 {
		return fmt.Errorf("%w: no [[word]] entries", ErrDataLoad)
	}
	for i, w := range doc.Word {
		d, err := ParseDifficulty(w.Difficulty)
		if err != nil {
			return fmt.Errorf("%w: entry %d (%q): %v", ErrDataLoad, i+1, w.Text, err)
		}
		e, err := NewEntry(w.Text, w.Description, d)
		if err != nil {
			return fmt.Errorf("%w: entry %d: %v", ErrDataLoad, i+1, err)
		}
		if err := b.Add(e); err != nil {
			return fmt.Errorf("%w: entry %d: %v", ErrDataLoad, i+1, err)
		}
	}
	return nil
}

// LoadTOMLFile opens path and loads it with LoadTOML.
func (b *Bank) LoadTOMLFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDataLoad, err)
	}
	defer f.Close()
	return b.LoadTOML(f)
}

// textFiles maps each difficulty to its plain-text file name.
var textFiles = map[Difficulty]string{
	Easy:   "Easy.txt",
	Medium: "Medium.txt",
	Hard:   "Hard.txt",
}

// LoadText reads Easy.txt, Medium.txt and Hard.txt from fsys, in that order.
func (b *Bank) LoadText(fsys fs.FS) error {
	for _, d := range Difficulties() {
		if err := b.loadTextFile(fsys, textFiles[d], d); err != nil {
			return err
		}
	}
	return nil
}

func (b *Bank) loadTextFile(fsys fs.FS, name string, d Difficulty) error {
	f, err := fsys.Open(name)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDataLoad, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	line := 0
	for sc.Scan() {
		line++
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		text, desc, _ := strings.Cut(s, "|")
		e, err := NewEntry(text, desc, d)
		if err != nil {
			return fmt.Errorf("%w: %s:%d: %v", ErrDataLoad, name, line, err)
		}
		if err := b.Add(e); err != nil {
			return fmt.Errorf("%w: %s:%d: %v", ErrDataLoad, name, line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrDataLoad, name, err)
	}
	return nil
}
