// Package wordlist loads word lists from files.
package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/verte-zerg/worgen/internal/logger"
	"github.com/verte-zerg/worgen/internal/model"
)

// FileOpenError reports a word list file that could not be opened.
type FileOpenError struct {
	Path string
	Err  error
}

func (e *FileOpenError) Error() string {
	return fmt.Sprintf("Failed to open %s!", e.Path)
}

func (e *FileOpenError) Unwrap() error {
	return e.Err
}

// EmptyListError reports a word list without any word in bounds.
type EmptyListError struct {
	Path string
}

func (e *EmptyListError) Error() string {
	return fmt.Sprintf("Could not find any valid words in %s!", e.Path)
}

// Load reads the words of path that fit bound. The file must yield at least one word.
func Load(path string, bound model.Bound, log logger.Logger) (model.WordList, error) {
	file, err := os.Open(path)
	if err != nil {
		return model.WordList{}, &FileOpenError{Path: path, Err: err}
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()

	log.Infof("Loading words from %s.", path)
	words, err := Read(file, bound)
	if err != nil {
		return model.WordList{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(words) == 0 {
		return model.WordList{}, &EmptyListError{Path: path}
	}
	log.Infof("Loaded %d words from %s.", len(words), path)
	return model.WordList{Path: path, Bound: bound, Words: words}, nil
}

// Read splits r into words of word material characters and keeps those within bound.
// A run longer than model.MaxWordLen is cut every model.MaxWordLen characters.
func Read(r io.Reader, bound model.Bound) ([]string, error) {
	reader := bufio.NewReader(r)
	buf := make([]byte, 0, model.MaxWordLen)
	var words []string

	flush := func() {
		if len(buf) == 0 {
			return
		}
		if bound.Contains(len(buf)) && uint64(len(words)) < model.MaxWords {
			words = append(words, string(buf))
		}
		buf = buf[:0]
	}

	for {
		b, err := reader.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				flush()
				return words, nil
			}
			return nil, err
		}
		b = Fold(b)
		if !IsWordMaterial(b) {
			flush()
			continue
		}
		buf = append(buf, b)
		if len(buf) == model.MaxWordLen {
			flush()
		}
	}
}
