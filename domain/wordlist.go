package domain

import (
	"fmt"
	"strings"

	"github.com/tyler-smith/go-bip39/wordlists"

	wrapErrors "github.com/linlinbupt123-crypto/hdkey_service/errors"
)

// WordlistSize is the number of words in a BIP39 word list (2^11).
const WordlistSize = 2048

// Wordlist is an immutable, ordered BIP39 word list. A word's position is
// its 11-bit value; when a word occurs twice the first position wins.
type Wordlist struct {
	words []string
	index map[string]int
}

// NewWordlist copies words into a Wordlist.
func NewWordlist(words []string) (*Wordlist, error) {
	if len(words) != WordlistSize {
		return nil, wrapErrors.WrapWithCode(
			wrapErrors.CodeInvalidWordlist, "wordlist.new",
			fmt.Errorf("%w: got %d", ErrInvalidWordlist, len(words)),
		)
	}
	wl := &Wordlist{
		words: make([]string, WordlistSize),
		index: make(map[string]int, WordlistSize),
	}
	copy(wl.words, words)
	for i, w := range wl.words {
		if _, ok := wl.index[w]; !ok {
			wl.index[w] = i
		}
	}
	return wl, nil
}

// Word returns the word at position i.
func (wl *Wordlist) Word(i int) string {
	return wl.words[i]
}

// Index returns the position of word, or false if it is not in the list.
func (wl *Wordlist) Index(word string) (int, bool) {
	i, ok := wl.index[word]
	return i, ok
}

// Len is always WordlistSize.
func (wl *Wordlist) Len() int {
	return len(wl.words)
}

var builtinWordlists = map[string][]string{
	"english":             wordlists.English,
	"japanese":            wordlists.Japanese,
	"korean":              wordlists.Korean,
	"spanish":             wordlists.Spanish,
	"chinese_simplified":  wordlists.ChineseSimplified,
	"chinese_traditional": wordlists.ChineseTraditional,
	"french":              wordlists.French,
	"italian":             wordlists.Italian,
	"czech":               wordlists.Czech,
}

// WordlistByName returns one of the word lists bundled with go-bip39.
// The name is case-insensitive, e.g. "english" or "chinese_simplified".
func WordlistByName(name string) (*Wordlist, error) {
	words, ok := builtinWordlists[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, wrapErrors.WrapWithCode(
			wrapErrors.CodeInvalidWordlist, "wordlist.by_name",
			fmt.Errorf("%w: unknown wordlist %q", ErrInvalidWordlist, name),
		)
	}
	return NewWordlist(words)
}

// EnglishWordlist returns the default BIP39 English word list.
func EnglishWordlist() *Wordlist {
	wl, err := NewWordlist(wordlists.English)
	if err != nil {
		panic(err)
	}
	return wl
}
