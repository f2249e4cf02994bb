package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/tidwall/gjson"
)

var (
	// ErrCategoryNotFound is returned when a category is absent or has no words
	ErrCategoryNotFound = errors.New("category not found")
	// ErrInvalidDataset is returned when a serialized dataset has an unexpected shape
	ErrInvalidDataset = errors.New("invalid dataset")
)

// Word represents a single vocabulary pair
type Word struct {
	Term        string `json:"term"`        // English term, always lower-cased
	Translation string `json:"translation"` // Russian translation, free text
}

// Category represents a named group of words kept in insertion order
type Category struct {
	Name  string `json:"name"`
	Words []Word `json:"words"`
}

// Dataset is the full category -> term -> translation structure.
//
// Categories and the words inside them keep their insertion order, the same order
// is used when the dataset is serialized.
// The zero value is an empty dataset ready to use.
type Dataset struct {
	categories []*Category
}

// NewDataset builds a dataset from the given categories.
// Terms are lower-cased and empty categories are dropped.
func NewDataset(categories ...Category) *Dataset {
	d := &Dataset{}
	for _, c := range categories {
		for _, w := range c.Words {
			d.UpsertWord(c.Name, w.Term, w.Translation)
		}
	}
	return d
}

// Categories returns category names in insertion order
func (d *Dataset) Categories() []string {
	names := make([]string, 0, len(d.categories))
	for _, c := range d.categories {
		names = append(names, c.Name)
	}
	return names
}

// All returns a copy of every category with its words
func (d *Dataset) All() []Category {
	result := make([]Category, 0, len(d.categories))
	for _, c := range d.categories {
		result = append(result, Category{Name: c.Name, Words: slices.Clone(c.Words)})
	}
	return result
}

// Len returns the number of categories
func (d *Dataset) Len() int {
	return len(d.categories)
}

// Has reports whether the category exists
func (d *Dataset) Has(category string) bool {
	return d.find(category) >= 0
}

// Words returns the words of a category in their stored order.
// ErrCategoryNotFound is returned if the category is absent.
func (d *Dataset) Words(category string) ([]Word, error) {
	i := d.find(category)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", ErrCategoryNotFound, category)
	}
	return slices.Clone(d.categories[i].Words), nil
}

// Translation returns the translation of a term inside a category
func (d *Dataset) Translation(category, term string) (string, bool) {
	i := d.find(category)
	if i < 0 {
		return "", false
	}
	j := findWord(d.categories[i].Words, strings.ToLower(term))
	if j < 0 {
		return "", false
	}
	return d.categories[i].Words[j].Translation, true
}

// UpsertWord inserts or overwrites a word.
//
// The term is lower-cased, so terms differing only in case share one entry.
// A missing category is appended to the end of the dataset, a new term is appended to the end of its category.
func (d *Dataset) UpsertWord(category, term, translation string) {
	term = strings.ToLower(term)

	i := d.find(category)
	if i < 0 {
		d.categories = append(d.categories, &Category{Name: category})
		i = len(d.categories) - 1
	}

	c := d.categories[i]
	if j := findWord(c.Words, term); j >= 0 {
		c.Words[j].Translation = translation
		return
	}
	c.Words = append(c.Words, Word{Term: term, Translation: translation})
}

// DeleteWord removes a word and drops its category if it becomes empty.
// Missing categories or terms are ignored.
func (d *Dataset) DeleteWord(category, term string) {
	i := d.find(category)
	if i < 0 {
		return
	}

	c := d.categories[i]
	j := findWord(c.Words, strings.ToLower(term))
	if j < 0 {
		return
	}
	c.Words = slices.Delete(c.Words, j, j+1)

	if len(c.Words) == 0 {
		d.categories = slices.Delete(d.categories, i, i+1)
	}
}

// DeleteCategory removes a category with all its words, missing categories are ignored
func (d *Dataset) DeleteCategory(category string) {
	if i := d.find(category); i >= 0 {
		d.categories = slices.Delete(d.categories, i, i+1)
	}
}

// Clone returns a deep copy of the dataset
func (d *Dataset) Clone() *Dataset {
	clone := &Dataset{categories: make([]*Category, 0, len(d.categories))}
	for _, c := range d.categories {
		clone.categories = append(clone.categories, &Category{Name: c.Name, Words: slices.Clone(c.Words)})
	}
	return clone
}

// MarshalJSON encodes the dataset as a JSON object of objects keeping insertion order.
// HTML and non-ASCII characters are written as is.
func (d *Dataset) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range d.categories {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONString(&buf, c.Name); err != nil {
			return nil, err
		}
		buf.WriteString(":{")
		for j, w := range c.Words {
			if j > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONString(&buf, w.Term); err != nil {
				return nil, err
			}
			buf.WriteByte(':')
			if err := writeJSONString(&buf, w.Translation); err != nil {
				return nil, err
			}
		}
		buf.WriteByte('}')
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object of objects keeping the document key order.
//
// The top level value must be an object whose values are objects of scalars,
// otherwise an error wrapping ErrInvalidDataset is returned.
// Numbers and booleans are kept as their JSON text, null becomes an empty translation.
// Terms are lower-cased and empty categories are skipped.
func (d *Dataset) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("%w: malformed JSON", ErrInvalidDataset)
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return fmt.Errorf("%w: top level value must be an object", ErrInvalidDataset)
	}

	parsed := &Dataset{}
	var parseErr error
	root.ForEach(func(category, words gjson.Result) bool {
		if !words.IsObject() {
			parseErr = fmt.Errorf("%w: category %q must be an object", ErrInvalidDataset, category.String())
			return false
		}
		words.ForEach(func(term, translation gjson.Result) bool {
			if translation.IsObject() || translation.IsArray() {
				parseErr = fmt.Errorf("%w: translation of %q must be a scalar", ErrInvalidDataset, term.String())
				return false
			}
			value := translation.String()
			if translation.Type == gjson.Number || translation.Type == gjson.True || translation.Type == gjson.False {
				value = translation.Raw
			}
			parsed.UpsertWord(category.String(), term.String(), value)
			return true
		})
		return parseErr == nil
	})
	if parseErr != nil {
		return parseErr
	}

	d.categories = parsed.categories
	return nil
}

func (d *Dataset) find(category string) int {
	return slices.IndexFunc(d.categories, func(c *Category) bool {
		return c.Name == category
	})
}

func findWord(words []Word, term string) int {
	return slices.IndexFunc(words, func(w Word) bool {
		return w.Term == term
	})
}

// writeJSONString writes s as a quoted JSON string without HTML escaping
func writeJSONString(buf *bytes.Buffer, s string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	// Encode always terminates the value with a newline
	buf.Truncate(buf.Len() - 1)
	return nil
}
