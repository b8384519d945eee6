package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("perfume not found")
)

const KeyPrefix = "perfume:"

type Category string

const (
	Her Category = "her"
	Him Category = "him"
)

// Categories lists every catalog partition in display order.
var Categories = []Category{Her, Him}

func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case Her, Him:
		return Category(s), nil
	default:
		return "", fmt.Errorf("%w: invalid category %q", ErrInvalidArgument, s)
	}
}

// Perfume is the catalog's only entity. (Category, ID) is its identity; IDs
// are unique within a category only.
type Perfume struct {
	ID          int      `json:"id"`
	Category    Category `json:"category"`
	Name        string   `json:"name"`
	Subtitle    string   `json:"subtitle"`
	Tagline     string   `json:"tagline"`
	Description string   `json:"description"`
	TopNotes    string   `json:"topNotes"`
	HeartNotes  string   `json:"heartNotes"`
	BaseNotes   string   `json:"baseNotes"`
	Image       string   `json:"image"`
}

// Key is the storage key of the record (category, id).
func Key(c Category, id int) string {
	return fmt.Sprintf("%s%s:%d", KeyPrefix, c, id)
}

func categoryPrefix(c Category) string {
	return KeyPrefix + string(c) + ":"
}

func (p Perfume) Key() string { return Key(p.Category, p.ID) }

func (p Perfume) validate() error {
	if p.Category == "" || p.ID == 0 {
		return fmt.Errorf("%w: category and id are required", ErrInvalidArgument)
	}
	if _, err := ParseCategory(string(p.Category)); err != nil {
		return err
	}
	if p.ID < 0 {
		return fmt.Errorf("%w: id must be positive", ErrInvalidArgument)
	}
	return nil
}

// FilterCategory returns the records of ps that belong to c, in order.
func FilterCategory(ps []Perfume, c Category) []Perfume {
	out := make([]Perfume, 0, len(ps))
	for _, p := range ps {
		if p.Category == c {
			out = append(out, p)
		}
	}
	return out
}
