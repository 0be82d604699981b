// Package branch holds the static registry of hospital sedes: the routing
// keys accepted on the API surface, the numeric discriminant stamped on
// every partitioned row, and the physical table suffix each sede uses.
package branch

import (
	"errors"
	"strings"
)

var ErrUnknownBranch = errors.New("unknown sede")

// Branch identifies one regional datastore.
type Branch struct {
	Key          string
	Discriminant int
	Suffix       string
}

// Discriminant values come from the deployed schemas and must never change:
// existing rows are stamped with them.
var (
	Centro = Branch{Key: "centro", Discriminant: 1, Suffix: "CENTRO"}
	Norte  = Branch{Key: "norte", Discriminant: 0, Suffix: "NORTE"}
	Sur    = Branch{Key: "sur", Discriminant: 2, Suffix: "SUR"}
)

// all is the canonical registration order. Fan-out reads merge results in
// this order.
var all = []Branch{Centro, Norte, Sur}

// All returns every registered sede in canonical order.
func All() []Branch {
	out := make([]Branch, len(all))
	copy(out, all)
	return out
}

// Default is the sede used when a request carries no routing key at all.
func Default() Branch {
	return Centro
}

// Keys returns the routing keys in canonical order.
func Keys() []string {
	out := make([]string, len(all))
	for i, b := range all {
		out[i] = b.Key
	}
	return out
}

// Parse resolves a routing key to its Branch. Keys are case-insensitive.
func Parse(key string) (Branch, error) {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "centro":
		return Centro, nil
	case "norte":
		return Norte, nil
	case "sur":
		return Sur, nil
	default:
		return Branch{}, ErrUnknownBranch
	}
}

func (b Branch) String() string {
	return b.Key
}
