package discovery

import (
	"strconv"

	"github.com/fretemap/fretemap-cli/internal/document"
)

// Traversal bounds. Quote payloads nest their options array at unpredictable
// depth, but never usefully beyond these limits.
const (
	maxDepth    = 5
	arrayFanOut = 3
)

// FieldDescriptor describes one field of a candidate's representative record.
type FieldDescriptor struct {
	Path       string
	Key        string
	Kind       document.Kind
	Sample     document.Value
	Role       Role
	Confidence float64
}

// ArrayCandidate is one array-of-records location found in the document.
// Fields come from the first object-shaped element; Length counts only the
// object-shaped elements.
type ArrayCandidate struct {
	Path   string
	Length int
	Fields []FieldDescriptor
	Score  int
}

// Discover enumerates every array candidate in the document up to the depth
// bound, in deterministic traversal order: object members in declaration
// order, then the first few array elements. The empty path means the
// document root is itself the array.
func Discover(root document.Value) []ArrayCandidate {
	var out []ArrayCandidate
	walk(root, "", 0, &out)
	for i := range out {
		out[i].Score = scoreCandidate(out[i])
	}
	return out
}

func walk(v document.Value, path string, depth int, out *[]ArrayCandidate) {
	if depth > maxDepth {
		return
	}
	switch v.Kind() {
	case document.KindArray:
		elems := v.Elems()
		var first *document.Value
		records := 0
		for i := range elems {
			if elems[i].Kind() == document.KindObject {
				if first == nil {
					first = &elems[i]
				}
				records++
			}
		}
		if first != nil {
			*out = append(*out, ArrayCandidate{
				Path:   path,
				Length: records,
				Fields: describeFields(path, *first),
			})
		}
		for i := 0; i < len(elems) && i < arrayFanOut; i++ {
			walk(elems[i], childPath(path, strconv.Itoa(i)), depth+1, out)
		}
	case document.KindObject:
		for _, m := range v.Members() {
			walk(m.Value, childPath(path, m.Key), depth+1, out)
		}
	}
}

func describeFields(arrayPath string, record document.Value) []FieldDescriptor {
	members := record.Members()
	fds := make([]FieldDescriptor, 0, len(members))
	for _, m := range members {
		role, conf := DetectRole(m.Key, m.Value)
		fds = append(fds, FieldDescriptor{
			Path:       childPath(arrayPath, m.Key),
			Key:        m.Key,
			Kind:       m.Value.Kind(),
			Sample:     m.Value,
			Role:       role,
			Confidence: conf,
		})
	}
	return fds
}

func childPath(parent, seg string) string {
	if parent == "" {
		return seg
	}
	return parent + "." + seg
}
