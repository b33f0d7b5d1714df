package artifacts

import (
	"fmt"

	"github.com/beevik/etree"
)

// MergeParking combines two parking definition documents into one superset
// document written to out. Every top-level child element of the second
// document's root is appended to the first document's root, in its original
// order. No deduplication is attempted: the two sources describe disjoint
// parking discovered by different tools.
func MergeParking(first, second, out string) error {
	base, err := readRooted(first)
	if err != nil {
		return err
	}
	extra, err := readRooted(second)
	if err != nil {
		return err
	}
	for _, child := range extra.Root().ChildElements() {
		base.Root().AddChild(child.Copy())
	}
	if err := base.WriteToFile(out); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	return nil
}

func readRooted(path string) (*etree.Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if doc.Root() == nil {
		return nil, fmt.Errorf("%s: no root element", path)
	}
	return doc, nil
}
