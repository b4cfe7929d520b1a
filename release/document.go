package release

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
)

const (
	releaseSpace = `http://www.robotvendor.com/product/release`
	processSpace = `http://www.robotvendor.com/product/process`

	defaultObjectName = `UnnamedProcess`
	defaultStageName  = `UnnamedStage`

	// UnknownLanguage is used when a stage declares no language.
	UnknownLanguage = `unknown`
)

// node is a generic element of a release document. Code and language
// elements inside stages carry a namespace prefix that real documents
// leave undeclared, so those are matched by local name only, which the
// generic form allows.
type node struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Text     string     `xml:",chardata"`
	Children []node     `xml:",any"`
}

func (it *node) attr(name, fallback string) string {
	for _, attribute := range it.Attrs {
		if attribute.Name.Local == name {
			return attribute.Value
		}
	}
	return fallback
}

// elements returns direct children matching the namespace and local name.
func (it *node) elements(space, local string) []*node {
	result := []*node{}
	for at, child := range it.Children {
		if child.XMLName.Space == space && child.XMLName.Local == local {
			result = append(result, &it.Children[at])
		}
	}
	return result
}

// anywhere collects all descendants matching the namespace and local
// name, in document order.
func (it *node) anywhere(space, local string) []*node {
	result := []*node{}
	for at, child := range it.Children {
		if child.XMLName.Space == space && child.XMLName.Local == local {
			result = append(result, &it.Children[at])
		}
		result = append(result, it.Children[at].anywhere(space, local)...)
	}
	return result
}

// locals collects all descendants with the given local name, ignoring
// the namespace. Used for the code/language elements whose prefix is
// not declared in the document.
func (it *node) locals(local string) []*node {
	result := []*node{}
	for at, child := range it.Children {
		if child.XMLName.Local == local {
			result = append(result, &it.Children[at])
		}
		result = append(result, it.Children[at].locals(local)...)
	}
	return result
}

// Document is one parsed release document. It is read-only after
// parsing.
type Document struct {
	root node
}

// Object is a named automation object with its stages, in document
// order.
type Object struct {
	Name   string
	Stages []Stage
}

// Stage is a named pipeline unit holding zero or more code blocks in
// one declared language.
type Stage struct {
	Name     string
	Language string
	Blocks   []string
}

func Parse(reader io.Reader) (*Document, error) {
	decoder := xml.NewDecoder(reader)
	document := &Document{}
	if err := decoder.Decode(&document.root); err != nil {
		return nil, fmt.Errorf("malformed release document: %w", err)
	}
	return document, nil
}

func ParseFile(filename string) (*Document, error) {
	source, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer source.Close()
	document, err := Parse(source)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return document, nil
}

// Objects walks contents blocks anywhere under the root, and their
// direct object/process/stage children, in document order.
func (it *Document) Objects() []Object {
	result := []Object{}
	for _, contents := range it.root.anywhere(releaseSpace, "contents") {
		for _, object := range contents.elements(processSpace, "object") {
			found := Object{Name: object.attr("name", defaultObjectName)}
			for _, process := range object.elements(processSpace, "process") {
				for _, stage := range process.elements(processSpace, "stage") {
					found.Stages = append(found.Stages, asStage(stage))
				}
			}
			result = append(result, found)
		}
	}
	return result
}

func asStage(it *node) Stage {
	stage := Stage{
		Name:     it.attr("name", defaultStageName),
		Language: UnknownLanguage,
	}
	if languages := it.locals("language"); len(languages) > 0 {
		stage.Language = languages[0].Text
	}
	for _, code := range it.locals("code") {
		stage.Blocks = append(stage.Blocks, code.Text)
	}
	return stage
}
