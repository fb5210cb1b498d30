package pilot

import (
	"encoding/json"
	"testing"

	"github.com/corvane/pilot/internal/devtools/accessibility"
)

func axString(s string) *accessibility.AXValue {
	b, _ := json.Marshal(s)
	return &accessibility.AXValue{Value: b}
}

func TestBuildAriaTreeNestsChildren(t *testing.T) {
	nodes := []accessibility.AXNode{
		{NodeID: "1", ParentID: "", ChildIds: []accessibility.AXNodeID{"2"}, Role: axString("WebArea"), Name: axString("doc")},
		{NodeID: "2", ParentID: "1", ChildIds: []accessibility.AXNodeID{"3"}, Role: axString("button"), Name: axString("Submit")},
		{NodeID: "3", ParentID: "2", Role: axString("generic"), Ignored: true},
	}

	tree := buildAriaTree(nodes)
	if tree == nil {
		t.Fatalf("buildAriaTree(...) = nil, want a root node")
	}
	if tree.Role != "WebArea" || tree.Name != "doc" {
		t.Errorf("root = %+v, want Role=WebArea Name=doc", tree)
	}
	if len(tree.Children) != 1 {
		t.Fatalf("len(tree.Children) = %d, want 1", len(tree.Children))
	}
	child := tree.Children[0]
	if child.Role != "button" || child.Name != "Submit" {
		t.Errorf("child = %+v, want Role=button Name=Submit", child)
	}
	if len(child.Children) != 0 {
		t.Errorf("ignored node leaked into tree: %+v", child.Children)
	}
}

func TestBuildAriaTreeNoRoot(t *testing.T) {
	nodes := []accessibility.AXNode{
		{NodeID: "1", ParentID: "0", Role: axString("generic")},
	}
	if tree := buildAriaTree(nodes); tree != nil {
		t.Errorf("buildAriaTree(no-root-node) = %+v, want nil", tree)
	}
}

func TestAxValueString(t *testing.T) {
	if got := axValueString(nil); got != "" {
		t.Errorf("axValueString(nil) = %q, want empty", got)
	}
	if got := axValueString(axString("hello")); got != "hello" {
		t.Errorf("axValueString(...) = %q, want %q", got, "hello")
	}
}
