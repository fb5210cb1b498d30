package dom

import "github.com/corvane/pilot/internal/devtools/runtime"

// BackendNodeID data type. Unique DOM node identifier used to reference a
// node that may not have been pushed to the front-end.
//
// https://chromedevtools.github.io/devtools-protocol/tot/DOM/#type-BackendNodeId
type BackendNodeID int64

// Quad data type. An array of quad vertices, x immediately followed by y for
// each point, points clock-wise.
//
// https://chromedevtools.github.io/devtools-protocol/tot/DOM/#type-Quad
type Quad []float64

// Rect data type. Rectangle.
//
// https://chromedevtools.github.io/devtools-protocol/tot/DOM/#type-Rect
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// BoxModel data type. Box model.
//
// https://chromedevtools.github.io/devtools-protocol/tot/DOM/#type-BoxModel
type BoxModel struct {
	Content Quad  `json:"content"`
	Padding Quad  `json:"padding"`
	Border  Quad  `json:"border"`
	Margin  Quad  `json:"margin"`
	Width   int64 `json:"width"`
	Height  int64 `json:"height"`
}

// Node data type. DOM interface node (a structural representation of the
// document object model).
//
// https://chromedevtools.github.io/devtools-protocol/tot/DOM/#type-Node
type Node struct {
	NodeID           int64                   `json:"nodeId"`
	ParentID         int64                   `json:"parentId,omitempty"`
	BackendNodeID    BackendNodeID           `json:"backendNodeId"`
	NodeType         int64                   `json:"nodeType"`
	NodeName         string                  `json:"nodeName"`
	LocalName        string                  `json:"localName"`
	NodeValue        string                  `json:"nodeValue"`
	ChildNodeCount   int64                   `json:"childNodeCount,omitempty"`
	Children         []Node                  `json:"children,omitempty"`
	Attributes       []string                `json:"attributes,omitempty"`
	FrameID          string                  `json:"frameId,omitempty"`
	ContentDocument  *Node                   `json:"contentDocument,omitempty"`
	ShadowRoots      []Node                  `json:"shadowRoots,omitempty"`
	IsSVG            bool                    `json:"isSVG,omitempty"`
	ObjectID         runtime.RemoteObjectID  `json:"-"`
}
