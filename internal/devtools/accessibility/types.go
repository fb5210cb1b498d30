package accessibility

import "encoding/json"

// AXNodeID data type. Unique accessibility node identifier.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Accessibility/#type-AXNodeId
type AXNodeID string

// AXValueType data type. Enum of possible property types.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Accessibility/#type-AXValueType
type AXValueType string

// AXValueSourceType data type. Enum of possible property sources.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Accessibility/#type-AXValueSourceType
type AXValueSourceType string

// AXValueNativeSourceType data type. Enum of possible native property sources
// (as a subtype of a particular AXValueSourceType).
//
// https://chromedevtools.github.io/devtools-protocol/tot/Accessibility/#type-AXValueNativeSourceType
type AXValueNativeSourceType string

// AXValueSource data type. A single source for a computed AX property.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Accessibility/#type-AXValueSource
type AXValueSource struct {
	// What type of source this is.
	Type AXValueSourceType `json:"type"`
	// The value of this property source.
	Value *AXValue `json:"value,omitempty"`
	// The name of the relevant attribute, if any.
	Attribute string `json:"attribute,omitempty"`
	// The value of the relevant attribute, if any.
	AttributeValue *AXValue `json:"attributeValue,omitempty"`
	// Whether this source is superseded by a higher priority source.
	Superseded bool `json:"superseded,omitempty"`
	// The native markup source for this value, e.g. a `<label>` element.
	NativeSource AXValueNativeSourceType `json:"nativeSource,omitempty"`
	// The value, such as a node or node list, of the native source.
	NativeSourceValue *AXValue `json:"nativeSourceValue,omitempty"`
	// Whether the value for this property is invalid.
	Invalid bool `json:"invalid,omitempty"`
	// Reason for the value being invalid, if it is.
	InvalidReason string `json:"invalidReason,omitempty"`
}

// AXRelatedNode data type.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Accessibility/#type-AXRelatedNode
type AXRelatedNode struct {
	// The BackendNodeId of the related DOM node.
	BackendDOMNodeID int64 `json:"backendDOMNodeId"`
	// The IDRef value provided, if any.
	IDRef string `json:"idref,omitempty"`
	// The text alternative of this node in the current context.
	Text string `json:"text,omitempty"`
}

// AXProperty data type.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Accessibility/#type-AXProperty
type AXProperty struct {
	// The name of this property.
	Name string `json:"name"`
	// The value of this property.
	Value AXValue `json:"value"`
}

// AXValue data type. A single computed AX property.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Accessibility/#type-AXValue
type AXValue struct {
	// The type of this value.
	Type AXValueType `json:"type"`
	// The computed value of this property.
	Value json.RawMessage `json:"value,omitempty"`
	// One or more related nodes, if applicable.
	RelatedNodes []AXRelatedNode `json:"relatedNodes,omitempty"`
	// The sources which contributed to the computation of this property.
	Sources []AXValueSource `json:"sources,omitempty"`
}

// AXNode data type. A node in the accessibility tree.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Accessibility/#type-AXNode
type AXNode struct {
	// Unique identifier for this node.
	NodeID AXNodeID `json:"nodeId"`
	// Whether this node is ignored for accessibility.
	Ignored bool `json:"ignored"`
	// Collection of reasons why this node is hidden.
	IgnoredReasons []AXProperty `json:"ignoredReasons,omitempty"`
	// This `Node`'s role, whether explicit or implicit.
	Role *AXValue `json:"role,omitempty"`
	// This `Node`'s Chrome raw role.
	//
	// This CDP property is experimental.
	ChromeRole *AXValue `json:"chromeRole,omitempty"`
	// The accessible name for this `Node`.
	Name *AXValue `json:"name,omitempty"`
	// The accessible description for this `Node`.
	Description *AXValue `json:"description,omitempty"`
	// The value for this `Node`.
	Value *AXValue `json:"value,omitempty"`
	// All other properties.
	Properties []AXProperty `json:"properties,omitempty"`
	// ID for this node's parent.
	ParentID AXNodeID `json:"parentId,omitempty"`
	// IDs for each of this node's child nodes.
	ChildIds []AXNodeID `json:"childIds,omitempty"`
	// The backend ID for the associated DOM node, if any.
	BackendDOMNodeID int64 `json:"backendDOMNodeId,omitempty"`
	// The frame ID for the frame associated with this nodes document.
	//
	// This CDP property is experimental.
	FrameID string `json:"frameId,omitempty"`
}
