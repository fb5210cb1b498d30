package runtime

import "encoding/json"

// RemoteObjectID data type. Unique object identifier.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Runtime/#type-RemoteObjectId
type RemoteObjectID string

// ExecutionContextID data type. Id of an execution context.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Runtime/#type-ExecutionContextId
type ExecutionContextID int64

// RemoteObject data type. Mirror of JavaScript object.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Runtime/#type-RemoteObject
type RemoteObject struct {
	// Object type.
	Type string `json:"type"`
	// Object subtype hint.
	Subtype string `json:"subtype,omitempty"`
	// Object class (constructor) name.
	ClassName string `json:"className,omitempty"`
	// Remote object value in case of primitive values or JSON values (if it was requested).
	Value json.RawMessage `json:"value,omitempty"`
	// Primitive value which can not be JSON-stringified does not have `value`, but gets this
	// property.
	UnserializableValue string `json:"unserializableValue,omitempty"`
	// String representation of the object.
	Description string `json:"description,omitempty"`
	// Unique object identifier (for non-primitive values).
	ObjectID string `json:"objectId,omitempty"`
}

// CallArgument data type. Represents function call argument. Either remote
// object id objectId, primitive value, unserializable primitive value or
// neither of (for undefined) them should be specified.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Runtime/#type-CallArgument
type CallArgument struct {
	// Primitive value or serializable javascript object.
	Value json.RawMessage `json:"value,omitempty"`
	// Primitive value which can not be JSON-stringified.
	UnserializableValue string `json:"unserializableValue,omitempty"`
	// Remote object handle.
	ObjectID string `json:"objectId,omitempty"`
}

// ExceptionDetails data type. Detailed information about exception (or error) that was
// thrown during script compilation or execution.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Runtime/#type-ExceptionDetails
type ExceptionDetails struct {
	// Exception id.
	ExceptionID int64 `json:"exceptionId"`
	// Exception text, which should be used together with exception object when available.
	Text string `json:"text"`
	// Line number of the exception location (0-based).
	LineNumber int64 `json:"lineNumber"`
	// Column number of the exception location (0-based).
	ColumnNumber int64 `json:"columnNumber"`
	// Script ID of the exception location.
	ScriptID string `json:"scriptId,omitempty"`
	// URL of the exception location.
	URL string `json:"url,omitempty"`
	// JavaScript stack trace if available.
	StackTrace *StackTrace `json:"stackTrace,omitempty"`
	// Exception object if available.
	Exception *RemoteObject `json:"exception,omitempty"`
	// Identifier of the context where exception happened.
	ExecutionContextID int64 `json:"executionContextId,omitempty"`
}

// CallFrame data type. Stack entry for runtime errors and assertions.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Runtime/#type-CallFrame
type CallFrame struct {
	FunctionName string `json:"functionName"`
	ScriptID     string `json:"scriptId"`
	URL          string `json:"url"`
	LineNumber   int64  `json:"lineNumber"`
	ColumnNumber int64  `json:"columnNumber"`
}

// StackTrace data type. Call frames for assertions or error messages.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Runtime/#type-StackTrace
type StackTrace struct {
	Description string      `json:"description,omitempty"`
	CallFrames  []CallFrame `json:"callFrames"`
	Parent      *StackTrace `json:"parent,omitempty"`
}

// ExecutionContextDescription data type. Description of an isolated world.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Runtime/#type-ExecutionContextDescription
type ExecutionContextDescription struct {
	// Unique id of the execution context. It can be used to specify in which execution
	// context script evaluation should be performed.
	ID int64 `json:"id"`
	// Execution context origin.
	Origin string `json:"origin"`
	// Human readable name describing given context.
	Name string `json:"name"`
	// A system-unique execution context identifier. Unlike the id, this is unique across
	// multiple processes, so can be reliably used to identify specific context while backend
	// performs a cross-process navigation.
	UniqueID string `json:"uniqueId"`
	// Embedder-specific auxiliary data likely matching {isDefault: bool, type: string,
	// frameId: string}.
	AuxData json.RawMessage `json:"auxData,omitempty"`
}

// ExecutionContextAuxData is the well-known shape of
// ExecutionContextDescription.AuxData for the main renderer process - see
// https://crbug.com/1193242 for why this isn't a formal CDP type.
type ExecutionContextAuxData struct {
	IsDefault bool   `json:"isDefault"`
	Type      string `json:"type"`
	FrameID   string `json:"frameId"`
}
