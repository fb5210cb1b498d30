package runtime

// ExecutionContextCreated asynchronous event. Issued when new execution context is created.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Runtime/#event-executionContextCreated
type ExecutionContextCreated struct {
	// A newly created execution context.
	Context ExecutionContextDescription `json:"context"`
}

// ExecutionContextDestroyed asynchronous event. Issued when execution context is destroyed.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Runtime/#event-executionContextDestroyed
type ExecutionContextDestroyed struct {
	// Id of the destroyed context.
	ExecutionContextID int64 `json:"executionContextId"`
	// Unique Id of the destroyed context.
	ExecutionContextUniqueID string `json:"executionContextUniqueId"`
}

// ExecutionContextsCleared asynchronous event. Issued when all executionContexts were cleared
// in browser.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Runtime/#event-executionContextsCleared
type ExecutionContextsCleared struct{}

// ConsoleAPICalled asynchronous event. Issued when console API was called.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Runtime/#event-consoleAPICalled
type ConsoleAPICalled struct {
	// Type of the call.
	Type string `json:"type"`
	// Call arguments.
	Args []RemoteObject `json:"args"`
	// Identifier of the context where the call was made.
	ExecutionContextID int64 `json:"executionContextId"`
	// Call timestamp.
	Timestamp float64 `json:"timestamp"`
	// Stack trace captured when the call was made. The async stack chain is automatically
	// reported for the following call types: `assert`, `error`, `trace`, `warning`. For other
	// types the async call chain can be retrieved using `Debugger.getStackTrace` and
	// `stackTrace.parentId` field.
	StackTrace *StackTrace `json:"stackTrace,omitempty"`
}

// ExceptionThrown asynchronous event. Issued when exception was thrown and unhandled.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Runtime/#event-exceptionThrown
type ExceptionThrown struct {
	// Timestamp of the exception.
	Timestamp        float64          `json:"timestamp"`
	ExceptionDetails ExceptionDetails `json:"exceptionDetails"`
}
