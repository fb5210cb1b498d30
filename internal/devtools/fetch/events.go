package fetch

import "github.com/corvane/pilot/internal/devtools/network"

// RequestPaused asynchronous event. Issued when the domain is enabled and the request URL
// matches the specified filter. The request is paused until the client responds with one of
// continueRequest, failRequest or fulfillRequest. The stage of the request can be determined
// by presence of responseErrorReason and responseStatusCode -- the request is at the response
// stage if either of these fields is present and in the request stage otherwise.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Fetch/#event-requestPaused
type RequestPaused struct {
	// Each request the page makes will have a unique id.
	RequestID string `json:"requestId"`
	// The details of the request.
	Request network.Request `json:"request"`
	// The id of the frame that initiated the request.
	FrameID string `json:"frameId"`
	// How the requested resource will be used.
	ResourceType string `json:"resourceType"`
	// Response error if intercepted at response stage.
	ResponseErrorReason network.ErrorReason `json:"responseErrorReason,omitempty"`
	// Response code if intercepted at response stage.
	ResponseStatusCode int64 `json:"responseStatusCode,omitempty"`
	// Response status text if intercepted at response stage.
	ResponseStatusText string `json:"responseStatusText,omitempty"`
	// Response headers if intercepted at the response stage.
	ResponseHeaders []HeaderEntry `json:"responseHeaders,omitempty"`
	// If the intercepted request had a corresponding Network.requestWillBeSent event fired for
	// it, then this networkId will be the same as the requestId present in the requestWillBeSent
	// event.
	NetworkID string `json:"networkId,omitempty"`
}

// AuthRequired asynchronous event. Issued when the domain is enabled with
// `handleAuthRequests` set to true. The request is paused until client responds with
// continueWithAuth.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Fetch/#event-authRequired
type AuthRequired struct {
	// Each request the page makes will have a unique id.
	RequestID string `json:"requestId"`
	// The details of the request.
	Request network.Request `json:"request"`
	// The id of the frame that initiated the request.
	FrameID string `json:"frameId"`
	// How the requested resource will be used.
	ResourceType string `json:"resourceType"`
	// Details of the Authorization Challenge encountered. If this is set, client should
	// respond with continueRequest that contains AuthChallengeResponse.
	AuthChallenge AuthChallenge `json:"authChallenge"`
}
