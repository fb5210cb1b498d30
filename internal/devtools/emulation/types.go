package emulation

// ScreenOrientation data type.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Emulation/#type-ScreenOrientation
type ScreenOrientation struct {
	// Orientation type.
	Type string `json:"type"`
	// Orientation angle.
	Angle int64 `json:"angle"`
}

// DisplayFeature data type.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Emulation/#type-DisplayFeature
//
// This CDP type is experimental.
type DisplayFeature struct {
	Orientation string `json:"orientation"`
	Offset      int64  `json:"offset"`
	MaskLength  int64  `json:"maskLength"`
}

// MediaFeature data type.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Emulation/#type-MediaFeature
type MediaFeature struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// VirtualTimePolicy data type. advance: If the scheduler runs out of
// immediate work, the virtual time base may fast forward to allow the next
// delayed task (if any) to run; pause: The virtual time base may not advance
// unless the browser loses all resource load activity; pauseIfNetworkFetchesPending: reschedules
//
// https://chromedevtools.github.io/devtools-protocol/tot/Emulation/#type-VirtualTimePolicy
type VirtualTimePolicy string

// VirtualTimePolicy valid values.
const (
	VirtualTimePolicyAdvance                     VirtualTimePolicy = "advance"
	VirtualTimePolicyPause                       VirtualTimePolicy = "pause"
	VirtualTimePolicyPauseIfNetworkFetchesPending VirtualTimePolicy = "pauseIfNetworkFetchesPending"
)

// DisabledImageType data type.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Emulation/#type-DisabledImageType
type DisabledImageType string

// DisabledImageType valid values.
const (
	DisabledImageTypeAvif DisabledImageType = "avif"
	DisabledImageTypeWebp DisabledImageType = "webp"
)

// UserAgentBrandVersion data type.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Emulation/#type-UserAgentBrandVersion
type UserAgentBrandVersion struct {
	Brand   string `json:"brand"`
	Version string `json:"version"`
}

// UserAgentMetadata data type. Used to specify User Agent Client Hints to
// emulate.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Emulation/#type-UserAgentMetadata
type UserAgentMetadata struct {
	Brands          []UserAgentBrandVersion `json:"brands,omitempty"`
	FullVersionList []UserAgentBrandVersion `json:"fullVersionList,omitempty"`
	Platform        string                  `json:"platform"`
	PlatformVersion string                  `json:"platformVersion"`
	Architecture    string                  `json:"architecture"`
	Model           string                  `json:"model"`
	Mobile          bool                    `json:"mobile"`
}
