package pilot

import (
	"testing"

	"github.com/corvane/pilot/internal/devtools/network"
)

func TestHARPhase(t *testing.T) {
	if got := harPhase(10, 25); got != 15 {
		t.Errorf("harPhase(10, 25) = %v, want 15", got)
	}
	if got := harPhase(-1, 25); got != -1 {
		t.Errorf("harPhase(-1, 25) = %v, want -1", got)
	}
}

func TestBuildHARTimingsNilTiming(t *testing.T) {
	got := buildHARTimings(nil)
	want := HARTimings{Blocked: -1, DNS: -1, Connect: -1, Ssl: -1, Send: -1, Wait: -1, Receive: -1}
	if got != want {
		t.Errorf("buildHARTimings(nil) = %+v, want %+v", got, want)
	}
}

func TestBuildHARTimingsComputesPhases(t *testing.T) {
	timing := &network.ResourceTiming{
		DNSStart: 0, DNSEnd: 5,
		ConnectStart: 5, ConnectEnd: 12,
		SslStart: -1, SslEnd: -1,
		SendStart: 12, SendEnd: 13,
		ReceiveHeadersEnd: 40,
	}
	got := buildHARTimings(timing)
	if got.DNS != 5 || got.Connect != 7 || got.Ssl != -1 || got.Send != 1 || got.Wait != 27 {
		t.Errorf("buildHARTimings(...) = %+v, want DNS=5 Connect=7 Ssl=-1 Send=1 Wait=27", got)
	}
}

func TestTotalHARTimeIgnoresNegatives(t *testing.T) {
	got := totalHARTime(HARTimings{Blocked: -1, DNS: 5, Connect: -1, Ssl: -1, Send: 2, Wait: 10, Receive: -1})
	if got != 17 {
		t.Errorf("totalHARTime(...) = %v, want 17", got)
	}
}

func TestRedirectURLCaseInsensitive(t *testing.T) {
	got := redirectURL(network.Headers{"location": "https://example.com/next"})
	if got != "https://example.com/next" {
		t.Errorf("redirectURL(...) = %q, want %q", got, "https://example.com/next")
	}
	if got := redirectURL(network.Headers{"Content-Type": "text/html"}); got != "" {
		t.Errorf("redirectURL(no Location) = %q, want empty", got)
	}
}
