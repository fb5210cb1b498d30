package pilot

import (
	"context"

	"github.com/corvane/pilot/internal/devtools"
	"github.com/corvane/pilot/internal/devtools/browser"
	"github.com/corvane/pilot/internal/devtools/emulation"
	"github.com/corvane/pilot/internal/devtools/network"
)

// applyContextOptions pushes the BrowserContext's policies onto a freshly
// attached page (§3's ContextOptions), in the same best-effort manner as
// the init-script replay in Page.start: a failed override is logged, not
// fatal, since a page that merely runs unemulated is still usable.
func (p *Page) applyContextOptions(ctx context.Context) {
	o := p.bc.options

	if v := o.Viewport; v != nil {
		if err := p.SetViewportSize(ctx, v.Width, v.Height); err != nil {
			p.log.WithError(err).Warn("pilot: failed to apply viewport override")
		}
	}
	if o.UserAgent != "" {
		cmd := emulation.NewSetUserAgentOverride(o.UserAgent)
		if o.Locale != "" {
			cmd.SetAcceptLanguage(o.Locale)
		}
		if err := cmd.Do(p.ctx(ctx)); err != nil {
			p.log.WithError(err).Warn("pilot: failed to apply user agent override")
		}
	}
	if o.Locale != "" {
		if err := emulation.NewSetLocaleOverride().SetLocale(o.Locale).Do(p.ctx(ctx)); err != nil {
			p.log.WithError(err).Warn("pilot: failed to apply locale override")
		}
	}
	if o.TimezoneID != "" {
		if err := emulation.NewSetTimezoneOverride(o.TimezoneID).Do(p.ctx(ctx)); err != nil {
			p.log.WithError(err).Warn("pilot: failed to apply timezone override")
		}
	}
	if o.ColorScheme != "" || o.ReducedMotion != "" {
		if err := p.setEmulatedMediaFeatures(ctx, o.ColorScheme, o.ReducedMotion); err != nil {
			p.log.WithError(err).Warn("pilot: failed to apply emulated media features")
		}
	}
	if o.Geolocation != nil {
		if err := p.SetGeolocation(ctx, o.Geolocation); err != nil {
			p.log.WithError(err).Warn("pilot: failed to apply geolocation override")
		}
	}
	if len(o.ExtraHTTPHeaders) > 0 {
		if err := p.SetExtraHTTPHeaders(ctx, o.ExtraHTTPHeaders); err != nil {
			p.log.WithError(err).Warn("pilot: failed to apply extra HTTP headers")
		}
	}
	if o.Offline {
		if err := p.SetOffline(ctx, true); err != nil {
			p.log.WithError(err).Warn("pilot: failed to apply offline mode")
		}
	}
}

// SetViewportSize changes the emulated window/device viewport. A zero
// DeviceScaleFactor is sent as 1, matching the browser's own default.
func (p *Page) SetViewportSize(ctx context.Context, width, height int64) error {
	scale := float64(1)
	mobile := false
	if v := p.bc.options.Viewport; v != nil {
		if v.DeviceScaleFactor != 0 {
			scale = v.DeviceScaleFactor
		}
		mobile = v.IsMobile
	}
	cmd := emulation.NewSetDeviceMetricsOverride(width, height, scale, mobile)
	if err := cmd.Do(p.ctx(ctx)); err != nil {
		return wrapError("Page.SetViewportSize", KindProtocol, err)
	}
	return nil
}

func (p *Page) setEmulatedMediaFeatures(ctx context.Context, colorScheme, reducedMotion string) error {
	var features []emulation.MediaFeature
	if colorScheme != "" {
		features = append(features, emulation.MediaFeature{Name: "prefers-color-scheme", Value: colorScheme})
	}
	if reducedMotion != "" {
		features = append(features, emulation.MediaFeature{Name: "prefers-reduced-motion", Value: reducedMotion})
	}
	return emulation.NewSetEmulatedMedia().SetFeatures(features).Do(p.ctx(ctx))
}

// SetGeolocation overrides navigator.geolocation's reported position. A nil
// geo clears the override and falls back to the host's real location.
func (p *Page) SetGeolocation(ctx context.Context, geo *Geolocation) error {
	sessionCtx := p.ctx(ctx)
	if geo == nil {
		if err := emulation.NewClearGeolocationOverride().Do(sessionCtx); err != nil {
			return wrapError("Page.SetGeolocation", KindProtocol, err)
		}
		return nil
	}
	cmd := emulation.NewSetGeolocationOverride().
		SetLatitude(geo.Latitude).
		SetLongitude(geo.Longitude).
		SetAccuracy(geo.Accuracy)
	if err := cmd.Do(sessionCtx); err != nil {
		return wrapError("Page.SetGeolocation", KindProtocol, err)
	}
	return nil
}

// SetExtraHTTPHeaders merges extra headers into every request this page
// issues from here on, until overwritten by a subsequent call.
func (p *Page) SetExtraHTTPHeaders(ctx context.Context, headers map[string]string) error {
	h := make(network.Headers, len(headers))
	for k, v := range headers {
		h[k] = v
	}
	if err := network.NewSetExtraHTTPHeaders(h).Do(p.ctx(ctx)); err != nil {
		return wrapError("Page.SetExtraHTTPHeaders", KindProtocol, err)
	}
	return nil
}

// SetOffline toggles simulated network disconnection.
func (p *Page) SetOffline(ctx context.Context, offline bool) error {
	cmd := network.NewEmulateNetworkConditions(offline, 0, -1, -1)
	if err := cmd.Do(p.ctx(ctx)); err != nil {
		return wrapError("Page.SetOffline", KindProtocol, err)
	}
	return nil
}

// SetNetworkThrottling simulates a constrained connection: latencyMs is
// added to every request's round trip, and throughput is capped in
// bytes/sec (-1 disables that particular cap).
func (p *Page) SetNetworkThrottling(ctx context.Context, latencyMs float64, downloadBytesPerSec, uploadBytesPerSec float64) error {
	cmd := network.NewEmulateNetworkConditions(false, latencyMs, downloadBytesPerSec, uploadBytesPerSec)
	if err := cmd.Do(p.ctx(ctx)); err != nil {
		return wrapError("Page.SetNetworkThrottling", KindProtocol, err)
	}
	return nil
}

// SetCPUThrottlingRate slows script execution by rate (1 = no throttling,
// 4 = 4x slowdown).
func (p *Page) SetCPUThrottlingRate(ctx context.Context, rate float64) error {
	if err := emulation.NewSetCPUThrottlingRate(rate).Do(p.ctx(ctx)); err != nil {
		return wrapError("Page.SetCPUThrottlingRate", KindProtocol, err)
	}
	return nil
}

// GrantPermissions grants the named permissions (e.g. "geolocation",
// "camera") to every origin in the context, overriding what the page would
// otherwise be prompted for.
func (c *BrowserContext) GrantPermissions(ctx context.Context, permissions ...string) error {
	perms := make([]browser.PermissionType, len(permissions))
	for i, p := range permissions {
		perms[i] = browser.PermissionType(p)
	}
	cmd := browser.NewGrantPermissions(perms)
	if c.id != "" {
		cmd.SetBrowserContextID(c.id)
	}
	sessionCtx := devtools.WithSession(ctx, c.conn, "")
	if err := cmd.Do(sessionCtx); err != nil {
		return wrapError("BrowserContext.GrantPermissions", KindProtocol, err)
	}
	return nil
}

// ResetPermissions clears every permission override granted on this context.
func (c *BrowserContext) ResetPermissions(ctx context.Context) error {
	cmd := browser.NewResetPermissions()
	if c.id != "" {
		cmd.SetBrowserContextID(c.id)
	}
	sessionCtx := devtools.WithSession(ctx, c.conn, "")
	if err := cmd.Do(sessionCtx); err != nil {
		return wrapError("BrowserContext.ResetPermissions", KindProtocol, err)
	}
	return nil
}
