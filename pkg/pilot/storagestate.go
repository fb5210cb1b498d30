package pilot

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/corvane/pilot/internal/devtools/network"
)

// StorageState is a snapshot of a BrowserContext's cookies and per-origin
// localStorage, portable across browser launches (§9's storage-state
// export/import).
type StorageState struct {
	Cookies []Cookie        `json:"cookies"`
	Origins []OriginStorage `json:"origins"`
}

// Cookie mirrors network.Cookie's externally-relevant fields in a form that
// round-trips through JSON without dragging in CDP-only bookkeeping
// (Size, Priority, SameParty, SourceScheme, SourcePort).
type Cookie struct {
	Name     string  `json:"name"`
	Value    string  `json:"value"`
	Domain   string  `json:"domain"`
	Path     string  `json:"path"`
	Expires  float64 `json:"expires"`
	HTTPOnly bool    `json:"httpOnly"`
	Secure   bool    `json:"secure"`
	SameSite string  `json:"sameSite,omitempty"`
}

// OriginStorage is one origin's captured localStorage.
type OriginStorage struct {
	Origin       string        `json:"origin"`
	LocalStorage []StorageItem `json:"localStorage"`
}

// StorageItem is a single localStorage key/value pair.
type StorageItem struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// StorageState exports every cookie visible to the context plus the
// localStorage of every origin currently open in one of its pages.
// Origins never visited by an open page are not captured (Non-goals:
// pilot does not crawl history to discover them).
func (c *BrowserContext) StorageState(ctx context.Context) (*StorageState, error) {
	pages := c.Pages()
	state := &StorageState{}

	if len(pages) > 0 {
		res, err := network.NewGetAllCookies().Do(pages[0].ctx(ctx))
		if err != nil {
			return nil, wrapError("BrowserContext.StorageState", KindProtocol, err)
		}
		state.Cookies = make([]Cookie, len(res.Cookies))
		for i, ck := range res.Cookies {
			state.Cookies[i] = cookieFromCDP(ck)
		}
	}

	seen := make(map[string]bool)
	for _, p := range pages {
		origin := originOf(p.URL())
		if origin == "" || seen[origin] {
			continue
		}
		seen[origin] = true

		items, err := localStorageItems(ctx, p.MainFrame())
		if err != nil {
			p.log.WithError(err).Warn("pilot: failed to capture localStorage for origin")
			continue
		}
		state.Origins = append(state.Origins, OriginStorage{Origin: origin, LocalStorage: items})
	}
	return state, nil
}

// SetStorageState sets state.Cookies in the context's cookie jar (cookies
// already there and not named in state are left in place), and
// arranges for state.Origins' localStorage to be written the next time each
// origin is loaded (as an init script keyed by location.origin, matching how
// AddInitScript already reinstalls scripts on every newly attached page).
func (c *BrowserContext) SetStorageState(ctx context.Context, state *StorageState) error {
	if len(state.Cookies) > 0 {
		params := make([]network.CookieParam, len(state.Cookies))
		for i, ck := range state.Cookies {
			params[i] = cookieToCDP(ck)
		}
		pages := c.Pages()
		var sessionCtx context.Context
		if len(pages) > 0 {
			sessionCtx = pages[0].ctx(ctx)
		} else {
			p, err := c.NewPage(ctx)
			if err != nil {
				return wrapError("BrowserContext.SetStorageState", KindProtocol, err)
			}
			sessionCtx = p.ctx(ctx)
		}
		if err := network.NewSetCookies(params).Do(sessionCtx); err != nil {
			return wrapError("BrowserContext.SetStorageState", KindProtocol, err)
		}
	}

	for _, o := range state.Origins {
		c.AddInitScript(localStorageRestoreScript(o))
	}
	return nil
}

func cookieFromCDP(c network.Cookie) Cookie {
	out := Cookie{
		Name:     c.Name,
		Value:    c.Value,
		Domain:   c.Domain,
		Path:     c.Path,
		Expires:  c.Expires,
		HTTPOnly: c.HTTPOnly,
		Secure:   c.Secure,
	}
	if c.SameSite != nil {
		out.SameSite = string(*c.SameSite)
	}
	return out
}

func cookieToCDP(c Cookie) network.CookieParam {
	out := network.CookieParam{
		Name:     c.Name,
		Value:    c.Value,
		Domain:   c.Domain,
		Path:     c.Path,
		Expires:  c.Expires,
		HTTPOnly: c.HTTPOnly,
		Secure:   c.Secure,
	}
	if c.SameSite != "" {
		ss := network.CookieSameSite(c.SameSite)
		out.SameSite = &ss
	}
	return out
}

func originOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host
}

func localStorageItems(ctx context.Context, f *Frame) ([]StorageItem, error) {
	var pairs [][2]string
	err := f.Evaluate(ctx, `(() => Object.entries(localStorage))()`, &pairs)
	if err != nil {
		return nil, err
	}
	items := make([]StorageItem, len(pairs))
	for i, kv := range pairs {
		items[i] = StorageItem{Name: kv[0], Value: kv[1]}
	}
	return items, nil
}

func localStorageRestoreScript(o OriginStorage) string {
	items, _ := json.Marshal(o.LocalStorage)
	origin, _ := json.Marshal(o.Origin)
	return `(() => {
	if (location.origin !== ` + string(origin) + `) return;
	const items = ` + string(items) + `;
	for (const item of items) { localStorage.setItem(item.name, item.value); }
})();`
}
