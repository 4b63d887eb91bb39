package shop

// NavTab is a bottom navigation destination.
type NavTab int

const (
	NavHome NavTab = iota
	NavCategories
	NavCart
	NavAccount
)

// NavTabs lists the bottom navigation in display order.
var NavTabs = []NavTab{NavHome, NavCategories, NavCart, NavAccount}

func (t NavTab) String() string {
	switch t {
	case NavHome:
		return "Home"
	case NavCategories:
		return "Categories"
	case NavCart:
		return "Cart"
	case NavAccount:
		return "Account"
	default:
		return "Unknown"
	}
}

// DefaultCompareCount is the number shown on the compare badge.
const DefaultCompareCount = 2

// Home is the storefront home screen state.
type Home struct {
	Catalog Catalog

	banner    int
	tab       NavTab
	query     string
	favorites map[string]bool
	compare   map[string]bool
	baseCount int
}

// NewHome creates the home screen over catalog.
func NewHome(catalog Catalog) *Home {
	return &Home{
		Catalog:   catalog,
		favorites: make(map[string]bool),
		compare:   make(map[string]bool),
		baseCount: DefaultCompareCount,
	}
}

// Banner returns the index of the visible banner.
func (h *Home) Banner() int { return h.banner }

// CurrentBanner returns the visible banner.
func (h *Home) CurrentBanner() (Banner, bool) {
	if len(h.Catalog.Banners) == 0 {
		return Banner{}, false
	}
	return h.Catalog.Banners[h.banner], true
}

// NextBanner advances the carousel, wrapping to the first slide.
func (h *Home) NextBanner() {
	if n := len(h.Catalog.Banners); n > 0 {
		h.banner = (h.banner + 1) % n
	}
}

// PrevBanner moves the carousel back, wrapping to the last slide.
func (h *Home) PrevBanner() {
	if n := len(h.Catalog.Banners); n > 0 {
		h.banner = (h.banner - 1 + n) % n
	}
}

// SetBanner jumps to slide i; out-of-range values are ignored.
func (h *Home) SetBanner(i int) bool {
	if i < 0 || i >= len(h.Catalog.Banners) {
		return false
	}
	h.banner = i
	return true
}

// Tab returns the selected bottom navigation tab.
func (h *Home) Tab() NavTab { return h.tab }

// SelectTab selects a bottom navigation tab.
func (h *Home) SelectTab(t NavTab) {
	if t >= NavHome && t <= NavAccount {
		h.tab = t
	}
}

// NextTab cycles the bottom navigation forward.
func (h *Home) NextTab() {
	h.tab = NavTabs[(int(h.tab)+1)%len(NavTabs)]
}

// PrevTab cycles the bottom navigation backward.
func (h *Home) PrevTab() {
	h.tab = NavTabs[(int(h.tab)-1+len(NavTabs))%len(NavTabs)]
}

// Query returns the active search query.
func (h *Home) Query() string { return h.query }

// SetQuery changes the search query.
func (h *Home) SetQuery(q string) { h.query = q }

// Visible returns the categories and brands matching the current query.
func (h *Home) Visible() ([]Category, []Brand) {
	return h.Catalog.Filter(h.query)
}

// ToggleFavorite flips the favorite mark on name and returns the new value.
func (h *Home) ToggleFavorite(name string) bool {
	h.favorites[name] = !h.favorites[name]
	if !h.favorites[name] {
		delete(h.favorites, name)
	}
	return h.favorites[name]
}

// IsFavorite reports whether name is marked.
func (h *Home) IsFavorite(name string) bool { return h.favorites[name] }

// FavoriteCount is the number of marked items.
func (h *Home) FavoriteCount() int { return len(h.favorites) }

// ToggleCompare adds or removes name from the compare list.
func (h *Home) ToggleCompare(name string) bool {
	h.compare[name] = !h.compare[name]
	if !h.compare[name] {
		delete(h.compare, name)
	}
	return h.compare[name]
}

// CompareCount is the value of the compare badge.
func (h *Home) CompareCount() int { return h.baseCount + len(h.compare) }
