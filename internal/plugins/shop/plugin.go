package shop

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/noteboard/internal/keymap"
	"github.com/marcus/noteboard/internal/mouse"
	"github.com/marcus/noteboard/internal/msg"
	"github.com/marcus/noteboard/internal/plugin"
	"github.com/marcus/noteboard/internal/shop"
	"github.com/marcus/noteboard/internal/styles"
)

const (
	pluginID   = "shop"
	pluginName = "shop"
	pluginIcon = "S"

	toastDuration = 1500 * time.Millisecond
)

// item is a selectable tile: a category or a brand.
type item struct {
	Name  string
	Icon  string
	Brand bool
}

// Plugin implements the storefront home screen.
type Plugin struct {
	ctx     *plugin.Context
	focused bool

	home *shop.Home

	search    textinput.Model
	searching bool

	cursor int

	// Carousel auto-advance generation
	bannerSeq uint64

	width  int
	height int

	mouseHandler *mouse.Handler
}

// New creates a new storefront plugin.
func New() *Plugin {
	return &Plugin{mouseHandler: mouse.NewHandler()}
}

// ID returns the plugin identifier.
func (p *Plugin) ID() string { return pluginID }

// Name returns the plugin display name.
func (p *Plugin) Name() string { return pluginName }

// Icon returns the plugin icon character.
func (p *Plugin) Icon() string { return pluginIcon }

// Home exposes the storefront state.
func (p *Plugin) Home() *shop.Home { return p.home }

// Init initializes the plugin with context. Favorites and the selected tab
// survive re-init.
func (p *Plugin) Init(ctx *plugin.Context) error {
	p.ctx = ctx
	if p.home == nil {
		p.home = shop.NewHome(shop.DefaultCatalog())
	}

	ti := textinput.New()
	ti.Placeholder = "Search categories and brands"
	ti.Prompt = "/ "
	ti.CharLimit = 60
	ti.PromptStyle = styles.ListCursor
	ti.PlaceholderStyle = styles.Muted
	ti.SetValue(p.home.Query())
	p.search = ti
	p.searching = false
	p.clampCursor()
	return nil
}

// Start kicks off the carousel.
func (p *Plugin) Start() tea.Cmd {
	return p.scheduleBanner()
}

// Stop cleans up plugin resources.
func (p *Plugin) Stop() {
	p.bannerSeq++
}

func (p *Plugin) bannerInterval() time.Duration {
	if p.ctx == nil || p.ctx.Config == nil {
		return 0
	}
	return p.ctx.Config.Plugins.Shop.BannerInterval
}

// scheduleBanner starts a new auto-advance generation. A zero interval
// turns auto-advance off.
func (p *Plugin) scheduleBanner() tea.Cmd {
	p.bannerSeq++
	interval := p.bannerInterval()
	if interval <= 0 {
		return nil
	}
	seq, epoch := p.bannerSeq, p.ctx.Epoch
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return bannerTickMsg{Seq: seq, Epoch: epoch}
	})
}

func (p *Plugin) keys() *keymap.Registry {
	if p.ctx != nil && p.ctx.Keymap != nil {
		return p.ctx.Keymap
	}
	return keymap.NewRegistry()
}

// Update handles messages.
func (p *Plugin) Update(m tea.Msg) (plugin.Plugin, tea.Cmd) {
	switch m := m.(type) {
	case tea.WindowSizeMsg:
		p.width = m.Width
		p.height = m.Height

	case tea.KeyMsg:
		return p, p.handleKey(m)

	case tea.MouseMsg:
		return p, p.handleMouse(m)

	case bannerTickMsg:
		if plugin.IsStale(p.ctx, m) || m.Seq != p.bannerSeq {
			return p, nil
		}
		p.home.NextBanner()
		return p, p.scheduleBanner()
	}
	return p, nil
}

func (p *Plugin) handleKey(m tea.KeyMsg) tea.Cmd {
	km := p.keys()
	key := m.String()

	if p.searching {
		switch km.Lookup(key, "shop-search") {
		case "clear-search":
			p.search.SetValue("")
			p.setQuery("")
			p.blurSearch()
			return nil
		case "apply-search":
			p.blurSearch()
			return nil
		}
		var cmd tea.Cmd
		p.search, cmd = p.search.Update(m)
		p.setQuery(p.search.Value())
		return cmd
	}

	switch km.Lookup(key, "shop") {
	case "search":
		p.searching = true
		return p.search.Focus()
	case "prev-banner":
		p.home.PrevBanner()
		return p.scheduleBanner()
	case "next-banner":
		p.home.NextBanner()
		return p.scheduleBanner()
	case "toggle-favorite":
		return p.toggleFavorite()
	case "toggle-compare":
		return p.toggleCompare()
	case "next-tab":
		p.home.NextTab()
	case "prev-tab":
		p.home.PrevTab()
	case "cursor-down":
		p.cursor++
		p.clampCursor()
	case "cursor-up":
		p.cursor--
		p.clampCursor()
	case "back":
		if p.home.Query() != "" {
			p.search.SetValue("")
			p.setQuery("")
		}
	}
	return nil
}

func (p *Plugin) blurSearch() {
	p.searching = false
	p.search.Blur()
}

func (p *Plugin) setQuery(q string) {
	p.home.SetQuery(q)
	p.clampCursor()
}

// items returns the visible tiles, categories first.
func (p *Plugin) items() []item {
	cats, brands := p.home.Visible()
	out := make([]item, 0, len(cats)+len(brands))
	for _, c := range cats {
		out = append(out, item{Name: c.Name, Icon: c.Icon})
	}
	for _, b := range brands {
		out = append(out, item{Name: b.Name, Brand: true})
	}
	return out
}

func (p *Plugin) clampCursor() {
	n := len(p.items())
	if p.cursor >= n {
		p.cursor = n - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

func (p *Plugin) cursorItem() (item, bool) {
	items := p.items()
	if p.cursor < 0 || p.cursor >= len(items) {
		return item{}, false
	}
	return items[p.cursor], true
}

func (p *Plugin) toggleFavorite() tea.Cmd {
	it, ok := p.cursorItem()
	if !ok {
		return nil
	}
	if p.home.ToggleFavorite(it.Name) {
		return msg.ShowToast("Added "+it.Name+" to favorites", toastDuration)
	}
	return msg.ShowToast("Removed "+it.Name+" from favorites", toastDuration)
}

func (p *Plugin) toggleCompare() tea.Cmd {
	it, ok := p.cursorItem()
	if !ok {
		return nil
	}
	if p.home.ToggleCompare(it.Name) {
		return msg.ShowToast("Comparing "+it.Name, toastDuration)
	}
	return msg.ShowToast("Stopped comparing "+it.Name, toastDuration)
}

// IsFocused returns whether the plugin is focused.
func (p *Plugin) IsFocused() bool { return p.focused }

// SetFocused sets the focus state.
func (p *Plugin) SetFocused(f bool) {
	p.focused = f
	if !f && p.searching {
		p.blurSearch()
	}
}

// Commands returns the available commands.
func (p *Plugin) Commands() []plugin.Command {
	if p.searching {
		return []plugin.Command{
			{ID: "apply-search", Name: "Done", Description: "Keep the filter", Category: plugin.CategoryNavigation, Context: "shop-search", Priority: 1},
			{ID: "clear-search", Name: "Clear", Description: "Clear the filter", Category: plugin.CategoryEdit, Context: "shop-search", Priority: 2},
		}
	}
	return []plugin.Command{
		{ID: "search", Name: "Search", Description: "Filter categories and brands", Category: plugin.CategoryNavigation, Context: "shop", Priority: 1},
		{ID: "next-banner", Name: "Banner", Description: "Next promotion", Category: plugin.CategoryNavigation, Context: "shop", Priority: 2},
		{ID: "toggle-favorite", Name: "Fav", Description: "Toggle favorite", Category: plugin.CategoryActions, Context: "shop", Priority: 3},
		{ID: "toggle-compare", Name: "Compare", Description: "Toggle compare", Category: plugin.CategoryActions, Context: "shop", Priority: 4},
		{ID: "next-tab", Name: "Tab", Description: "Next section", Category: plugin.CategoryNavigation, Context: "shop", Priority: 5},
	}
}

// FocusContext returns the current focus context.
func (p *Plugin) FocusContext() string {
	if p.searching {
		return "shop-search"
	}
	return "shop"
}

// ConsumesTextInput reports whether the search field is active.
func (p *Plugin) ConsumesTextInput() bool { return p.searching }
