package shop

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/marcus/noteboard/internal/shop"
	"github.com/marcus/noteboard/internal/styles"
	"github.com/marcus/noteboard/internal/ui"
)

// Hit region IDs
const (
	regionFavorites  = "favorites"
	regionCompare    = "compare"
	regionSearch     = "search"
	regionBanner     = "banner"
	regionBannerPrev = "banner-prev"
	regionBannerNext = "banner-next"
	regionBannerDot  = "banner-dot"
	regionItem       = "item"
	regionNav        = "nav"
)

// Layout rows
const (
	searchRow  = 1
	bannerRow  = 3
	bannerRows = 3
	dotsRow    = bannerRow + bannerRows
	sectionTop = dotsRow + 2

	maxBannerWidth = 60
)

// View renders the plugin.
func (p *Plugin) View(width, height int) string {
	p.width = width
	p.height = height
	p.mouseHandler.Clear()

	lines := []string{p.renderTopBar(), p.renderSearch(), ""}
	lines = append(lines, p.renderBanner()...)
	lines = append(lines, p.renderDots(), "")

	switch p.home.Tab() {
	case shop.NavHome:
		lines = append(lines, p.renderFeatured(len(lines))...)
	case shop.NavCategories:
		lines = append(lines, p.renderCategoryList(len(lines))...)
	case shop.NavCart:
		lines = append(lines, styles.Title.Render("Cart"), styles.Muted.Render("Your cart is empty."))
	case shop.NavAccount:
		lines = append(lines, styles.Title.Render("Account"),
			styles.Body.Render(fmt.Sprintf("Favorites: %d", p.home.FavoriteCount())),
			styles.Body.Render(fmt.Sprintf("Comparing: %d", p.home.CompareCount())))
	}

	// Bottom navigation is pinned to the last row.
	body := height - 1
	if len(lines) > body {
		lines = lines[:max(body, 0)]
	}
	for len(lines) < body {
		lines = append(lines, "")
	}
	lines = append(lines, p.renderNav(height-1))

	content := strings.Join(lines, "\n")
	return lipgloss.NewStyle().Width(width).Height(height).MaxHeight(height).Render(content)
}

func (p *Plugin) renderTopBar() string {
	wordmark := styles.ShopWordmark.Render("mart") + styles.Logo.Render("fury")

	fav := styles.Favorite.Render("♥") + fmt.Sprintf(" %d", p.home.FavoriteCount())
	cmp := "Compare " + styles.Badge.Render(fmt.Sprintf(" %d ", p.home.CompareCount()))
	right := fav + "  " + cmp

	gap := p.width - lipgloss.Width(wordmark) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	favX := lipgloss.Width(wordmark) + gap
	cmpX := favX + lipgloss.Width(fav) + 2
	p.mouseHandler.HitMap.AddRect(regionFavorites, favX, 0, lipgloss.Width(fav), 1, nil)
	p.mouseHandler.HitMap.AddRect(regionCompare, cmpX, 0, lipgloss.Width(cmp), 1, nil)

	return wordmark + strings.Repeat(" ", gap) + right
}

func (p *Plugin) renderSearch() string {
	p.search.Width = p.width - lipgloss.Width(p.search.Prompt) - 1
	p.mouseHandler.HitMap.AddRect(regionSearch, 0, searchRow, p.width, 1, nil)
	return p.search.View()
}

func (p *Plugin) bannerWidth() int {
	w := p.width
	if w > maxBannerWidth {
		w = maxBannerWidth
	}
	return w
}

func (p *Plugin) renderBanner() []string {
	b, ok := p.home.CurrentBanner()
	if !ok {
		return make([]string, bannerRows)
	}
	w := p.bannerWidth()
	inner := w - 6
	text := styles.Title.Render(ui.Truncate(b.Title, inner))
	if room := inner - lipgloss.Width(b.Title) - 3; room > 0 {
		text += styles.Muted.Render(" · " + ui.Truncate(b.Subtitle, room))
	}
	box := styles.ShopBanner.Width(w - 2).Render(text)
	p.mouseHandler.HitMap.AddRect(regionBanner, 0, bannerRow, w, bannerRows, nil)

	lines := strings.Split(box, "\n")
	for len(lines) < bannerRows {
		lines = append(lines, "")
	}
	return lines[:bannerRows]
}

// renderDots draws "‹ ● ○ ○ ›" with a hit region per glyph.
func (p *Plugin) renderDots() string {
	n := len(p.home.Catalog.Banners)
	if n == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(styles.Muted.Render("‹"))
	p.mouseHandler.HitMap.AddRect(regionBannerPrev, 0, dotsRow, 1, 1, nil)
	for i := 0; i < n; i++ {
		sb.WriteString(" ")
		if i == p.home.Banner() {
			sb.WriteString(styles.ShopWordmark.Render("●"))
		} else {
			sb.WriteString(styles.Subtle.Render("○"))
		}
		p.mouseHandler.HitMap.AddRect(regionBannerDot, 2+2*i, dotsRow, 1, 1, i)
	}
	sb.WriteString(" " + styles.Muted.Render("›"))
	p.mouseHandler.HitMap.AddRect(regionBannerNext, 2+2*n, dotsRow, 1, 1, nil)
	return sb.String()
}

func (p *Plugin) columns() int {
	if p.width < 60 {
		return 2
	}
	return 4
}

// renderFeatured draws the category grid and brand row starting at screen
// row top.
func (p *Plugin) renderFeatured(top int) []string {
	items := p.items()
	var cats, brands []int
	for i, it := range items {
		if it.Brand {
			brands = append(brands, i)
		} else {
			cats = append(cats, i)
		}
	}

	if len(items) == 0 {
		return []string{styles.Muted.Render(fmt.Sprintf("No results for %q", p.home.Query()))}
	}

	var lines []string
	if len(cats) > 0 {
		lines = append(lines, styles.Title.Render("Featured Categories"))
		lines = append(lines, p.renderGrid(items, cats, top+len(lines))...)
		lines = append(lines, "")
	}
	if len(brands) > 0 {
		lines = append(lines, styles.Title.Render("Featured Brands"))
		lines = append(lines, p.renderGrid(items, brands, top+len(lines))...)
	}
	return lines
}

// renderGrid lays out the given item indexes in columns from screen row top.
func (p *Plugin) renderGrid(items []item, idx []int, top int) []string {
	cols := p.columns()
	colW := p.width / cols
	if colW < 4 {
		colW = 4
	}

	var lines []string
	for start := 0; start < len(idx); start += cols {
		var row strings.Builder
		y := top + len(lines)
		for c := 0; c < cols && start+c < len(idx); c++ {
			i := idx[start+c]
			row.WriteString(p.renderTile(items[i], i, colW))
			p.mouseHandler.HitMap.AddRect(regionItem, c*colW, y, colW, 1, i)
		}
		lines = append(lines, row.String())
	}
	return lines
}

func (p *Plugin) renderTile(it item, i, colW int) string {
	label := it.Name
	if it.Icon != "" {
		label = it.Icon + " " + label
	}
	if p.home.IsFavorite(it.Name) {
		label += " ♥"
	}
	text := ui.PadRight(label, colW-1)

	style := styles.ListItemNormal
	if i == p.cursor {
		style = styles.ListItemSelected
	}
	return style.Render(text) + " "
}

// renderCategoryList is the Categories tab: one category per row.
func (p *Plugin) renderCategoryList(top int) []string {
	lines := []string{styles.Title.Render("All Categories")}
	items := p.items()
	for i, it := range items {
		if it.Brand {
			continue
		}
		lines = append(lines, p.renderTile(it, i, p.width-1))
		p.mouseHandler.HitMap.AddRect(regionItem, 0, top+len(lines)-1, p.width, 1, i)
	}
	return lines
}

func (p *Plugin) renderNav(y int) string {
	var sb strings.Builder
	x := 0
	for _, t := range shop.NavTabs {
		label := "  " + t.String() + "  "
		style := styles.NavInactive
		if t == p.home.Tab() {
			style = styles.NavActive
		}
		sb.WriteString(style.Render(label))
		w := lipgloss.Width(label)
		p.mouseHandler.HitMap.AddRect(regionNav, x, y, w, 1, t)
		x += w
	}
	return sb.String()
}
