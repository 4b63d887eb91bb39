package shop

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/noteboard/internal/mouse"
	"github.com/marcus/noteboard/internal/msg"
	"github.com/marcus/noteboard/internal/shop"
)

// handleMouse processes clicks on the storefront.
func (p *Plugin) handleMouse(m tea.MouseMsg) tea.Cmd {
	action := p.mouseHandler.HandleMouse(m)

	switch action.Type {
	case mouse.ActionScrollUp:
		p.cursor--
		p.clampCursor()
		return nil
	case mouse.ActionScrollDown:
		p.cursor++
		p.clampCursor()
		return nil
	case mouse.ActionClick, mouse.ActionDoubleClick:
	default:
		return nil
	}
	if action.Region == nil {
		return nil
	}

	switch action.Region.ID {
	case regionSearch:
		p.searching = true
		return p.search.Focus()

	case regionFavorites:
		return msg.ShowToast(fmt.Sprintf("%d favorites", p.home.FavoriteCount()), toastDuration)

	case regionCompare:
		return msg.ShowToast(fmt.Sprintf("Comparing %d items", p.home.CompareCount()), toastDuration)

	case regionBanner, regionBannerNext:
		p.home.NextBanner()
		return p.scheduleBanner()

	case regionBannerPrev:
		p.home.PrevBanner()
		return p.scheduleBanner()

	case regionBannerDot:
		if i, ok := action.Region.Data.(int); ok && p.home.SetBanner(i) {
			return p.scheduleBanner()
		}

	case regionItem:
		i, ok := action.Region.Data.(int)
		if !ok {
			return nil
		}
		p.cursor = i
		if p.searching {
			p.blurSearch()
		}
		if action.Type == mouse.ActionDoubleClick {
			return p.toggleFavorite()
		}

	case regionNav:
		if t, ok := action.Region.Data.(shop.NavTab); ok {
			p.home.SelectTab(t)
		}
	}
	return nil
}
