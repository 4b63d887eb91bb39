package app

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/marcus/noteboard/internal/styles"
)

// introFrame is the animation step.
const introFrame = 16 * time.Millisecond

// IntroModel slides the header wordmark in letter by letter.
type IntroModel struct {
	Active  bool
	Done    bool
	Letters []*IntroLetter

	elapsed time.Duration
}

// IntroLetter is one animated character of the wordmark.
type IntroLetter struct {
	Char     rune
	TargetX  float64
	CurrentX float64

	// Letters overshoot their slot, then settle back.
	ReachedTarget bool
	OvershootMax  float64

	EndColor     styles.RGB
	CurrentColor styles.RGB

	Delay time.Duration
}

func hexToRGB(hex string) styles.RGB {
	hex = strings.TrimPrefix(hex, "#")
	var r, g, b uint8
	fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b)
	return styles.RGB{R: float64(r), G: float64(g), B: float64(b)}
}

func toLipgloss(c styles.RGB) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", int(c.R), int(c.G), int(c.B)))
}

// NewIntroModel prepares the animation for text. Each letter ends on the
// tab gradient.
func NewIntroModel(text string) IntroModel {
	runes := []rune(text)
	letters := make([]*IntroLetter, len(runes))

	startColors := []string{"#EF4444", "#3B82F6", "#10B981", "#8B5CF6", "#EC4899", "#06B6D4", "#F97316"}
	grad := styles.TabColors

	for i, char := range runes {
		t := 0.0
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}
		start := hexToRGB(startColors[i%len(startColors)])
		letters[i] = &IntroLetter{
			Char:         char,
			CurrentX:     -20.0 - float64(i)*10.0,
			TargetX:      float64(i),
			OvershootMax: float64(i) + 0.5 + float64(i)*0.1,
			EndColor:     gradientAt(grad, t),
			CurrentColor: start,
			Delay:        time.Duration(i) * 80 * time.Millisecond,
		}
	}

	return IntroModel{Active: true, Letters: letters}
}

// gradientAt samples colors at t in [0, 1].
func gradientAt(colors []styles.RGB, t float64) styles.RGB {
	switch len(colors) {
	case 0:
		return styles.RGB{R: 200, G: 200, B: 200}
	case 1:
		return colors[0]
	}
	scaled := t * float64(len(colors)-1)
	idx := int(scaled)
	if idx >= len(colors)-1 {
		idx = len(colors) - 2
	}
	f := scaled - float64(idx)
	a, b := colors[idx], colors[idx+1]
	return styles.RGB{R: a.R + f*(b.R-a.R), G: a.G + f*(b.G-a.G), B: a.B + f*(b.B-a.B)}
}

// Update advances the animation by dt.
func (m *IntroModel) Update(dt time.Duration) {
	if !m.Active || m.Done {
		return
	}
	m.elapsed += dt

	allSettled := true
	for _, l := range m.Letters {
		if m.elapsed < l.Delay {
			allSettled = false
			continue
		}

		var target, speed float64
		if !l.ReachedTarget {
			target = l.OvershootMax
			speed = 30.0
			if l.CurrentX >= l.OvershootMax-0.1 {
				l.ReachedTarget = true
			}
		} else {
			target = l.TargetX
			speed = 5.0
		}

		dist := target - l.CurrentX
		move := dist * 6.0 * dt.Seconds()
		if math.Abs(move) > math.Abs(dist) {
			move = dist
		}
		minMove := speed * dt.Seconds()
		if math.Abs(dist) > 0.1 && math.Abs(move) < minMove {
			move = math.Copysign(minMove, dist)
			if math.Abs(move) > math.Abs(dist) {
				move = dist
			}
		}
		l.CurrentX += move

		k := math.Min(1, 3.0*dt.Seconds())
		l.CurrentColor.R += (l.EndColor.R - l.CurrentColor.R) * k
		l.CurrentColor.G += (l.EndColor.G - l.CurrentColor.G) * k
		l.CurrentColor.B += (l.EndColor.B - l.CurrentColor.B) * k

		if !l.ReachedTarget || math.Abs(l.TargetX-l.CurrentX) >= 0.1 || math.Abs(l.EndColor.R-l.CurrentColor.R) >= 1.0 {
			allSettled = false
		}
	}

	if allSettled {
		for _, l := range m.Letters {
			l.CurrentX = l.TargetX
			l.CurrentColor = l.EndColor
		}
		m.Done = true
	}
}

// View renders the wordmark at its current animation state. Letters still
// off to the left are blank.
func (m IntroModel) View() string {
	length := len(m.Letters)
	buf := make([]string, length)
	for i := range buf {
		buf[i] = " "
	}
	for _, l := range m.Letters {
		x := int(math.Round(l.CurrentX))
		if x >= 0 && x < length {
			buf[x] = lipgloss.NewStyle().Foreground(toLipgloss(l.CurrentColor)).Bold(true).Render(string(l.Char))
		}
	}
	return strings.Join(buf, "")
}

// IntroTickMsg is sent to update the animation frame.
type IntroTickMsg time.Time

// IntroTick schedules the next animation frame.
func IntroTick() tea.Cmd {
	return tea.Tick(introFrame, func(t time.Time) tea.Msg {
		return IntroTickMsg(t)
	})
}
