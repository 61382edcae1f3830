package systems

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gonewx/confetti/pkg/config"
)

// ScrollTriggerPluginName is the registry name of the scroll trigger plugin.
const ScrollTriggerPluginName = "scrolltrigger"

// TriggerPoint is one side of a scroll trigger, e.g. "top 80%": the element's
// top edge meets the line 80% down the viewport.
type TriggerPoint struct {
	Element  float64 // 元素上的位置，0=top 0.5=center 1=bottom
	Viewport float64 // 视口上的位置，0-1
}

// ParseTriggerPoint parses "<element> <viewport>" where each side is a
// keyword (top, center, bottom) or a percentage.
func ParseTriggerPoint(s string) (TriggerPoint, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return TriggerPoint{}, fmt.Errorf("trigger point %q: want \"<element> <viewport>\"", s)
	}
	elem, err := parseTriggerEdge(fields[0])
	if err != nil {
		return TriggerPoint{}, fmt.Errorf("trigger point %q: %w", s, err)
	}
	vp, err := parseTriggerEdge(fields[1])
	if err != nil {
		return TriggerPoint{}, fmt.Errorf("trigger point %q: %w", s, err)
	}
	return TriggerPoint{Element: elem, Viewport: vp}, nil
}

func parseTriggerEdge(s string) (float64, error) {
	switch s {
	case "top":
		return 0, nil
	case "center":
		return 0.5, nil
	case "bottom":
		return 1, nil
	}
	if !strings.HasSuffix(s, "%") {
		return 0, fmt.Errorf("invalid edge %q", s)
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid percentage %q: %w", s, err)
	}
	return v / 100, nil
}

// ScrollOffset returns the scroll position at which the point is reached for
// an element spanning [top, bottom] in page coordinates.
func (p TriggerPoint) ScrollOffset(top, bottom, viewportHeight float64) float64 {
	return top + (bottom-top)*p.Element - viewportHeight*p.Viewport
}

// ToggleAction is what a tween does on a trigger callback.
type ToggleAction int

const (
	ActionNone ToggleAction = iota
	ActionPlay
	ActionReverse
	ActionRestart
	ActionReset
)

// ToggleActions holds the actions for onEnter, onLeave, onEnterBack, onLeaveBack.
type ToggleActions struct {
	Enter     ToggleAction
	Leave     ToggleAction
	EnterBack ToggleAction
	LeaveBack ToggleAction
}

// ParseToggleActions parses four space-separated actions, e.g. "play none none reverse".
func ParseToggleActions(s string) (ToggleActions, error) {
	fields := strings.Fields(s)
	if len(fields) != 4 {
		return ToggleActions{}, fmt.Errorf("toggle actions %q: want 4 actions, got %d", s, len(fields))
	}
	var acts [4]ToggleAction
	for i, f := range fields {
		switch f {
		case "none":
			acts[i] = ActionNone
		case "play":
			acts[i] = ActionPlay
		case "reverse":
			acts[i] = ActionReverse
		case "restart":
			acts[i] = ActionRestart
		case "reset":
			acts[i] = ActionReset
		default:
			return ToggleActions{}, fmt.Errorf("toggle actions %q: unknown action %q", s, f)
		}
	}
	return ToggleActions{Enter: acts[0], Leave: acts[1], EnterBack: acts[2], LeaveBack: acts[3]}, nil
}

// ScrollTriggerPlugin parses the trigger layout once at install time.
// Install it with game.InstallPlugins before building a RevealSystem.
// The registry inits a plugin name only once per process, so share
// DefaultScrollTrigger instead of installing fresh instances.
type ScrollTriggerPlugin struct {
	startSpec   string
	endSpec     string
	actionsSpec string

	Start   TriggerPoint
	End     TriggerPoint
	Actions ToggleActions
}

// NewScrollTriggerPlugin creates the plugin with the default "top 80%" /
// "bottom 20%" / "play none none reverse" layout.
func NewScrollTriggerPlugin() *ScrollTriggerPlugin {
	return &ScrollTriggerPlugin{
		startSpec:   config.RevealTriggerStart,
		endSpec:     config.RevealTriggerEnd,
		actionsSpec: config.RevealToggleActions,
	}
}

var defaultScrollTrigger = NewScrollTriggerPlugin()

// DefaultScrollTrigger returns the process-wide scroll trigger plugin.
func DefaultScrollTrigger() *ScrollTriggerPlugin {
	return defaultScrollTrigger
}

// Name implements game.Plugin.
func (p *ScrollTriggerPlugin) Name() string {
	return ScrollTriggerPluginName
}

// Init implements game.Plugin.
func (p *ScrollTriggerPlugin) Init() error {
	start, err := ParseTriggerPoint(p.startSpec)
	if err != nil {
		return fmt.Errorf("scroll trigger start: %w", err)
	}
	end, err := ParseTriggerPoint(p.endSpec)
	if err != nil {
		return fmt.Errorf("scroll trigger end: %w", err)
	}
	actions, err := ParseToggleActions(p.actionsSpec)
	if err != nil {
		return err
	}
	p.Start, p.End, p.Actions = start, end, actions
	return nil
}
