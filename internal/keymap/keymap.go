// Package keymap defines key bindings and action dispatch for the player.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	ActionQuit          Action = "quit"
	ActionPlayPause     Action = "play_pause"
	ActionStop          Action = "stop"
	ActionNextTrack     Action = "next_track"
	ActionPrevTrack     Action = "prev_track"
	ActionSeekForward   Action = "seek_forward"
	ActionSeekBack      Action = "seek_back"
	ActionToggleShuffle Action = "toggle_shuffle"
	ActionCycleRepeat   Action = "cycle_repeat"
)

// Binding maps keys to an action.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Short       string // help bar label
}

// Default contains the player key bindings in help order.
var Default = []Binding{
	{ActionPlayPause, []string{" ", "space"}, "Play/pause", "play"},
	{ActionPrevTrack, []string{"p"}, "Previous track", "prev"},
	{ActionNextTrack, []string{"n"}, "Next track", "next"},
	{ActionSeekBack, []string{"left"}, "Seek back 5s", "-5s"},
	{ActionSeekForward, []string{"right"}, "Seek forward 5s", "+5s"},
	{ActionToggleShuffle, []string{"s"}, "Toggle shuffle", "shuffle"},
	{ActionCycleRepeat, []string{"r"}, "Cycle repeat", "repeat"},
	{ActionStop, []string{"x"}, "Stop", "stop"},
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "quit"},
}

// Resolver maps key strings to actions.
type Resolver struct {
	bindings map[string]Action
	byAction map[Action][]string
}

// NewResolver creates a resolver from bindings. Later bindings win when
// two bind the same key.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		bindings: make(map[string]Action),
		byAction: make(map[Action][]string),
	}
	for _, b := range bindings {
		for _, key := range b.Keys {
			r.bindings[key] = b.Action
		}
		r.byAction[b.Action] = append(r.byAction[b.Action], b.Keys...)
	}
	return r
}

// Resolve returns the action for a key, or empty string if not bound.
func (r *Resolver) Resolve(key string) Action {
	return r.bindings[key]
}

// KeysFor returns the keys bound to an action.
func (r *Resolver) KeysFor(action Action) []string {
	return r.byAction[action]
}
