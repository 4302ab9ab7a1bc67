package session

import "net/url"

const (
	RootPath  = "/"
	LoginPath = "/login"
	ErrorPath = "/error404"
)

// ActionKind enumerates the workflow actions gated by the session.
type ActionKind int

const (
	ActionLogin ActionKind = iota
	ActionLogout
	ActionDashboard
	ActionSearch
	ActionRandom
	ActionAddCard
	ActionRemoveCard
	ActionAddDeck
	ActionSetDeck
	ActionPreview
	ActionChart
)

var actionNames = map[ActionKind]string{
	ActionLogin:      "login",
	ActionLogout:     "logout",
	ActionDashboard:  "dashboard",
	ActionSearch:     "search",
	ActionRandom:     "random",
	ActionAddCard:    "add_card",
	ActionRemoveCard: "remove_card",
	ActionAddDeck:    "add_deck",
	ActionSetDeck:    "set_deck",
	ActionPreview:    "preview_only",
	ActionChart:      "chart",
}

func (k ActionKind) String() string {
	if name, ok := actionNames[k]; ok {
		return name
	}
	return "unknown"
}

// Action is a workflow step. Value carries the action's argument: the
// username for login, the card name for search, random, remove and preview,
// the deck name for addDeck and setDeck.
type Action struct {
	Kind  ActionKind
	Value string
}

// Outcome tells the caller whether the action may run and where to send
// the browser afterwards. An empty Redirect means the action renders a page.
type Outcome struct {
	Allowed  bool
	Redirect string
}

// Apply maps a session and an action to the session the action leaves
// behind and its outcome. It performs no I/O. Callers run the action's side
// effects only when Outcome.Allowed is true and persist the returned state
// only after those effects succeed.
//
// A denied action returns the input state unchanged. An empty Value gates
// the action without touching the session, so a handler can check access
// before the value is known or validated.
func Apply(s State, a Action) (State, Outcome) {
	switch a.Kind {
	case ActionLogin:
		if a.Value == "" {
			return s, Outcome{Redirect: LoginPath}
		}
		next := State{Username: a.Value}
		return next, Outcome{Allowed: true, Redirect: DashboardPath(a.Value, "")}
	case ActionLogout:
		return State{}, Outcome{Allowed: true, Redirect: LoginPath}
	}

	if s.Stage() == StageAnonymous {
		return s, Outcome{Redirect: RootPath}
	}

	next := s
	switch a.Kind {
	case ActionDashboard, ActionChart:
		return next, Outcome{Allowed: true}
	case ActionSearch, ActionRandom:
		if a.Value != "" {
			next.Set(KeyCard, a.Value)
		}
		return next, Outcome{Allowed: true, Redirect: DashboardPath(s.Username, a.Value)}
	case ActionAddCard:
		if !s.Has(KeyCard) {
			return s, Outcome{Redirect: ErrorPath}
		}
		return next, Outcome{Allowed: true, Redirect: DashboardPath(s.Username, "")}
	case ActionRemoveCard:
		return next, Outcome{Allowed: true, Redirect: DashboardPath(s.Username, "")}
	case ActionAddDeck, ActionSetDeck:
		if a.Value != "" {
			next.Set(KeyDeckName, a.Value)
		}
		return next, Outcome{Allowed: true, Redirect: DashboardPath(s.Username, "")}
	case ActionPreview:
		return next, Outcome{Allowed: true, Redirect: DashboardPath(s.Username, a.Value)}
	default:
		return s, Outcome{Redirect: ErrorPath}
	}
}

// DashboardPath builds /dashboard/<username>[/<cardName>] with escaped
// path segments.
func DashboardPath(username, cardName string) string {
	p := "/dashboard/" + url.PathEscape(username)
	if cardName != "" {
		p += "/" + url.PathEscape(cardName)
	}
	return p
}
