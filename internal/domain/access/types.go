package access

// Principal is the identity attached to one request. It is computed
// fresh per request from the session token and the is_admin lookup,
// and never cached across requests.
type Principal struct {
	UserID        string
	Authenticated bool
	Admin         bool
}

func Anonymous() Principal {
	return Principal{}
}

func Authenticated(userID string, admin bool) Principal {
	return Principal{UserID: userID, Authenticated: true, Admin: admin}
}

type Action string

const (
	ActionAllow    Action = "allow"
	ActionRedirect Action = "redirect"
)

// Decision is the gate's verdict for one request. Location is only set
// for redirects.
type Decision struct {
	Action   Action
	Location string
}

func allow() Decision {
	return Decision{Action: ActionAllow}
}

func redirect(location string) Decision {
	return Decision{Action: ActionRedirect, Location: location}
}
