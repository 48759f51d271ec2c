package access

import md "github.com/JMURv/zedasignal/internal/models"

type Capability string

const (
	ReadSignals     Capability = "signals:read"
	PublishSignals  Capability = "signals:publish"
	ManagePlans     Capability = "plans:manage"
	ManageUsers     Capability = "users:manage"
	ManageBots      Capability = "bots:manage"
	ManageRequests  Capability = "requests:manage"
	ManageEducation Capability = "education:manage"
	ReadEducation   Capability = "education:read"
	SubmitRequests  Capability = "requests:submit"
	ReadDashboard   Capability = "dashboard:read"
)

// Subject is what a capability check needs to know about the caller.
type Subject struct {
	Type                  md.UserType
	IsActive              bool
	IsVerified            bool
	HasActiveSubscription bool
}

type rule func(s Subject) bool

func admin(s Subject) bool {
	return s.Type == md.AdminUser
}

func authenticated(Subject) bool {
	return true
}

func subscriber(s Subject) bool {
	return admin(s) || s.HasActiveSubscription
}

var table = map[Capability]rule{
	ReadSignals:     subscriber,
	PublishSignals:  admin,
	ManagePlans:     admin,
	ManageUsers:     admin,
	ManageBots:      admin,
	ManageRequests:  admin,
	ManageEducation: admin,
	ReadDashboard:   admin,
	ReadEducation:   authenticated,
	SubmitRequests:  authenticated,
}

// Can reports whether s holds capability c. Inactive subjects and unknown
// capabilities are always denied.
func Can(s Subject, c Capability) bool {
	if !s.IsActive {
		return false
	}

	r, ok := table[c]
	if !ok {
		return false
	}
	return r(s)
}

// NeedsSubscription reports whether c is only granted through an active
// subscription for non-admin subjects.
func NeedsSubscription(c Capability) bool {
	return c == ReadSignals
}
