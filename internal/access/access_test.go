package access

import (
	"testing"

	md "github.com/JMURv/zedasignal/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestCan(t *testing.T) {
	adminS := Subject{Type: md.AdminUser, IsActive: true}
	subscriberS := Subject{Type: md.RegularUser, IsActive: true, HasActiveSubscription: true}
	userS := Subject{Type: md.RegularUser, IsActive: true}
	inactiveAdmin := Subject{Type: md.AdminUser}

	tests := []struct {
		name string
		s    Subject
		c    Capability
		want bool
	}{
		{name: "AdminPublishes", s: adminS, c: PublishSignals, want: true},
		{name: "AdminReadsSignals", s: adminS, c: ReadSignals, want: true},
		{name: "SubscriberReadsSignals", s: subscriberS, c: ReadSignals, want: true},
		{name: "SubscriberCannotPublish", s: subscriberS, c: PublishSignals},
		{name: "UserCannotReadSignals", s: userS, c: ReadSignals},
		{name: "UserReadsEducation", s: userS, c: ReadEducation, want: true},
		{name: "UserSubmitsRequests", s: userS, c: SubmitRequests, want: true},
		{name: "UserCannotManagePlans", s: userS, c: ManagePlans},
		{name: "UserCannotSeeDashboard", s: userS, c: ReadDashboard},
		{name: "InactiveAdminDenied", s: inactiveAdmin, c: PublishSignals},
		{name: "UnknownCapability", s: adminS, c: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Can(tt.s, tt.c))
		})
	}
}

func TestNeedsSubscription(t *testing.T) {
	assert.True(t, NeedsSubscription(ReadSignals))
	assert.False(t, NeedsSubscription(PublishSignals))
}
