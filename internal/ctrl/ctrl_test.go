package ctrl

import (
	"testing"

	"github.com/JMURv/zedasignal/internal/config"
	"github.com/JMURv/zedasignal/tests/mocks"
	"go.uber.org/mock/gomock"
)

type testDeps struct {
	auth   *mocks.MockAuthService
	repo   *mocks.MockAppRepo
	cache  *mocks.MockCacheService
	s3     *mocks.MockS3Service
	sender *mocks.MockSender
	mass   *mocks.MockMassSender
}

func newTestCtrl(t *testing.T) (*Controller, *testDeps) {
	t.Helper()
	ctrlMock := gomock.NewController(t)

	d := &testDeps{
		auth:   mocks.NewMockAuthService(ctrlMock),
		repo:   mocks.NewMockAppRepo(ctrlMock),
		cache:  mocks.NewMockCacheService(ctrlMock),
		s3:     mocks.NewMockS3Service(ctrlMock),
		sender: mocks.NewMockSender(ctrlMock),
		mass:   mocks.NewMockMassSender(ctrlMock),
	}

	conf := config.Config{
		DomainName:   "https://zedasignal.com",
		SupportEmail: "support@zedasignal.com",
	}
	conf.Auth.ResetTokenHours = 24

	d.cache.EXPECT().InvalidateKeysByPattern(gomock.Any(), gomock.Any()).AnyTimes()
	return New(d.auth, d.repo, d.cache, d.s3, d.sender, d.mass, conf), d
}
