package ctrl

import (
	"context"
	"io"
	"time"

	"github.com/JMURv/zedasignal/internal/auth/captcha"
	"github.com/JMURv/zedasignal/internal/auth/jwt"
	"github.com/JMURv/zedasignal/internal/config"
	"github.com/JMURv/zedasignal/internal/notify"
	"github.com/JMURv/zedasignal/internal/repo/s3"
	"github.com/google/uuid"
)

type AppRepo interface {
	userRepo
	authRepo
	signalRepo
	planRepo
	botRepo
	requestRepo
	educationRepo
}

type AppCtrl interface {
	userCtrl
	authCtrl
	signalCtrl
	planCtrl
	botCtrl
	requestCtrl
	educationCtrl
}

type AuthService interface {
	Hash(val string) (string, error)
	ComparePasswords(hashed, pswd []byte) error
	GenPair(ctx context.Context, uid uuid.UUID) (string, string, error)
	ParseClaims(ctx context.Context, token string) (jwt.Claims, error)
	ParseRefresh(ctx context.Context, token string) (jwt.Claims, error)
	VerifyRecaptcha(ctx context.Context, token string, action captcha.Actions) (bool, error)
}

type CacheService interface {
	io.Closer
	GetToStruct(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, t time.Duration, key string, val any)
	Delete(ctx context.Context, key string)
	InvalidateKeysByPattern(ctx context.Context, pattern string)
}

type S3Service interface {
	UploadFile(ctx context.Context, req *s3.UploadFileRequest) (string, error)
}

type Sender interface {
	Send(ctx context.Context, r notify.Recipient, kind notify.Kind, data map[string]any, ch notify.Channel) error
}

type MassSender interface {
	SendMass(ctx context.Context, rs []notify.Recipient, kind notify.Kind, data map[string]any, personalise bool) (int, error)
}

type Controller struct {
	au     AuthService
	repo   AppRepo
	cache  CacheService
	s3     S3Service
	sender Sender
	mass   MassSender
	conf   config.Config
}

func New(
	au AuthService,
	repo AppRepo,
	cache CacheService,
	s3 S3Service,
	sender Sender,
	mass MassSender,
	conf config.Config,
) *Controller {
	return &Controller{
		au:     au,
		repo:   repo,
		cache:  cache,
		s3:     s3,
		sender: sender,
		mass:   mass,
		conf:   conf,
	}
}
