package config

import "time"

type ctxKey string

const (
	UidKey ctxKey = "uid"
	IpKey  ctxKey = "ip"
	UaKey  ctxKey = "ua"
)

const ErrorSpanTag = "error"

const (
	DefaultPage      = 1
	DefaultSize      = 30
	MaxSize          = 50
	DefaultCacheTime = time.Hour
	MinCacheTime     = time.Minute * 5
	MaxMemory        = 10 << 20 // 10 MB
)

const (
	AccessCookieName     = "access"
	RefreshCookieName    = "refresh"
	AccessTokenDuration  = time.Minute * 30
	RefreshTokenDuration = time.Hour * 24 * 7
)

const (
	VerificationCodeLength = 6
	ResetTokenBytes        = 25
	DefaultSMSMessage      = "New Message"
)
