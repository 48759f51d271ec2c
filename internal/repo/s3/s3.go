package s3

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"

	"github.com/JMURv/zedasignal/internal/config"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type UploadFileRequest struct {
	File        []byte
	Filename    string
	ContentType string
}

type S3 struct {
	cli    *minio.Client
	bucket string
	scheme string
	addr   string
}

func New(conf config.Config) *S3 {
	cli, err := minio.New(
		conf.Minio.Addr, &minio.Options{
			Creds:  credentials.NewStaticV4(conf.Minio.AccessKey, conf.Minio.SecretKey, ""),
			Secure: conf.Minio.UseSSL,
		},
	)
	if err != nil {
		zap.L().Fatal("failed to create minio client", zap.Error(err))
	}

	ctx := context.Background()
	exists, err := cli.BucketExists(ctx, conf.Minio.Bucket)
	if err != nil {
		zap.L().Fatal("failed to check bucket", zap.String("bucket", conf.Minio.Bucket), zap.Error(err))
	}

	if !exists {
		if err = cli.MakeBucket(ctx, conf.Minio.Bucket, minio.MakeBucketOptions{}); err != nil {
			zap.L().Fatal("failed to create bucket", zap.String("bucket", conf.Minio.Bucket), zap.Error(err))
		}
	}

	scheme := "http"
	if conf.Minio.UseSSL {
		scheme = "https"
	}

	return &S3{
		cli:    cli,
		bucket: conf.Minio.Bucket,
		scheme: scheme,
		addr:   conf.Minio.Addr,
	}
}

func (s *S3) UploadFile(ctx context.Context, req *UploadFileRequest) (string, error) {
	const op = "s3.UploadFile.minio"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	object := uuid.NewString() + filepath.Ext(req.Filename)
	_, err := s.cli.PutObject(
		ctx,
		s.bucket,
		object,
		bytes.NewReader(req.File),
		int64(len(req.File)),
		minio.PutObjectOptions{ContentType: req.ContentType},
	)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error(
			"failed to upload file",
			zap.String("op", op),
			zap.String("filename", req.Filename),
			zap.Error(err),
		)
		return "", err
	}

	return fmt.Sprintf("%s://%s/%s/%s", s.scheme, s.addr, s.bucket, object), nil
}
