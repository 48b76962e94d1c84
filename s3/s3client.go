package s3client

import (
	"context"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"
	"hr-evaluation-backend/config"
)

var Client *minio.Client

const bucketLocation = "us-east-1"

func Connect(ctx context.Context) (*minio.Client, error) {
	minioClient, err := minio.New(config.Conf.S3.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.Conf.S3.AccessKeyID, config.Conf.S3.SecretAccessKey, ""),
		Secure: *config.Conf.S3.UseSSL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "ошибка создания клиента S3")
	}
	if err = MakeBucket(ctx, minioClient, config.Conf.S3.BucketName); err != nil {
		return nil, err
	}
	Client = minioClient
	return minioClient, nil
}

func MakeBucket(ctx context.Context, client *minio.Client, bucketName string) error {
	exists, err := client.BucketExists(ctx, bucketName)
	if err != nil {
		return errors.Wrap(err, "ошибка проверки бакета")
	}
	if exists {
		return nil
	}
	err = client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: bucketLocation})
	if err != nil {
		return errors.Wrap(err, "ошибка создания бакета")
	}
	return nil
}
