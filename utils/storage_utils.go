package utils

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// S3Uploader stores listing and profile images in an S3-compatible object
// service.
type S3Uploader struct {
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
}

func (u *S3Uploader) client() *s3.S3 {
	sess := session.Must(session.NewSession(&aws.Config{
		Region:   aws.String(u.Region),
		Endpoint: aws.String(u.Endpoint),
		Credentials: credentials.NewStaticCredentials(
			u.AccessKey, u.SecretKey, "",
		),
	}))
	return s3.New(sess)
}

// Upload puts the file under folder/fileName with public read access and
// returns the public URL.
func (u *S3Uploader) Upload(file []byte, fileName string, folder string) (string, error) {
	filePath := fmt.Sprintf("%s/%s", folder, fileName)

	_, err := u.client().PutObject(&s3.PutObjectInput{
		Bucket:        aws.String(u.Bucket),
		Key:           aws.String(filePath),
		Body:          bytes.NewReader(file),
		ContentLength: aws.Int64(int64(len(file))),
		ContentType:   aws.String(http.DetectContentType(file)),
		ACL:           aws.String("public-read"),
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", filePath, err)
	}

	return fmt.Sprintf("%s/%s/%s", u.Endpoint, u.Bucket, filePath), nil
}

// Delete removes a previously uploaded file.
func (u *S3Uploader) Delete(fileName string, folder string) error {
	filePath := fmt.Sprintf("%s/%s", folder, fileName)

	_, err := u.client().DeleteObject(&s3.DeleteObjectInput{
		Bucket: aws.String(u.Bucket),
		Key:    aws.String(filePath),
	})
	if err != nil {
		return fmt.Errorf("delete %s: %w", filePath, err)
	}
	return nil
}
