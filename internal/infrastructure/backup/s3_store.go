package backup

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/aws/aws-sdk-go/service/s3/s3manager/s3manageriface"

	"github.com/jhoicas/finbot-api/internal/application/billing"
)

var _ billing.BackupStore = (*S3Store)(nil)

// S3Store sube las copias a un bucket S3 bajo un prefijo.
type S3Store struct {
	client   s3iface.S3API
	uploader s3manageriface.UploaderAPI
	bucket   string
	prefix   string
}

// NewS3Store crea la sesión AWS con la cadena de credenciales por defecto
// (variables de entorno, ~/.aws, rol de instancia).
func NewS3Store(region, bucket, prefix string) (*S3Store, error) {
	sess, err := session.NewSession(&aws.Config{Region: aws.String(region)})
	if err != nil {
		return nil, fmt.Errorf("backup: sesión AWS: %w", err)
	}
	return NewS3StoreWithClients(s3.New(sess), s3manager.NewUploader(sess), bucket, prefix), nil
}

// NewS3StoreWithClients permite inyectar clientes (tests, endpoints compatibles con S3).
func NewS3StoreWithClients(client s3iface.S3API, uploader s3manageriface.UploaderAPI, bucket, prefix string) *S3Store {
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return &S3Store{client: client, uploader: uploader, bucket: bucket, prefix: prefix}
}

// Store sube el PDF con content-type application/pdf.
func (s *S3Store) Store(ctx context.Context, number string, pdf []byte, at time.Time) (*billing.BackupResult, error) {
	id := newID()
	key := s.prefix + FileName(number, id, at)
	_, err := s.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(pdf),
		ContentType: aws.String("application/pdf"),
	})
	if err != nil {
		return nil, fmt.Errorf("backup: subir s3://%s/%s: %w", s.bucket, key, err)
	}
	return &billing.BackupResult{ID: id, Location: fmt.Sprintf("s3://%s/%s", s.bucket, key)}, nil
}

// Count cuenta los objetos .pdf bajo el prefijo.
func (s *S3Store) Count(ctx context.Context) (int, error) {
	n := 0
	err := s.client.ListObjectsV2PagesWithContext(ctx, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(s.prefix),
	}, func(page *s3.ListObjectsV2Output, _ bool) bool {
		for _, obj := range page.Contents {
			if strings.HasSuffix(aws.StringValue(obj.Key), ".pdf") {
				n++
			}
		}
		return true
	})
	if err != nil {
		return 0, fmt.Errorf("backup: listar s3://%s/%s: %w", s.bucket, s.prefix, err)
	}
	return n, nil
}
