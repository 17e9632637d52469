package media

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"github.com/google/uuid"
	xdraw "golang.org/x/image/draw"

	"github.com/barbertime/barbertime-api/internal/config"
)

// Avatares e logo: a imagem enviada é reduzida e reencodada em webp antes
// de subir para o bucket; a entidade guarda só a URL pública.

const maxEdge = 512

type Uploader struct {
	client     *s3.Client
	bucket     string
	publicBase string
}

func NewUploader(cfg *config.Config) *Uploader {
	awsCfg := aws.Config{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		),
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	publicBase := cfg.S3PublicBaseURL
	if publicBase == "" {
		publicBase = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3Bucket, cfg.S3Region)
	}

	return &Uploader{
		client:     client,
		bucket:     cfg.S3Bucket,
		publicBase: publicBase,
	}
}

// UploadImage recebe os bytes originais (png/jpeg) e devolve a URL pública
// do webp gravado. kind vira o prefixo da chave: "avatars", "logo".
func (u *Uploader) UploadImage(ctx context.Context, kind string, data []byte) (string, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, shrink(src), &webp.Options{Quality: 80}); err != nil {
		return "", fmt.Errorf("encode webp: %w", err)
	}

	key := fmt.Sprintf("%s/%s.webp", kind, uuid.NewString())

	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}

	return u.publicBase + "/" + key, nil
}

func shrink(src image.Image) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxEdge && h <= maxEdge {
		return src
	}

	if w >= h {
		h = h * maxEdge / w
		w = maxEdge
	} else {
		w = w * maxEdge / h
		h = maxEdge
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Over, nil)
	return dst
}
