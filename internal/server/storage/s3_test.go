package storage

import (
	"context"
	"errors"
	"strings"
	"testing"

	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	sc "github.com/ganeshpodishetti/portfolio-api/internal/server/config"
)

func testConfig() *sc.Config {
	cfg := &sc.Config{}
	cfg.LoadDefaults()
	return cfg
}

func TestStorageKeys(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	projectID := uuid.New()

	key := ProjectImageKey(userID, projectID)
	if !strings.HasPrefix(key, "users/"+userID.String()+"/projects/") {
		t.Fatalf("unexpected project key %q", key)
	}
	if got := ResumeKey(userID); got != "users/"+userID.String()+"/resume" {
		t.Fatalf("unexpected resume key %q", got)
	}
}

func TestPresignedPutURL_UsesSeam(t *testing.T) {
	origPut := presignPutObject
	defer func() { presignPutObject = origPut }()

	var gotKey string
	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		gotKey = *in.Key
		return &v4.PresignedHTTPRequest{URL: "https://example.com/put"}, nil
	}

	st := NewAssetStorage(testConfig())
	url, err := st.PresignedPutURL(context.Background(), "users/u/projects/p")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if url != "https://example.com/put" {
		t.Fatalf("url: got %q", url)
	}
	if gotKey != "users/u/projects/p" {
		t.Fatalf("key: got %q", gotKey)
	}
}

func TestPresignedGetURL_Error(t *testing.T) {
	origGet := presignGetObject
	defer func() { presignGetObject = origGet }()

	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return nil, errors.New("s3 is down")
	}

	st := NewAssetStorage(testConfig())
	if _, err := st.PresignedGetURL(context.Background(), "k"); err == nil {
		t.Fatalf("expected error")
	}
}
