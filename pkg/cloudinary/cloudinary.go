package cloudinary

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/cloudinary/cloudinary-go/v2/config"
	"github.com/google/uuid"
)

// Config holds Cloudinary credentials (from env or config).
type Config struct {
	CloudName string
	APIKey    string
	APISecret string
}

// Eager transformation applied to proofs so the admin list loads quickly.
const imageEager = "q_auto,f_auto,w_1200,c_limit"

var eagerAsyncFalse = false

// Client uploads local files to Cloudinary and returns their secure URL.
type Client struct {
	cloudName string
	uploader  *uploader.API
}

func NewClient(cfg Config) (*Client, error) {
	if cfg.CloudName == "" || cfg.APIKey == "" || cfg.APISecret == "" {
		return nil, errors.New("cloudinary: cloud name, api key and api secret are required")
	}
	c, err := config.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, err
	}
	up, err := uploader.NewWithConfiguration(c)
	if err != nil {
		return nil, err
	}
	return &Client{cloudName: cfg.CloudName, uploader: up}, nil
}

// Upload sends the image at localPath into folder under a random public ID.
func (c *Client) Upload(ctx context.Context, localPath, folder string) (string, error) {
	result, err := c.uploader.Upload(ctx, localPath, uploader.UploadParams{
		Folder:       folder,
		PublicID:     PublicID(),
		ResourceType: "image",
		Eager:        imageEager,
		EagerAsync:   &eagerAsyncFalse,
	})
	if err != nil {
		return "", err
	}
	if result.Error.Message != "" {
		return "", fmt.Errorf("cloudinary: %s", result.Error.Message)
	}
	if result.SecureURL == "" {
		return "", errors.New("cloudinary: upload returned no url")
	}
	return result.SecureURL, nil
}

func PublicID() string {
	return "proof_" + strings.ReplaceAll(uuid.New().String(), "-", "")[:16]
}

