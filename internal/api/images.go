package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
)

// MaxImageSize caps uploads at 3 MiB, matching the backend's limit; the
// check runs client-side to save the round trip.
const MaxImageSize = 3 << 20

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".avif": true,
}

type ImagesClient struct{ c *Client }

func NewImagesClient(c *Client) *ImagesClient { return &ImagesClient{c: c} }

// Upload sends one product image and returns the storage object key. The
// backend runs content moderation on the file; a rejection surfaces as an
// *APIError whose message names the detected item.
func (ic *ImagesClient) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedImageExts[ext] {
		return "", fmt.Errorf("images: unsupported file type %q", ext)
	}

	data, err := io.ReadAll(io.LimitReader(r, MaxImageSize+1))
	if err != nil {
		return "", fmt.Errorf("images: read file: %w", err)
	}
	if len(data) > MaxImageSize {
		return "", fmt.Errorf("images: file exceeds the %d byte limit", MaxImageSize)
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filepath.Base(filename))
	if err != nil {
		return "", err
	}
	if _, err := part.Write(data); err != nil {
		return "", err
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	req, err := ic.c.newRequest(ctx, http.MethodPost, "/products/upload-image", nil, &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := ic.c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("images: read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", newAPIError(resp.StatusCode, respBody)
	}
	// The endpoint answers with the bare object key, not the envelope.
	return strings.TrimSpace(string(respBody)), nil
}
