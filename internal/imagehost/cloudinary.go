// Package imagehost uploads images to the external hosting provider
// (Cloudinary unsigned uploads). The console never stores image bytes; it
// streams them through and hands the hosted URL back to the editor.
package imagehost

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"kisanbandhu/console/internal/config"
	"kisanbandhu/console/internal/network"
)

// Image is the hosted result of a successful upload.
type Image struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
}

// Uploader streams one image to the hosting provider. onProgress, when
// non-nil, receives incremental percentages (0-100) as source bytes are
// consumed by the transfer.
type Uploader interface {
	Upload(ctx context.Context, filename string, src io.Reader, size int64, onProgress func(percent int)) (Image, error)
}

// Error is a non-2xx response from the image host.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("imagehost: %d: %s", e.Status, e.Message)
}

type cloudinary struct {
	uploadURL string
	preset    string
	client    *http.Client
}

// NewCloudinary creates an unsigned-upload client for the given cloud name
// and upload preset.
func NewCloudinary(cloudName, preset string, clients *network.ClientFactory) Uploader {
	return &cloudinary{
		uploadURL: fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/image/upload", cloudName),
		preset:    preset,
		client:    clients.NewHTTPClient(0),
	}
}

// NewCloudinaryForURL is like NewCloudinary with an explicit endpoint.
// Used by tests to point at a fake host.
func NewCloudinaryForURL(uploadURL, preset string, clients *network.ClientFactory) Uploader {
	return &cloudinary{
		uploadURL: uploadURL,
		preset:    preset,
		client:    clients.NewHTTPClient(0),
	}
}

func (c *cloudinary) Upload(ctx context.Context, filename string, src io.Reader, size int64, onProgress func(int)) (Image, error) {
	tracked := &progressReader{r: src, total: size, onProgress: onProgress}

	pr, pw := io.Pipe()
	form := multipart.NewWriter(pw)

	go func() {
		err := writeForm(form, c.preset, filename, tracked)
		if err != nil {
			_ = pw.CloseWithError(err)
			return
		}
		_ = pw.Close()
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.uploadURL, pr)
	if err != nil {
		return Image{}, fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())
	req.Header.Set("User-Agent", config.ConsoleUserAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return Image{}, fmt.Errorf("upload request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Image{}, fmt.Errorf("read upload response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Image{}, &Error{Status: resp.StatusCode, Message: uploadErrorMessage(data)}
	}

	var img Image
	if err := json.Unmarshal(data, &img); err != nil {
		return Image{}, fmt.Errorf("decode upload response: %w", err)
	}
	if img.SecureURL == "" {
		return Image{}, &Error{Status: resp.StatusCode, Message: "upload response missing secure_url"}
	}

	tracked.finish()
	return img, nil
}

func writeForm(form *multipart.Writer, preset, filename string, src io.Reader) error {
	if err := form.WriteField("upload_preset", preset); err != nil {
		return err
	}
	part, err := form.CreateFormFile("file", filename)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, src); err != nil {
		return err
	}
	return form.Close()
}

func uploadErrorMessage(data []byte) string {
	var body struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(data, &body); err == nil && body.Error.Message != "" {
		return body.Error.Message
	}
	if msg := strings.TrimSpace(string(data)); msg != "" && len(msg) <= 200 {
		return msg
	}
	return "upload failed"
}

// progressReader reports how much of the source has been consumed by the
// transfer. Percentages are monotonic; 100 is only reported once the upload
// has actually completed, not merely when the last byte was read.
type progressReader struct {
	r          io.Reader
	total      int64
	read       int64
	last       int
	onProgress func(int)
}

func (p *progressReader) Read(buf []byte) (int, error) {
	n, err := p.r.Read(buf)
	if n > 0 {
		p.read += int64(n)
		p.report()
	}
	return n, err
}

func (p *progressReader) report() {
	if p.onProgress == nil || p.total <= 0 {
		return
	}
	percent := int(p.read * 100 / p.total)
	if percent > 99 {
		percent = 99
	}
	if percent > p.last {
		p.last = percent
		p.onProgress(percent)
	}
}

func (p *progressReader) finish() {
	if p.onProgress == nil {
		return
	}
	if p.last < 100 {
		p.last = 100
		p.onProgress(100)
	}
}
