package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"wateen/client/internal/media/imagecheck"
	"wateen/client/internal/models"
)

// LogSideEffect sends the report as multipart form data, attaching the
// local image file when one was chosen.
func (c *Client) LogSideEffect(ctx context.Context, report models.SideEffectReport) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	fields := map[string]string{
		"medication": strconv.FormatInt(report.MedicationID, 10),
		"symptom":    report.Symptom,
		"severity":   strconv.Itoa(report.Severity),
	}
	if report.Notes != "" {
		fields["notes"] = report.Notes
	}
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return fmt.Errorf("write form field %s: %w", name, err)
		}
	}

	if report.ImagePath != "" {
		if _, err := imagecheck.DetectFile(report.ImagePath); err != nil {
			return err
		}
		if err := attachFile(writer, "image", report.ImagePath); err != nil {
			return err
		}
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("finish form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/sideeffects/side-effect-log", &buf)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return c.send(req, true, nil)
}

func attachFile(writer *multipart.Writer, field, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open image: %w", err)
	}
	defer file.Close()

	part, err := writer.CreateFormFile(field, filepath.Base(path))
	if err != nil {
		return fmt.Errorf("attach image: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("copy image: %w", err)
	}
	return nil
}
