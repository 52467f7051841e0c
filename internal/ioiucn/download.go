// Package ioiucn downloads the IUCN Red List snapshot and saves its fish
// subset.
package ioiucn

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/cheggaaa/pb/v3"
	"github.com/gnames/fishfeat/internal/iofs"
	"github.com/gnames/fishfeat/pkg/frame"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Download saves the resource at url to path. The file is replaced only
// after the whole body is received. With progress a download bar is
// shown when the server reports the content length.
func Download(
	ctx context.Context,
	client *http.Client,
	url, path string,
	progress bool,
) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return DownloadError(url, err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return DownloadError(url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return DownloadStatusError(url, resp.StatusCode)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".fishfeat-*.download")
	if err != nil {
		return iofs.WriteFileError(path, err)
	}
	defer os.Remove(tmp.Name())

	var body io.Reader = resp.Body
	if progress && resp.ContentLength > 0 {
		bar := pb.Full.Start64(resp.ContentLength)
		bar.Set("prefix", "IUCN ")
		bar.Set(pb.Bytes, true)
		bar.Set(pb.CleanOnFinish, true)
		body = bar.NewProxyReader(resp.Body)
		defer bar.Finish()
	}

	n, err := io.Copy(tmp, body)
	if err != nil {
		tmp.Close()
		return DownloadError(url, err)
	}
	if err = tmp.Close(); err != nil {
		return iofs.WriteFileError(path, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return iofs.WriteFileError(path, err)
	}

	slog.Info("IUCN snapshot downloaded", "url", url, "path", path, "bytes", n)
	return nil
}

// ReadSnapshot reads a downloaded snapshot. Bytes are decoded as
// ISO-8859-1, so any input is valid text.
func ReadSnapshot(path string) (*frame.Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, iofs.ReadFileError(path, err)
	}
	defer f.Close()

	r := transform.NewReader(f, charmap.ISO8859_1.NewDecoder())
	return frame.ReadCSV(r)
}
