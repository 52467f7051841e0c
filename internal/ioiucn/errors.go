package ioiucn

import (
	"fmt"
	"runtime"

	"github.com/gnames/fishfeat/pkg/errcode"
	"github.com/gnames/gn"
)

// DownloadError is returned when the snapshot cannot be downloaded.
func DownloadError(url string, err error) error {
	msg := `Cannot download IUCN snapshot from <em>%s</em>

<em>Possible causes:</em>
  - No internet connection
  - Wrong URL in iucn.url setting`
	vars := []any{url}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DownloadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot download %s: %w", fn.Name(), url, err),
	}
}

// DownloadStatusError is returned when the server does not answer 200.
func DownloadStatusError(url string, status int) error {
	msg := "IUCN server returned status <em>%d</em> for <em>%s</em>"
	vars := []any{status, url}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DownloadStatusError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: status %d for %s", fn.Name(), status, url),
	}
}
