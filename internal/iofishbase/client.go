// Package iofishbase downloads FishBase tables and builds the species
// feature matrix.
package iofishbase

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/gnames/fishfeat/pkg/config"
	"github.com/gnames/fishfeat/pkg/fishbase"
	"github.com/gnames/fishfeat/pkg/frame"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
)

// page is a single response of the FishBase API.
type page struct {
	Count int              `json:"count"`
	Data  []map[string]any `json:"data"`
}

// Client reads FishBase tables page by page.
type Client struct {
	baseURL  string
	pageSize int
	quiet    bool
	http     *http.Client
}

var _ fishbase.Fetcher = (*Client)(nil)

// NewClient creates a client for the FishBase API set in cfg.
func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL:  cfg.FishBase.URL,
		pageSize: cfg.FishBase.PageSize,
		quiet:    cfg.Quiet,
		http:     http.DefaultClient,
	}
}

// FetchTable requests pages of a table until the number of received
// rows reaches the count reported by the server. Any failed request
// aborts the whole table.
func (c *Client) FetchTable(
	ctx context.Context,
	table string,
) (*frame.Frame, error) {
	first, err := c.fetchPage(ctx, table, 0)
	if err != nil {
		return nil, err
	}

	recs := first.Data
	count := first.Count

	var bar progress
	if !c.quiet && count > len(recs) {
		bar = newProgressBar(count, table)
		bar.SetCurrent(int64(len(recs)))
	}

	for len(recs) < count {
		pg, err := c.fetchPage(ctx, table, len(recs))
		if err != nil {
			bar.Finish()
			return nil, err
		}
		if len(pg.Data) == 0 {
			bar.Finish()
			return nil, IncompleteError(table, len(recs), count)
		}
		recs = append(recs, pg.Data...)
		bar.Add(len(pg.Data))
	}
	bar.Finish()

	res := frame.FromRecords(recs)
	slog.Info("FishBase table fetched",
		"table", table, "rows", res.Len(), "columns", res.Width())
	if !c.quiet {
		gn.Info("Table <em>%s</em>: %s rows of %d features",
			table, humanize.Comma(int64(res.Len())), res.Width())
	}
	return res, nil
}

func (c *Client) pageURL(table string, offset int) (string, error) {
	u, err := url.Parse(c.baseURL + "/" + table)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("limit", strconv.Itoa(c.pageSize))
	if offset > 0 {
		q.Set("offset", strconv.Itoa(offset))
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (c *Client) fetchPage(
	ctx context.Context,
	table string,
	offset int,
) (*page, error) {
	uri, err := c.pageURL(table, offset)
	if err != nil {
		return nil, FetchError(table, offset, err)
	}
	slog.Debug("Fetching FishBase page", "url", uri)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, FetchError(table, offset, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, FetchError(table, offset, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, StatusError(table, offset, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, FetchError(table, offset, err)
	}

	var res page
	enc := gnfmt.GNjson{}
	if err = enc.Decode(body, &res); err != nil {
		return nil, DecodeError(table, offset, err)
	}
	return &res, nil
}
