package client

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"

	"ncaab_report/internal/metrics"
)

// RankedTeam is one row of the secondary rankings table, name exactly as
// the source spells it.
type RankedTeam struct {
	Name string
	Rank int
}

// RankingsClient scrapes the secondary rankings table.
type RankingsClient struct {
	core    *httpCore
	baseURL string
}

func NewRankingsClient(baseURL string, timeout time.Duration) *RankingsClient {
	return &RankingsClient{
		core:    newHTTPCore(timeout, 2, 0),
		baseURL: baseURL,
	}
}

// FetchRankings returns every ranked team in table order. Rows without a
// parseable rank or a team name are skipped.
func (c *RankingsClient) FetchRankings(ctx context.Context) ([]RankedTeam, error) {
	started := time.Now()
	body, err := c.core.get(ctx, c.baseURL, nil)
	if err != nil {
		metrics.FetchErrors.WithLabelValues("rankings").Inc()
		return nil, fmt.Errorf("fetching rankings: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		metrics.FetchErrors.WithLabelValues("rankings").Inc()
		return nil, fmt.Errorf("parsing rankings page: %w", err)
	}

	var teams []RankedTeam
	doc.Find("table#ratings-table tbody tr").Each(func(_ int, row *goquery.Selection) {
		cols := row.Find("td")
		if cols.Length() < 2 {
			return
		}
		rank, err := strconv.Atoi(strings.TrimSpace(cols.Eq(0).Text()))
		if err != nil {
			return
		}
		name := strings.TrimSpace(cols.Eq(1).Find("a").Text())
		if name == "" {
			return
		}
		teams = append(teams, RankedTeam{Name: name, Rank: rank})
	})

	log.Info().
		Int("teams", len(teams)).
		Msg("Fetched secondary rankings")
	metrics.RecordFetch("rankings", time.Since(started).Seconds())
	return teams, nil
}
