package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"

	"ncaab_report/internal/metrics"
	"ncaab_report/internal/models"
	"ncaab_report/internal/quadrant"
)

// StatsClient fetches and parses team sheet pages. It never fails a run:
// every outcome is a TeamData, empty when the page is missing or broken,
// plus an optional FailureRecord for the operator log.
type StatsClient struct {
	core    *httpCore
	baseURL string
}

// NewStatsClient caps in-flight requests at concurrency. Failed fetches
// are never retried; a failed team is recorded and the run continues.
func NewStatsClient(baseURL string, timeout time.Duration, concurrency int) *StatsClient {
	return &StatsClient{
		core:    newHTTPCore(timeout, concurrency, 0),
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Header fields live in freeform text next to the team name.
var (
	netRe        = regexp.MustCompile(`NET: (\d+)`)
	prevNetRe    = regexp.MustCompile(`Previous: (\d+)`)
	recordRe     = regexp.MustCompile(`Record: (\d+-\d+)`)
	confRecordRe = regexp.MustCompile(`\(Conf: (\d+-\d+)\)`)
	parensRe     = regexp.MustCompile(`[()]`)
)

// FetchTeam fetches one team sheet by slug. A 404 means the team has no
// page this season and yields empty data with no failure record; network
// errors, server errors and unparseable pages yield empty data plus a
// failure record naming the attempted URL.
func (c *StatsClient) FetchTeam(ctx context.Context, teamName, slug string) (models.TeamData, *models.FailureRecord) {
	started := time.Now()
	url := fmt.Sprintf("%s/teams/%s", c.baseURL, slug)
	log.Debug().
		Str("team", teamName).
		Str("url", url).
		Msg("Fetching team sheet")

	body, err := c.core.get(ctx, url, nil)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn().
				Str("team", teamName).
				Str("slug", slug).
				Msg("Team page not found")
			return models.EmptyTeamData(), nil
		}
		metrics.FetchErrors.WithLabelValues("stats").Inc()
		metrics.TeamFetchFailures.Inc()
		return models.EmptyTeamData(), &models.FailureRecord{
			TeamName: teamName,
			Slug:     slug,
			URL:      url,
			Error:    err.Error(),
		}
	}

	data, err := parseTeamSheet(body)
	if err != nil {
		metrics.TeamFetchFailures.Inc()
		return models.EmptyTeamData(), &models.FailureRecord{
			TeamName: teamName,
			Slug:     slug,
			URL:      url,
			Error:    err.Error(),
		}
	}

	metrics.RecordFetch("stats", time.Since(started).Seconds())
	return data, nil
}

// rawGame is one table row before classification. For completed games the
// columns are result, score+date, location, opponent rank, opponent; rows
// for upcoming games reuse the same slots with shifted meaning.
type rawGame struct {
	result    string
	scoreDate string
	location  string
	oppRank   string
	opponent  string
}

func parseTeamSheet(body []byte) (models.TeamData, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return models.TeamData{}, fmt.Errorf("parsing team page: %w", err)
	}

	data := models.EmptyTeamData()

	headerInfo := doc.Find(".team-name div:nth-child(2)").Text()
	if m := netRe.FindStringSubmatch(headerInfo); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil {
			data.NET = &v
		}
	}
	if m := prevNetRe.FindStringSubmatch(headerInfo); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil {
			data.PreviousNET = &v
		}
	}
	if m := recordRe.FindStringSubmatch(headerInfo); m != nil {
		data.Record = m[1]
	}
	if m := confRecordRe.FindStringSubmatch(headerInfo); m != nil {
		data.ConfRecord = m[1]
	}

	var games []rawGame
	doc.Find("table tr").Each(func(_ int, row *goquery.Selection) {
		cols := row.Find("td")
		if cols.Length() < 6 {
			return
		}
		games = append(games, rawGame{
			result:    strings.TrimSpace(cols.Eq(0).Text()),
			scoreDate: strings.TrimSpace(cols.Eq(1).Text()),
			location:  strings.TrimSpace(cols.Eq(2).Text()),
			oppRank:   parensRe.ReplaceAllString(strings.TrimSpace(cols.Eq(3).Text()), ""),
			opponent:  strings.TrimSpace(cols.Eq(5).Text()),
		})
	})

	organizeGames(games, &data)
	return data, nil
}

// organizeGames splits rows into completed quadrant buckets and upcoming
// games. Rows whose result starts with Q are future games with shifted
// columns. Completed rows missing a numeric rank or a recognizable
// location are dropped rather than misclassified.
func organizeGames(games []rawGame, data *models.TeamData) {
	for _, g := range games {
		if strings.HasPrefix(g.result, "Q") {
			oppNet, _ := strconv.Atoi(parensRe.ReplaceAllString(g.location, ""))
			data.Upcoming = append(data.Upcoming, models.UpcomingGameRecord{
				Quad:     g.result,
				Location: g.scoreDate,
				Opponent: g.opponent,
				OppNET:   oppNet,
				Date:     g.oppRank,
			})
			continue
		}

		oppRank, err := strconv.Atoi(g.oppRank)
		if err != nil {
			continue
		}
		q := quadrant.Classify(oppRank, g.location)
		if q == quadrant.None {
			continue
		}

		score, _, _ := strings.Cut(g.scoreDate, " ")
		bucket := data.QuadGames[q.Key()]
		bucket.Games = append(bucket.Games, models.GameRecord{
			Result:   g.result,
			Score:    score,
			Location: g.location,
			Opponent: g.opponent,
			OppNET:   oppRank,
		})
		data.QuadGames[q.Key()] = bucket
	}

	for _, key := range models.QuadKeys {
		bucket := data.QuadGames[key]
		bucket.Record = quadrant.RecordString(bucket.Games)
		data.QuadGames[key] = bucket
	}
}
