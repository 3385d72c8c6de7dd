package gcalendar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"golang.org/x/time/rate"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// calendarCacheSize bounds the calendar-metadata cache. Accounts rarely
// hold more than a handful of calendars.
const calendarCacheSize = 32

// apiRate throttles paginated API calls to stay inside the Calendar API
// per-user quota.
var apiRate = rate.Limit(5)

// Client wraps the Google Calendar API service.
type Client struct {
	service  *calendar.Service
	limiter  *rate.Limiter
	calCache *lru.Cache[string, Calendar]
}

func newClient(svc *calendar.Service) *Client {
	cache, _ := lru.New[string, Calendar](calendarCacheSize)
	return &Client{
		service:  svc,
		limiter:  rate.NewLimiter(apiRate, 1),
		calCache: cache,
	}
}

// NewClientFromCredentialsFile creates a Calendar client from a Service Account JSON file path.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data)
}

// NewClientFromCredentialsJSON creates a Calendar client from raw Service Account JSON bytes.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte) (*Client, error) {
	// Try service account first
	config, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarReadonlyScope)
	if err == nil {
		// Service Account path
		tokenSource := config.TokenSource(ctx)
		svc, svcErr := calendar.NewService(ctx, option.WithTokenSource(tokenSource))
		if svcErr != nil {
			return nil, fmt.Errorf("failed to create calendar service: %w", svcErr)
		}
		return newClient(svc), nil
	}

	// Fallback: try OAuth2 installed app credentials
	var oauthCreds struct {
		Installed struct {
			ClientID     string   `json:"client_id"`
			ClientSecret string   `json:"client_secret"`
			RedirectURIs []string `json:"redirect_uris"`
		} `json:"installed"`
	}
	if jsonErr := json.Unmarshal(credentialsJSON, &oauthCreds); jsonErr != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	oauthConfig := &oauth2.Config{
		ClientID:     oauthCreds.Installed.ClientID,
		ClientSecret: oauthCreds.Installed.ClientSecret,
		Scopes:       []string{calendar.CalendarReadonlyScope},
		Endpoint:     google.Endpoint,
	}

	// For OAuth2 Desktop app: use a static token if token.json exists
	tokenData, tokenErr := os.ReadFile("token.json")
	if tokenErr != nil {
		return nil, fmt.Errorf("google credentials are OAuth Desktop type but no token.json found: run scripts/gcal-auth first")
	}

	var tok oauth2.Token
	if jsonErr := json.Unmarshal(tokenData, &tok); jsonErr != nil {
		return nil, fmt.Errorf("failed to parse token.json: %w", jsonErr)
	}

	tokenSource := oauthConfig.TokenSource(ctx, &tok)
	svc, svcErr := calendar.NewService(ctx, option.WithTokenSource(tokenSource))
	if svcErr != nil {
		return nil, fmt.Errorf("failed to create calendar service from OAuth token: %w", svcErr)
	}

	return newClient(svc), nil
}

// NewClientFromHTTP creates a Calendar client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return newClient(svc), nil
}

// ListCalendars returns all calendars visible to the authenticated user,
// following page tokens until the list is exhausted. Results refresh the
// metadata cache consulted by CalendarByID.
func (c *Client) ListCalendars(ctx context.Context) ([]Calendar, error) {
	var calendars []Calendar

	pageToken := ""
	for {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		call := c.service.CalendarList.List()
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		page, err := call.Context(ctx).Do()
		if err != nil {
			return nil, fmt.Errorf("failed to list calendars: %w", err)
		}

		for _, entry := range page.Items {
			cal := Calendar{
				ID:      entry.Id,
				Summary: entry.Summary,
				Primary: entry.Primary,
			}
			calendars = append(calendars, cal)
			c.calCache.Add(cal.ID, cal)
		}

		pageToken = page.NextPageToken
		if pageToken == "" {
			break
		}
	}

	return calendars, nil
}

// CalendarByID resolves calendar metadata, serving from the cache when
// the calendar was already seen via ListCalendars.
func (c *Client) CalendarByID(ctx context.Context, id string) (Calendar, error) {
	if cal, ok := c.calCache.Get(id); ok {
		return cal, nil
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return Calendar{}, err
	}

	entry, err := c.service.CalendarList.Get(id).Context(ctx).Do()
	if err != nil {
		return Calendar{}, fmt.Errorf("failed to get calendar %q: %w", id, err)
	}

	cal := Calendar{ID: entry.Id, Summary: entry.Summary, Primary: entry.Primary}
	c.calCache.Add(cal.ID, cal)
	return cal, nil
}

// AccountEmail returns the authenticated account's address, which
// Google exposes as the ID of the primary calendar.
func (c *Client) AccountEmail(ctx context.Context) (string, error) {
	calendars, err := c.ListCalendars(ctx)
	if err != nil {
		return "", err
	}
	for _, cal := range calendars {
		if cal.Primary {
			return cal.ID, nil
		}
	}
	return "", fmt.Errorf("no primary calendar in calendar list")
}

// ListEvents returns the raw events of one calendar within [TimeMin,
// TimeMax], expanded to single instances and ordered by start time. The
// full result set is gathered across page tokens; normalizing the raw
// items is the caller's concern.
func (c *Client) ListEvents(ctx context.Context, req ListEventsRequest) ([]*calendar.Event, error) {
	calendarID := req.CalendarID
	if calendarID == "" {
		calendarID = "primary"
	}

	var items []*calendar.Event

	pageToken := ""
	for {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		call := c.service.Events.List(calendarID).
			TimeMin(req.TimeMin.Format(time.RFC3339)).
			TimeMax(req.TimeMax.Format(time.RFC3339)).
			SingleEvents(true).
			OrderBy("startTime")
		if req.MaxResults > 0 {
			call = call.MaxResults(req.MaxResults)
		}
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		page, err := call.Context(ctx).Do()
		if err != nil {
			return nil, fmt.Errorf("failed to list calendar events: %w", err)
		}

		items = append(items, page.Items...)

		pageToken = page.NextPageToken
		if pageToken == "" {
			break
		}
	}

	return items, nil
}
