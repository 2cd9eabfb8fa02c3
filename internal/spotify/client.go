// Package spotify is a minimal client for the two catalog lookups the
// enrichment flow needs: track release years and artist genres.
package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"golang.org/x/time/rate"
)

const trackBatchSize = 50

// maxRetryAfter bounds how long a 429 Retry-After header can make us
// wait before the single retry.
const maxRetryAfter = 30 * time.Second

type Client struct {
	// AccountsURL and APIURL are overridable for tests.
	AccountsURL string
	APIURL      string

	httpClient *http.Client
	limiter    *rate.Limiter
	token      string
}

func New() *Client {
	return &Client{
		AccountsURL: "https://accounts.spotify.com",
		APIURL:      "https://api.spotify.com",
		httpClient:  &http.Client{Timeout: 30 * time.Second},
		limiter:     rate.NewLimiter(rate.Every(100*time.Millisecond), 1),
	}
}

// Authenticate fetches an access token using the client credentials
// flow. It only grants access to public catalog data.
func (c *Client) Authenticate(clientID, clientSecret string) error {
	if clientID == "" || clientSecret == "" {
		return fmt.Errorf("spotify credentials not set: provide client_id and client_secret")
	}

	form := url.Values{"grant_type": {"client_credentials"}}
	req, err := http.NewRequest(http.MethodPost, c.AccountsURL+"/api/token", strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("building token request: %w", err)
	}
	req.SetBasicAuth(clientID, clientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("requesting token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("token request failed: %d %s", resp.StatusCode, body)
	}

	var parsed struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return fmt.Errorf("parsing token response: %w", err)
	}
	c.token = parsed.AccessToken
	return nil
}

// TrackYears fetches release years for the given track URIs, in
// batches of 50. A batch that still fails after the retry policy, or
// whose response cannot be parsed, is skipped; its tracks are simply
// absent from the result.
func (c *Client) TrackYears(uris []string) (map[string]int, error) {
	idToURI := make(map[string]string, len(uris))
	var ids []string
	for _, uri := range uris {
		parts := strings.Split(uri, ":")
		id := parts[len(parts)-1]
		if id == "" {
			continue
		}
		idToURI[id] = uri
		ids = append(ids, id)
	}

	years := make(map[string]int)
	for start := 0; start < len(ids); start += trackBatchSize {
		end := start + trackBatchSize
		if end > len(ids) {
			end = len(ids)
		}
		batch := ids[start:end]

		body, err := c.get("/v1/tracks", url.Values{"ids": {strings.Join(batch, ",")}})
		if err != nil {
			fmt.Printf("Skipping track batch %d-%d: %v\n", start, end, err)
			continue
		}

		var parsed struct {
			Tracks []*struct {
				ID    string `json:"id"`
				Album struct {
					ReleaseDate string `json:"release_date"`
				} `json:"album"`
			} `json:"tracks"`
		}
		if err := json.Unmarshal(body, &parsed); err != nil {
			fmt.Printf("Skipping track batch %d-%d: %v\n", start, end, err)
			continue
		}

		for _, track := range parsed.Tracks {
			if track == nil {
				continue
			}
			year, ok := parseReleaseYear(track.Album.ReleaseDate)
			if !ok {
				continue
			}
			if uri, known := idToURI[track.ID]; known {
				years[uri] = year
			}
		}
	}
	return years, nil
}

// ArtistGenres looks up genres for each artist name via catalog
// search. A name with no match, or a request that fails after
// retrying, yields an empty list rather than an error.
func (c *Client) ArtistGenres(names []string) map[string][]string {
	genres := make(map[string][]string, len(names))
	for i, name := range names {
		fmt.Printf("[%d/%d] Fetching genres for artist: %s\n", i+1, len(names), name)

		body, err := c.get("/v1/search", url.Values{
			"q":     {name},
			"type":  {"artist"},
			"limit": {"1"},
		})
		if err != nil {
			fmt.Printf("Error fetching genres for artist %s: %v\n", name, err)
			genres[name] = nil
			continue
		}

		var parsed struct {
			Artists struct {
				Items []struct {
					Genres []string `json:"genres"`
				} `json:"items"`
			} `json:"artists"`
		}
		if err := json.Unmarshal(body, &parsed); err != nil {
			genres[name] = nil
			continue
		}
		if len(parsed.Artists.Items) > 0 {
			genres[name] = parsed.Artists.Items[0].Genres
		} else {
			genres[name] = nil
		}
	}
	return genres
}

// get performs a rate-limited authorized GET. A 429 triggers a single
// bounded wait on Retry-After; 5xx responses are retried.
func (c *Client) get(path string, params url.Values) ([]byte, error) {
	var body []byte
	retried429 := false

	err := retry.Do(
		func() error {
			c.limiter.Wait(context.Background())

			req, err := http.NewRequest(http.MethodGet, c.APIURL+path+"?"+params.Encode(), nil)
			if err != nil {
				return retry.Unrecoverable(err)
			}
			req.Header.Set("Authorization", "Bearer "+c.token)

			resp, err := c.httpClient.Do(req)
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			switch {
			case resp.StatusCode == http.StatusOK:
				body, err = io.ReadAll(resp.Body)
				return err

			case resp.StatusCode == http.StatusTooManyRequests:
				if retried429 {
					return retry.Unrecoverable(fmt.Errorf("rate limited twice on %s", path))
				}
				retried429 = true
				time.Sleep(retryAfter(resp))
				return fmt.Errorf("rate limited on %s", path)

			case resp.StatusCode/100 == 5:
				return fmt.Errorf("server error %d on %s", resp.StatusCode, path)
			}
			return retry.Unrecoverable(fmt.Errorf("unexpected status %d on %s", resp.StatusCode, path))
		},
		retry.Attempts(3),
		retry.Delay(time.Second),
	)
	if err != nil {
		return nil, err
	}
	return body, nil
}

func retryAfter(resp *http.Response) time.Duration {
	seconds, err := strconv.Atoi(resp.Header.Get("Retry-After"))
	if err != nil || seconds < 0 {
		return 5 * time.Second
	}
	wait := time.Duration(seconds) * time.Second
	if wait > maxRetryAfter {
		return maxRetryAfter
	}
	return wait
}

func parseReleaseYear(date string) (int, bool) {
	// Release dates come back as YYYY, YYYY-MM, or YYYY-MM-DD.
	if len(date) < 4 {
		return 0, false
	}
	year, err := strconv.Atoi(date[:4])
	if err != nil {
		return 0, false
	}
	return year, true
}
