// pattern: Functional Core

package feed

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// tweetDateLayout is the native tweet timestamp format, e.g.
// "Thu Jan 22 12:32:00 +0000 2026".
const tweetDateLayout = "Mon Jan 02 15:04:05 -0700 2006"

// ImportOptions filter and cap the tweets pulled from an archive.
type ImportOptions struct {
	MinTextLength  int // drop tweets with shorter text
	MinFavorites   int // drop tweets below this favorite count
	MaxPerCategory int // keep only the top-N by favorites per category (0 = all)
}

// flexInt tolerates archive count fields encoded as either JSON numbers
// or strings; unparseable values default to zero.
type flexInt int

func (n *flexInt) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		*n = 0
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		*n = 0
		return nil
	}
	*n = flexInt(v)
	return nil
}

type rawTweet struct {
	IDStr         string  `json:"id_str"`
	FullText      string  `json:"full_text"`
	Text          string  `json:"text"`
	CreatedAt     string  `json:"created_at"`
	FavoriteCount flexInt `json:"favorite_count"`
	RetweetCount  flexInt `json:"retweet_count"`
}

type tweetWrapper struct {
	Tweet rawTweet `json:"tweet"`
}

type archiveAccount struct {
	Username           string `json:"username"`
	AccountDisplayName string `json:"accountDisplayName"`
}

type accountWrapper struct {
	Account archiveAccount `json:"account"`
}

// archiveFile is the community-archive JSON shape: profile metadata plus
// the full tweet list.
type archiveFile struct {
	Account []accountWrapper `json:"account"`
	Tweets  []tweetWrapper   `json:"tweets"`
}

// ParseYTDPayload strips the "window.YTD.<section>.partN =" assignment
// wrapper from a Twitter/X archive JS file and returns the raw JSON
// payload.
func ParseYTDPayload(raw []byte) (json.RawMessage, error) {
	text := strings.TrimSpace(string(raw))
	eq := strings.Index(text, "=")
	if eq < 0 {
		return nil, fmt.Errorf("invalid YTD payload: missing assignment")
	}
	payload := strings.TrimSpace(text[eq+1:])
	payload = strings.TrimSpace(strings.TrimSuffix(payload, ";"))
	if !json.Valid([]byte(payload)) {
		return nil, fmt.Errorf("invalid YTD payload: body is not valid JSON")
	}
	return json.RawMessage(payload), nil
}

// parseTweetDate accepts the native tweet format and ISO timestamps with
// an optional Z suffix.
func parseTweetDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(tweetDateLayout, value); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// ImportArchive converts a Twitter/X archive into per-year categories
// ordered oldest year first, items ordered by date within each year.
// The input may be a community-archive JSON object, a bare tweet array,
// or a YTD JS payload wrapping either.
func ImportArchive(data []byte, opts ImportOptions) ([]Category, error) {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "window.YTD") {
		payload, err := ParseYTDPayload(data)
		if err != nil {
			return nil, err
		}
		data = payload
		trimmed = strings.TrimSpace(string(payload))
	}

	var account archiveAccount
	var wrappers []tweetWrapper

	if strings.HasPrefix(trimmed, "[") {
		if err := json.Unmarshal(data, &wrappers); err != nil {
			return nil, fmt.Errorf("parse tweet array: %w", err)
		}
	} else {
		var f archiveFile
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parse archive: %w", err)
		}
		if len(f.Account) > 0 {
			account = f.Account[0].Account
		}
		wrappers = f.Tweets
	}

	byYear := make(map[int][]Item)
	for _, w := range wrappers {
		t := w.Tweet
		text := t.FullText
		if text == "" {
			text = t.Text
		}
		if len(text) < opts.MinTextLength {
			continue
		}
		if int(t.FavoriteCount) < opts.MinFavorites {
			continue
		}
		created, ok := parseTweetDate(t.CreatedAt)
		if !ok {
			continue
		}
		byYear[created.Year()] = append(byYear[created.Year()], Item{
			ID:        t.IDStr,
			Text:      text,
			Author:    account.Username,
			CreatedAt: created,
			Favorites: int(t.FavoriteCount),
			Retweets:  int(t.RetweetCount),
		})
	}

	if len(byYear) == 0 {
		return nil, fmt.Errorf("no tweets passed the import filters")
	}

	years := make([]int, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	sort.Ints(years)

	categories := make([]Category, 0, len(years))
	for _, year := range years {
		items := byYear[year]
		if opts.MaxPerCategory > 0 && len(items) > opts.MaxPerCategory {
			// Keep the most-liked posts when capping, then restore
			// chronological order below.
			sort.SliceStable(items, func(i, j int) bool {
				return items[i].Favorites > items[j].Favorites
			})
			items = items[:opts.MaxPerCategory]
		}
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].CreatedAt.Before(items[j].CreatedAt)
		})

		label := strconv.Itoa(year)
		description := fmt.Sprintf("%d posts from %d", len(items), year)
		if account.Username != "" {
			description = fmt.Sprintf("%d posts by @%s from %d", len(items), account.Username, year)
		}
		categories = append(categories, Category{
			ID:          label,
			Label:       label,
			Description: description,
			Items:       items,
		})
	}

	return categories, nil
}
