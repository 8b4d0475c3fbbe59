package feed

import (
	"testing"
)

func TestParseYTDPayload(t *testing.T) {
	raw := []byte(`window.YTD.tweets.part0 = [
  {"tweet": {"id_str": "1", "full_text": "hi"}}
];`)

	payload, err := ParseYTDPayload(raw)
	if err != nil {
		t.Fatalf("ParseYTDPayload: %v", err)
	}
	if payload[0] != '[' {
		t.Errorf("payload should start with '[', got %q", payload[0])
	}
}

func TestParseYTDPayload_MissingAssignment(t *testing.T) {
	if _, err := ParseYTDPayload([]byte(`[{"tweet": {}}]`)); err == nil {
		t.Fatal("expected error for payload without assignment")
	}
}

func TestParseYTDPayload_BadJSON(t *testing.T) {
	if _, err := ParseYTDPayload([]byte(`window.YTD.tweets.part0 = [{;`)); err == nil {
		t.Fatal("expected error for malformed body")
	}
}

const sampleArchive = `{
  "account": [{"account": {"username": "tester", "accountDisplayName": "Tester"}}],
  "tweets": [
    {"tweet": {"id_str": "1", "full_text": "an old post about things", "created_at": "Thu Jan 22 12:32:00 +0000 2019", "favorite_count": "5", "retweet_count": "1"}},
    {"tweet": {"id_str": "2", "full_text": "a newer post about other things", "created_at": "Fri Mar 06 08:00:00 +0000 2020", "favorite_count": 42, "retweet_count": 3}},
    {"tweet": {"id_str": "3", "full_text": "short", "created_at": "Sat Mar 07 08:00:00 +0000 2020", "favorite_count": "100"}},
    {"tweet": {"id_str": "4", "full_text": "a second 2020 post, earlier in the year", "created_at": "Wed Jan 01 00:00:00 +0000 2020", "favorite_count": "7"}}
  ]
}`

func TestImportArchive_GroupsByYear(t *testing.T) {
	cats, err := ImportArchive([]byte(sampleArchive), ImportOptions{MinTextLength: 10})
	if err != nil {
		t.Fatalf("ImportArchive: %v", err)
	}

	if len(cats) != 2 {
		t.Fatalf("got %d categories, want 2", len(cats))
	}
	if cats[0].ID != "2019" || cats[1].ID != "2020" {
		t.Errorf("years not ascending: %q, %q", cats[0].ID, cats[1].ID)
	}
	// Tweet 3 fails the length filter.
	if len(cats[1].Items) != 2 {
		t.Fatalf("2020 items = %d, want 2", len(cats[1].Items))
	}
	// Within a year items are chronological.
	if cats[1].Items[0].ID != "4" || cats[1].Items[1].ID != "2" {
		t.Errorf("2020 items out of order: %q, %q", cats[1].Items[0].ID, cats[1].Items[1].ID)
	}
	if cats[1].Items[1].Favorites != 42 {
		t.Errorf("favorites = %d, want 42", cats[1].Items[1].Favorites)
	}
	if cats[0].Items[0].Author != "tester" {
		t.Errorf("author = %q, want tester", cats[0].Items[0].Author)
	}
}

func TestImportArchive_MinFavorites(t *testing.T) {
	cats, err := ImportArchive([]byte(sampleArchive), ImportOptions{MinFavorites: 40})
	if err != nil {
		t.Fatalf("ImportArchive: %v", err)
	}
	if len(cats) != 1 || cats[0].ID != "2020" || len(cats[0].Items) != 2 {
		t.Fatalf("unexpected result: %+v", cats)
	}
}

func TestImportArchive_MaxPerCategoryKeepsMostLiked(t *testing.T) {
	cats, err := ImportArchive([]byte(sampleArchive), ImportOptions{MaxPerCategory: 1})
	if err != nil {
		t.Fatalf("ImportArchive: %v", err)
	}
	for _, c := range cats {
		if len(c.Items) != 1 {
			t.Fatalf("category %s items = %d, want 1", c.ID, len(c.Items))
		}
	}
	// 2020 keeps tweet 3 (100 favorites).
	if cats[1].Items[0].ID != "3" {
		t.Errorf("2020 kept %q, want 3", cats[1].Items[0].ID)
	}
}

func TestImportArchive_YTDWrapper(t *testing.T) {
	raw := `window.YTD.tweets.part0 = [
  {"tweet": {"id_str": "9", "full_text": "wrapped payload tweet", "created_at": "Thu Jan 22 12:32:00 +0000 2026", "favorite_count": "2"}}
];`
	cats, err := ImportArchive([]byte(raw), ImportOptions{})
	if err != nil {
		t.Fatalf("ImportArchive: %v", err)
	}
	if len(cats) != 1 || cats[0].ID != "2026" {
		t.Fatalf("unexpected categories: %+v", cats)
	}
}

func TestImportArchive_NothingPassesFilters(t *testing.T) {
	if _, err := ImportArchive([]byte(sampleArchive), ImportOptions{MinFavorites: 10000}); err == nil {
		t.Fatal("expected error when no tweets pass the filters")
	}
}

func TestImportArchive_ISODates(t *testing.T) {
	raw := `{"tweets": [{"tweet": {"id_str": "5", "full_text": "iso dated post", "created_at": "2021-06-01T10:00:00Z", "favorite_count": 1}}]}`
	cats, err := ImportArchive([]byte(raw), ImportOptions{})
	if err != nil {
		t.Fatalf("ImportArchive: %v", err)
	}
	if len(cats) != 1 || cats[0].ID != "2021" {
		t.Fatalf("unexpected categories: %+v", cats)
	}
}
