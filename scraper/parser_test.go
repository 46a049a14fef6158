package scraper

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const articlePage = `<html><head>
  <meta name="author" content="И. Петров">
</head><body>
  <h1>Городские новости</h1>
  <time datetime="2024-04-12T09:30:00">12 апреля 2024</time>
  <article>
    <p>Первый абзац текста.</p>
    <p>Второй абзац текста.</p>
  </article>
  <p>Подвал сайта вне статьи.</p>
  <a rel="tag" href="/topics/city/">город</a>
</body></html>`

func TestParserParse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, articlePage)
	}))
	defer server.Close()

	parser := NewParser(server.URL+"/news/1/", 1, configForServer(t, server.URL, 1))
	art, err := parser.Parse(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, art.ID)
	assert.Equal(t, server.URL+"/news/1/", art.URL)
	assert.Equal(t, "Городские новости", art.Title)
	assert.Equal(t, []string{"И. Петров"}, art.Authors)
	assert.Equal(t, []string{"город"}, art.Topics)
	assert.Equal(t, "Первый абзац текста.\nВторой абзац текста.", art.Text)
	assert.Equal(t, time.Date(2024, 4, 12, 9, 30, 0, 0, time.UTC), art.Date)
}

func TestParserRejectsEmptyPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body><h1>Без текста</h1></body></html>`)
	}))
	defer server.Close()

	parser := NewParser(server.URL, 1, configForServer(t, server.URL, 1))
	_, err := parser.Parse(context.Background())
	assert.Error(t, err)
}

func TestUnifyDateFormat(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want time.Time
	}{
		{
			"canonical layout",
			"2024-04-12 09:30:00",
			time.Date(2024, 4, 12, 9, 30, 0, 0, time.UTC),
		},
		{
			"iso without zone",
			"2024-04-12T09:30:00",
			time.Date(2024, 4, 12, 9, 30, 0, 0, time.UTC),
		},
		{
			"dotted with time",
			"12.04.2024 09:30",
			time.Date(2024, 4, 12, 9, 30, 0, 0, time.UTC),
		},
		{
			"dotted date only",
			"12.04.2024",
			time.Date(2024, 4, 12, 0, 0, 0, 0, time.UTC),
		},
		{
			"russian month",
			"12 апреля 2024",
			time.Date(2024, 4, 12, 0, 0, 0, 0, time.UTC),
		},
		{
			"russian month with time",
			"12 апреля 2024 09:30",
			time.Date(2024, 4, 12, 9, 30, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UnifyDateFormat(tt.raw)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}
}

func TestUnifyDateFormatRejectsGarbage(t *testing.T) {
	for _, raw := range []string{"", "вчера", "99 квартобря 2024"} {
		_, err := UnifyDateFormat(raw)
		assert.Error(t, err, raw)
	}
}
