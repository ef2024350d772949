package catalog_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filmbot/internal/catalog"
	"filmbot/internal/constants"
	"filmbot/internal/models"
)

const testAPIKey = "test-key"

// fakeCatalog - httptest-сервер, который отвечает по пути и запоминает запросы.
type fakeCatalog struct {
	t        *testing.T
	mu       sync.Mutex
	requests []*http.Request
	routes   map[string]http.HandlerFunc
	srv      *httptest.Server
}

func newFakeCatalog(t *testing.T) *fakeCatalog {
	t.Helper()
	fc := &fakeCatalog{t: t, routes: map[string]http.HandlerFunc{}}
	fc.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fc.mu.Lock()
		fc.requests = append(fc.requests, r.Clone(context.Background()))
		h, ok := fc.routes[strings.TrimPrefix(r.URL.Path, "/v1.4/")]
		fc.mu.Unlock()
		if !ok {
			http.NotFound(w, r)
			return
		}
		h(w, r)
	}))
	t.Cleanup(fc.srv.Close)
	return fc
}

func (fc *fakeCatalog) handle(endpoint string, h http.HandlerFunc) {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	fc.routes[endpoint] = h
}

func (fc *fakeCatalog) client(timeout time.Duration) *catalog.Client {
	return catalog.NewClient(fc.srv.URL+"/v1.4/", testAPIKey, timeout, catalog.WithHTTPClient(fc.srv.Client()))
}

func (fc *fakeCatalog) recorded() []*http.Request {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return append([]*http.Request(nil), fc.requests...)
}

func jsonResponse(v any) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(v)
	}
}

func films(n int) models.FilmPage {
	page := models.FilmPage{}
	for i := 1; i <= n; i++ {
		page.Docs = append(page.Docs, models.Film{
			ID:          int64(i),
			Name:        fmt.Sprintf("Тайтл %d", i),
			Year:        2000 + i,
			Description: strings.Repeat("длинное описание ", 20),
		})
	}
	return page
}

func assertBaseFilters(t *testing.T, q url.Values, category models.Category) {
	t.Helper()
	assert.ElementsMatch(t, []string{"name", "description"}, q["notNullFields"])
	switch category {
	case models.CategoryAnime:
		assert.Equal(t, []string{"anime"}, q["type"])
		assert.Empty(t, q["countries.name"])
	case models.CategoryDrama:
		assert.Equal(t, []string{"tv-series"}, q["type"])
		assert.ElementsMatch(t, constants.DramaCountries, q["countries.name"])
	}
}

func TestClient_FiltersOnEveryTitleRequest(t *testing.T) {
	type op struct {
		name     string
		endpoint string
		call     func(c *catalog.Client, cat models.Category) catalog.Result
	}
	ops := []op{
		{"genre", constants.ENDPOINT_MOVIE, func(c *catalog.Client, cat models.Category) catalog.Result {
			return c.SearchByGenre(context.Background(), []string{"драма"}, cat)
		}},
		{"title", constants.ENDPOINT_MOVIE_SEARCH, func(c *catalog.Client, cat models.Category) catalog.Result {
			return c.SearchByTitle(context.Background(), "Гоблин", cat)
		}},
		{"year", constants.ENDPOINT_MOVIE, func(c *catalog.Client, cat models.Category) catalog.Result {
			return c.SearchByYear(context.Background(), "2016", cat)
		}},
		{"random", constants.ENDPOINT_MOVIE_RANDOM, func(c *catalog.Client, cat models.Category) catalog.Result {
			return c.Random(context.Background(), cat)
		}},
		{"actor", constants.ENDPOINT_MOVIE, func(c *catalog.Client, cat models.Category) catalog.Result {
			return c.SearchByActor(context.Background(), []string{"Гон Ю"}, cat)
		}},
	}

	for _, o := range ops {
		for _, cat := range models.Categories {
			t.Run(o.name+"/"+cat.Key(), func(t *testing.T) {
				fc := newFakeCatalog(t)
				fc.handle(constants.ENDPOINT_MOVIE, jsonResponse(films(1)))
				fc.handle(constants.ENDPOINT_MOVIE_SEARCH, jsonResponse(films(1)))
				fc.handle(constants.ENDPOINT_MOVIE_RANDOM, jsonResponse(films(1).Docs[0]))
				fc.handle(constants.ENDPOINT_PERSON_SEARCH, jsonResponse(models.PersonPage{Docs: []models.Person{{ID: 42}}}))

				res := o.call(fc.client(time.Second), cat)
				require.Equal(t, catalog.ResultOK, res.Kind)

				var titleRequests int
				for _, r := range fc.recorded() {
					assert.Equal(t, testAPIKey, r.Header.Get(constants.CATALOG_API_KEY_HEADER))
					if strings.HasSuffix(r.URL.Path, constants.ENDPOINT_PERSON_SEARCH) {
						continue
					}
					titleRequests++
					assert.True(t, strings.HasSuffix(r.URL.Path, o.endpoint), r.URL.Path)
					assertBaseFilters(t, r.URL.Query(), cat)
				}
				assert.Equal(t, 1, titleRequests)
			})
		}
	}
}

func TestClient_SearchByGenre_NumberedList(t *testing.T) {
	fc := newFakeCatalog(t)
	fc.handle(constants.ENDPOINT_MOVIE, jsonResponse(films(3)))

	res := fc.client(time.Second).SearchByGenre(context.Background(), []string{"драма", "комедия"}, models.CategoryAnime)
	require.Equal(t, catalog.ResultOK, res.Kind)

	numbered := regexp.MustCompile(`(?m)^(\d+)\. Тайтл \d+, \d{4}$`).FindAllStringSubmatch(res.Message(), -1)
	require.Len(t, numbered, 3)
	for i, m := range numbered {
		assert.Equal(t, fmt.Sprint(i+1), m[1])
	}
	for _, line := range strings.Split(res.Message(), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), constants.DESCRIPTION_WRAP_WIDTH)
	}

	reqs := fc.recorded()
	require.Len(t, reqs, 1)
	assert.Equal(t, []string{"драма", "комедия"}, reqs[0].URL.Query()["genres.name"])
}

func TestClient_SearchByYear(t *testing.T) {
	fc := newFakeCatalog(t)
	fc.handle(constants.ENDPOINT_MOVIE, jsonResponse(films(2)))
	c := fc.client(time.Second)

	res := c.SearchByYear(context.Background(), "2010 - 2015", models.CategoryDrama)
	require.Equal(t, catalog.ResultOK, res.Kind)
	assert.True(t, strings.HasPrefix(res.Message(), "1. Тайтл 1, 2001"))
	assert.Contains(t, res.Message(), "\n2. Тайтл 2, 2002")
	assert.Equal(t, "2010-2015", fc.recorded()[0].URL.Query().Get("year"))

	res = c.SearchByYear(context.Background(), "вчера", models.CategoryDrama)
	assert.Equal(t, catalog.ResultEmpty, res.Kind)
	assert.Equal(t, constants.FALLBACK_MSG, res.Message())
	assert.Len(t, fc.recorded(), 1, "invalid year must not hit the catalog")
}

func TestClient_SearchByTitle_FirstDocOnly(t *testing.T) {
	fc := newFakeCatalog(t)
	fc.handle(constants.ENDPOINT_MOVIE_SEARCH, jsonResponse(films(3)))

	res := fc.client(time.Second).SearchByTitle(context.Background(), "Тайтл", models.CategoryAnime)
	require.Equal(t, catalog.ResultOK, res.Kind)
	assert.True(t, strings.HasPrefix(res.Message(), "Тайтл 1, 2001\n\n"))
	assert.NotContains(t, res.Message(), "Тайтл 2")
	assert.Equal(t, "Тайтл", fc.recorded()[0].URL.Query().Get("query"))
}

func TestClient_Fallbacks(t *testing.T) {
	calls := map[string]func(c *catalog.Client) catalog.Result{
		"genre": func(c *catalog.Client) catalog.Result {
			return c.SearchByGenre(context.Background(), []string{"драма"}, models.CategoryDrama)
		},
		"title": func(c *catalog.Client) catalog.Result {
			return c.SearchByTitle(context.Background(), "Гоблин", models.CategoryDrama)
		},
		"year": func(c *catalog.Client) catalog.Result {
			return c.SearchByYear(context.Background(), "2016", models.CategoryDrama)
		},
		"actor": func(c *catalog.Client) catalog.Result {
			return c.SearchByActor(context.Background(), []string{"Гон Ю"}, models.CategoryDrama)
		},
		"random": func(c *catalog.Client) catalog.Result {
			return c.Random(context.Background(), models.CategoryDrama)
		},
	}

	for name, call := range calls {
		t.Run(name+"/non-200", func(t *testing.T) {
			fc := newFakeCatalog(t)
			fail := func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, `{"message":"limit"}`, http.StatusForbidden)
			}
			for _, ep := range []string{constants.ENDPOINT_MOVIE, constants.ENDPOINT_MOVIE_SEARCH, constants.ENDPOINT_MOVIE_RANDOM, constants.ENDPOINT_PERSON_SEARCH} {
				fc.handle(ep, fail)
			}

			res := call(fc.client(time.Second))
			assert.Equal(t, catalog.ResultUpstreamError, res.Kind)
			assert.Equal(t, http.StatusForbidden, res.StatusCode)
			assert.Error(t, res.Err)
			assert.Equal(t, "Не удалось получить данные.", res.Message())
		})

		t.Run(name+"/empty", func(t *testing.T) {
			fc := newFakeCatalog(t)
			fc.handle(constants.ENDPOINT_MOVIE, jsonResponse(models.FilmPage{Docs: []models.Film{}}))
			fc.handle(constants.ENDPOINT_MOVIE_SEARCH, jsonResponse(models.FilmPage{}))
			fc.handle(constants.ENDPOINT_MOVIE_RANDOM, jsonResponse(map[string]any{}))
			fc.handle(constants.ENDPOINT_PERSON_SEARCH, jsonResponse(models.PersonPage{Docs: []models.Person{{ID: 7}}}))

			res := call(fc.client(time.Second))
			assert.Equal(t, catalog.ResultEmpty, res.Kind)
			assert.Equal(t, "Не удалось получить данные.", res.Message())
		})
	}
}

func TestClient_MalformedJSON(t *testing.T) {
	fc := newFakeCatalog(t)
	fc.handle(constants.ENDPOINT_MOVIE, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"docs": [`))
	})

	res := fc.client(time.Second).SearchByGenre(context.Background(), []string{"драма"}, models.CategoryAnime)
	assert.Equal(t, catalog.ResultUpstreamError, res.Kind)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, constants.FALLBACK_MSG, res.Message())
}

func TestClient_Timeout(t *testing.T) {
	fc := newFakeCatalog(t)
	fc.handle(constants.ENDPOINT_MOVIE_RANDOM, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})

	start := time.Now()
	res := fc.client(50*time.Millisecond).Random(context.Background(), models.CategoryAnime)
	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, catalog.ResultUpstreamError, res.Kind)
	assert.Zero(t, res.StatusCode)
	assert.Equal(t, constants.FALLBACK_MSG, res.Message())
}

func TestClient_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	baseURL := srv.URL
	srv.Close()

	res := catalog.NewClient(baseURL, testAPIKey, time.Second).Random(context.Background(), models.CategoryDrama)
	assert.Equal(t, catalog.ResultUpstreamError, res.Kind)
	assert.Zero(t, res.StatusCode)
	assert.Equal(t, constants.FALLBACK_MSG, res.Message())
}

func TestClient_SearchByActor_ShortCircuit(t *testing.T) {
	fc := newFakeCatalog(t)
	fc.handle(constants.ENDPOINT_PERSON_SEARCH, jsonResponse(models.PersonPage{Docs: []models.Person{}}))
	fc.handle(constants.ENDPOINT_MOVIE, jsonResponse(films(2)))

	res := fc.client(time.Second).SearchByActor(context.Background(), []string{"Никто"}, models.CategoryDrama)
	assert.Equal(t, catalog.ResultEmpty, res.Kind)
	assert.Equal(t, constants.FALLBACK_MSG, res.Message())

	reqs := fc.recorded()
	require.Len(t, reqs, 1, "no title request after an empty person lookup")
	assert.True(t, strings.HasSuffix(reqs[0].URL.Path, constants.ENDPOINT_PERSON_SEARCH))
	assert.Equal(t, "Никто", reqs[0].URL.Query().Get("query"))
}

func TestClient_SearchByActor_MergesResults(t *testing.T) {
	fc := newFakeCatalog(t)
	fc.handle(constants.ENDPOINT_PERSON_SEARCH, func(w http.ResponseWriter, r *http.Request) {
		id := int64(1)
		if r.URL.Query().Get("query") == "Петров" {
			id = 2
		}
		jsonResponse(models.PersonPage{Docs: []models.Person{{ID: id}}})(w, r)
	})
	fc.handle(constants.ENDPOINT_MOVIE, func(w http.ResponseWriter, r *http.Request) {
		page := films(2)
		if r.URL.Query().Get("persons.id") == "2" {
			// второй тайтл общий, третий - новый
			page = models.FilmPage{Docs: []models.Film{page.Docs[1], {ID: 3, Name: "Тайтл 3", Year: 2003, Description: "три"}}}
		}
		jsonResponse(page)(w, r)
	})

	res := fc.client(time.Second).SearchByActor(context.Background(), []string{"Иванов", "Петров"}, models.CategoryDrama)
	require.Equal(t, catalog.ResultOK, res.Kind)

	msg := res.Message()
	assert.True(t, strings.HasPrefix(msg, "1. Тайтл 1, 2001"))
	assert.Contains(t, msg, "\n2. Тайтл 2, 2002")
	assert.Contains(t, msg, "\n3. Тайтл 3, 2003")
	assert.NotContains(t, msg, "4. ")

	reqs := fc.recorded()
	require.Len(t, reqs, 4)
	assert.Equal(t, "1", reqs[2].URL.Query().Get("persons.id"))
	assert.Equal(t, "2", reqs[3].URL.Query().Get("persons.id"))
	assert.Equal(t, "10", reqs[2].URL.Query().Get("limit"))
}
