package catalog

import (
	"context"
	"net/url"
	"strconv"

	slogctx "github.com/veqryn/slog-context"

	"filmbot/internal/constants"
	"filmbot/internal/formatters"
	"filmbot/internal/models"
	"filmbot/internal/utils"
)

// SearchByGenre ищет тайтлы раздела по списку жанров.
func (c *Client) SearchByGenre(ctx context.Context, genres []string, category models.Category) Result {
	if len(genres) == 0 {
		return Empty()
	}
	params := baseParams(category)
	for _, g := range genres {
		params.Add("genres.name", g)
	}

	var page models.FilmPage
	if err := c.get(ctx, constants.ENDPOINT_MOVIE, params, &page); err != nil {
		return failed(err)
	}
	return OK(formatters.FormatFilmList(page.Docs))
}

// SearchByTitle ищет по названию и показывает первое совпадение.
func (c *Client) SearchByTitle(ctx context.Context, title string, category models.Category) Result {
	if title == "" {
		return Empty()
	}
	params := baseParams(category)
	params.Set("query", title)

	var page models.FilmPage
	if err := c.get(ctx, constants.ENDPOINT_MOVIE_SEARCH, params, &page); err != nil {
		return failed(err)
	}
	if len(page.Docs) == 0 {
		return Empty()
	}
	return OK(formatters.FormatFilm(page.Docs[0]))
}

// SearchByYear ищет по году ("2015") или диапазону ("2010-2015").
func (c *Client) SearchByYear(ctx context.Context, yearOrRange string, category models.Category) Result {
	year := utils.NormalizeYear(yearOrRange)
	if !utils.IsYearOrRange(year) {
		slogctx.Warn(ctx, "Некорректный год в запросе, запрос не отправлен", "year", yearOrRange)
		return Empty()
	}
	params := baseParams(category)
	params.Set("year", year)

	var page models.FilmPage
	if err := c.get(ctx, constants.ENDPOINT_MOVIE, params, &page); err != nil {
		return failed(err)
	}
	return OK(formatters.FormatFilmList(page.Docs))
}

// Random возвращает случайный тайтл раздела.
func (c *Client) Random(ctx context.Context, category models.Category) Result {
	var film models.Film
	if err := c.get(ctx, constants.ENDPOINT_MOVIE_RANDOM, baseParams(category), &film); err != nil {
		return failed(err)
	}
	if film.Name == "" {
		return Empty()
	}
	return OK(formatters.FormatFilm(film))
}

// SearchByActor ищет тайтлы с участием актёров. Работает в два шага:
//  1. для каждого имени находит ID персоны; если хоть одно имя не найдено,
//     операция завершается без запросов второго шага;
//  2. для каждого ID запрашивает тайтлы раздела и сливает результаты без повторов.
func (c *Client) SearchByActor(ctx context.Context, actorNames []string, category models.Category) Result {
	if len(actorNames) == 0 {
		return Empty()
	}

	ids, res, ok := c.resolveActors(ctx, actorNames)
	if !ok {
		return res
	}
	return c.filmsByPersons(ctx, ids, category)
}

// resolveActors - первый шаг поиска по актёрам: имя -> ID.
func (c *Client) resolveActors(ctx context.Context, actorNames []string) ([]int64, Result, bool) {
	ids := make([]int64, 0, len(actorNames))
	for _, name := range actorNames {
		params := url.Values{
			"query": {name},
			"limit": {"1"},
		}

		var page models.PersonPage
		if err := c.get(ctx, constants.ENDPOINT_PERSON_SEARCH, params, &page); err != nil {
			return nil, failed(err), false
		}
		if len(page.Docs) == 0 {
			slogctx.Info(ctx, "Актёр не найден в каталоге", "actor", name)
			return nil, Empty(), false
		}
		ids = append(ids, page.Docs[0].ID)
	}
	return ids, Result{}, true
}

// filmsByPersons - второй шаг поиска по актёрам: ID -> тайтлы.
func (c *Client) filmsByPersons(ctx context.Context, personIDs []int64, category models.Category) Result {
	var merged []models.Film
	seen := make(map[int64]bool)
	for _, id := range personIDs {
		params := baseParams(category)
		params.Set("page", "1")
		params.Set("limit", strconv.Itoa(constants.ACTOR_FILMS_LIMIT))
		params.Set("persons.id", strconv.FormatInt(id, 10))

		var page models.FilmPage
		if err := c.get(ctx, constants.ENDPOINT_MOVIE, params, &page); err != nil {
			return failed(err)
		}
		for _, film := range page.Docs {
			if film.ID != 0 && seen[film.ID] {
				continue
			}
			seen[film.ID] = true
			merged = append(merged, film)
		}
	}
	return OK(formatters.FormatFilmList(merged))
}
