package models

// Film - запись каталога (фильм или сериал) в том виде, в каком её отдаёт API.
type Film struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Year        int    `json:"year"`
	Description string `json:"description"`
}

// Person - запись из поиска персон; нужен только ID.
type Person struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// FilmPage - ответ эндпоинтов поиска фильмов.
type FilmPage struct {
	Docs  []Film `json:"docs"`
	Total int    `json:"total"`
	Limit int    `json:"limit"`
	Page  int    `json:"page"`
	Pages int    `json:"pages"`
}

// PersonPage - ответ эндпоинта person/search.
type PersonPage struct {
	Docs []Person `json:"docs"`
}
