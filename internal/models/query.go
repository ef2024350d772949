package models

// QueryKind - измерение, по которому ищем в каталоге.
// QueryKind selects the catalog operation and the shape of the expected parameter.
type QueryKind int

const (
	QueryNone QueryKind = iota
	QueryByGenre
	QueryByTitle
	QueryByActor
	QueryByYear
	QueryRandom
)

func (k QueryKind) String() string {
	switch k {
	case QueryByGenre:
		return "by_genre"
	case QueryByTitle:
		return "by_title"
	case QueryByActor:
		return "by_actor"
	case QueryByYear:
		return "by_year"
	case QueryRandom:
		return "random"
	default:
		return "none"
	}
}

// ListValued сообщает, разбивается ли параметр запроса по запятым.
func (k QueryKind) ListValued() bool {
	return k == QueryByGenre || k == QueryByActor
}
