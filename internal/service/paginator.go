package service

import (
	"errors"
	"strconv"
	"strings"
)

// PostsPerPage is the page size of every public post list.
const PostsPerPage = 3

var (
	ErrPageNotAnInteger = errors.New("page number is not an integer")
	ErrEmptyPage        = errors.New("page contains no results")
)

// Page describes one page of a paginated result.
type Page struct {
	Number   int
	PerPage  int
	NumPages int
	Total    int64
}

// Paginate resolves the raw page query value against total results.
// An empty value selects the first page and "last" selects the final one.
// The first page of an empty result is valid.
func Paginate(raw string, total int64, perPage int) (Page, error) {
	if perPage <= 0 {
		perPage = PostsPerPage
	}

	numPages := 1
	if total > 0 {
		numPages = int((total + int64(perPage) - 1) / int64(perPage))
	}
	page := Page{PerPage: perPage, NumPages: numPages, Total: total}

	raw = strings.TrimSpace(raw)
	switch raw {
	case "":
		page.Number = 1
	case "last":
		page.Number = numPages
	default:
		number, err := strconv.Atoi(raw)
		if err != nil {
			return Page{}, ErrPageNotAnInteger
		}
		page.Number = number
	}

	if page.Number < 1 || page.Number > numPages {
		return Page{}, ErrEmptyPage
	}
	return page, nil
}

// Offset is the number of rows preceding this page.
func (p Page) Offset() int {
	return (p.Number - 1) * p.PerPage
}

func (p Page) HasPrevious() bool {
	return p.Number > 1
}

func (p Page) HasNext() bool {
	return p.Number < p.NumPages
}

func (p Page) PreviousNumber() int {
	return p.Number - 1
}

func (p Page) NextNumber() int {
	return p.Number + 1
}
