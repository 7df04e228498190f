package handler

import (
	"strconv"

	"github.com/uptrace/bunrouter"
)

// pagination reads the "page" and "pageSize" query parameters. Out-of-range
// values fall back to the service defaults.
func pagination(req bunrouter.Request) (int, int) {
	query := req.URL.Query()

	page, _ := strconv.Atoi(query.Get("page"))
	pageSize, _ := strconv.Atoi(query.Get("pageSize"))

	return page, pageSize
}
