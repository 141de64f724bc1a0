package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// parseID extracts the numeric {id} path variable. The second return value
// reports whether the value was a valid id.
func parseID(r *http.Request) (uint, bool) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
