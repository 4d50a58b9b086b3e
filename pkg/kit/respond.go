package kit

import (
	"io"
	"net/http"
	"strconv"
)

const contentTypeHTML = "text/html"

func WriteHTML(w http.ResponseWriter, status int, body string) {
	h := w.Header()
	h.Set("Content-Type", contentTypeHTML)
	h.Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func WriteText(w http.ResponseWriter, status int, msg string) {
	http.Error(w, msg, status)
}
