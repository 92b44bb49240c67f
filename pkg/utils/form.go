package utils

import (
	"errors"
	"net/http"
)

const maxFormMemory = 10 << 20

// FormValues parses a urlencoded or multipart body. A field sent more than once
// keeps its last value.
func FormValues(r *http.Request) (map[string]string, error) {
	err := r.ParseMultipartForm(maxFormMemory)
	if err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return nil, err
	}
	values := make(map[string]string, len(r.PostForm))
	for name, v := range r.PostForm {
		if len(v) > 0 {
			values[name] = v[len(v)-1]
		}
	}
	return values, nil
}
