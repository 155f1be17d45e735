package utils

import (
	"fmt"
	"io"
	"net/http"
)

// FetchURL downloads url and returns the response body reader. The caller
// must close it.
func FetchURL(url string) (io.ReadCloser, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("error on request: %s status: %s", url, resp.Status)
	}

	return resp.Body, nil
}
