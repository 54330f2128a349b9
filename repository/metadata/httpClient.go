package metadatarepo

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/VirakOTAKU/book-selling-platform/util/httpx"
)

type httpRepo struct {
	apiKey string
	client *http.Client
}

func NewHTTP(apiKey string) Repo { return &httpRepo{apiKey: apiKey, client: httpx.Client()} }

func (r *httpRepo) LookupISBN(title, author string) (string, error) {
	if r.apiKey == "" {
		return "", nil
	}

	q := url.Values{}
	q.Set("title", title)
	httpReq, _ := http.NewRequest("GET", "https://api.api-ninjas.com/v1/books?"+q.Encode(), nil)
	httpReq.Header.Set("X-Api-Key", r.apiKey)

	resp, err := r.client.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return "", fmt.Errorf("book lookup failed: %s", resp.Status)
	}

	var out []struct {
		Title  string `json:"title"`
		Author string `json:"author"`
		ISBN   string `json:"isbn"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}

	for _, hit := range out {
		if author == "" || strings.EqualFold(hit.Author, author) {
			return hit.ISBN, nil
		}
	}
	return "", nil
}
