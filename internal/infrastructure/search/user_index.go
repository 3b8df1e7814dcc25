// Package search maintains the Elasticsearch projection of public user
// profiles. Indexing is best-effort: failures are logged, never surfaced to
// the registration path.
package search

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/fitlife/fitlife-api/internal/application"
)

type UserIndex struct {
	client *elasticsearch.Client
	index  string
	logger *logrus.Logger
}

func NewUserIndex(client *elasticsearch.Client, index string, logger *logrus.Logger) *UserIndex {
	return &UserIndex{client: client, index: index, logger: logger}
}

func (ix *UserIndex) enabled() bool {
	return ix != nil && ix.client != nil && ix.index != ""
}

// IndexUser upserts the public view of a user.
func (ix *UserIndex) IndexUser(ctx context.Context, view application.UserView) {
	if !ix.enabled() {
		return
	}

	body, _ := json.Marshal(map[string]any{
		"id":         view.ID,
		"email":      view.Email,
		"name":       view.Name,
		"created_at": view.CreatedAt.Format(time.RFC3339Nano),
	})
	req := esapi.IndexRequest{
		Index:      ix.index,
		DocumentID: view.ID,
		Body:       strings.NewReader(string(body)),
		Refresh:    "false",
	}

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, ix.client)
	if err != nil {
		if ix.logger != nil {
			ix.logger.WithError(err).WithField("user_id", view.ID).Warn("es index failed")
		}
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && ix.logger != nil {
		ix.logger.WithFields(logrus.Fields{"status": res.Status(), "user_id": view.ID}).Warn("es index response error")
	}
}

// Search runs a multi_match over email and name.
func (ix *UserIndex) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if !ix.enabled() {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}

	query, _ := json.Marshal(map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"email^2", "name"},
			},
		},
		"size": size,
	})

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := ix.client.Search(
		ix.client.Search.WithContext(c),
		ix.client.Search.WithIndex(ix.index),
		ix.client.Search.WithBody(strings.NewReader(string(query))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
