package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/careercracker/webclient/internal/model"
)

// CareerInfo looks up the description and typical tasks for a job title.
func (c *Client) CareerInfo(ctx context.Context, cred, jobTitle string) (*model.CareerInfo, error) {
	query := url.Values{}
	query.Set("job_title", jobTitle)

	var info model.CareerInfo
	if err := c.do(ctx, cred, http.MethodGet, "/jobs/career_info/", query, nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}
