package platform

import (
	"fmt"
	"net/http"

	"limelight/models"
)

// Jobs returns every event registered for a website.
func (c *Client) Jobs(token, websiteID string) ([]models.Job, error) {
	req, err := c.newRequest(http.MethodGet, "/jobs/"+websiteID, token, nil)
	if err != nil {
		return nil, err
	}

	var jobs []models.Job
	if err := c.do(req, &jobs); err != nil {
		return nil, fmt.Errorf("fetch jobs: %w", err)
	}
	return jobs, nil
}

// CreateJob registers a new event. The response body is an ack envelope; the
// affected record it carries is ignored on purpose - callers re-read the
// whole collection instead.
func (c *Client) CreateJob(token string, job models.Job) error {
	req, err := c.newRequest(http.MethodPost, "/jobs", token, job)
	if err != nil {
		return err
	}

	var ack mutationAck
	if err := c.do(req, &ack); err != nil {
		return fmt.Errorf("create job: %w", err)
	}
	return ack.check("job create")
}

// UpdateJob replaces an existing event.
func (c *Client) UpdateJob(token string, job models.Job) error {
	req, err := c.newRequest(http.MethodPut, "/jobs", token, job)
	if err != nil {
		return err
	}

	var ack mutationAck
	if err := c.do(req, &ack); err != nil {
		return fmt.Errorf("update job: %w", err)
	}
	return ack.check("job update")
}

// DeleteJob removes an event. The platform keys deletion on id + owner.
func (c *Client) DeleteJob(token, jobID, userID string) error {
	body := map[string]string{"id": jobID, "user_id": userID}
	req, err := c.newRequest(http.MethodDelete, "/jobs", token, body)
	if err != nil {
		return err
	}

	var ack mutationAck
	if err := c.do(req, &ack); err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	return ack.check("job delete")
}
