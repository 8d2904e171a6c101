// internal/api/v1/types.go
package v1

import (
	"encoding/json"

	"github.com/vmunix/moviemagic/internal/review"
)

// addReviewRequest is the body for POST /api/review/{id}.
// A key that is present decodes to non-nil raw JSON, even when its value is null,
// so required only checks presence. Values are never type-checked.
type addReviewRequest struct {
	Rating   json.RawMessage `json:"rating" validate:"required"`
	Comment  json.RawMessage `json:"comment" validate:"required"`
	Username json.RawMessage `json:"username"`
}

// toReview decodes the submitted values as-is. A missing username falls back
// to the default; an explicit one, null included, is kept.
func (req addReviewRequest) toReview() (review.Review, error) {
	var rating, comment any
	if err := json.Unmarshal(req.Rating, &rating); err != nil {
		return review.Review{}, err
	}
	if err := json.Unmarshal(req.Comment, &comment); err != nil {
		return review.Review{}, err
	}

	r := review.New(rating, comment)
	if req.Username != nil {
		var username any
		if err := json.Unmarshal(req.Username, &username); err != nil {
			return review.Review{}, err
		}
		r = r.By(username)
	}
	return r, nil
}

// messageResponse is a plain confirmation body.
type messageResponse struct {
	Message string `json:"message"`
}

// statusResponse is the response for GET /api/status.
type statusResponse struct {
	Status  string       `json:"status"`
	Version string       `json:"version"`
	Reviews review.Stats `json:"reviews"`
}
